package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var flags *pflag.FlagSet

var (
	cfgPathFlag string
	dataFlag    string
	labelFlag   string
	sizeFlag    int
	rateFlag    float64
	seedFlag    int64
	clampFlag   float64
	plotFlag    string
)

func init() {
	resetFlags()
}

// Explicitly define a method to facilitate tests
func resetFlags() {
	flags = &pflag.FlagSet{}

	flags.StringVarP(&cfgPathFlag, "config", "c", "",
		"config file, default adaboost_config.yaml in $ADABOOST_CFG_PATH")
	flags.StringVarP(&dataFlag, "data", "d", "", "csv file to train on")
	flags.StringVarP(&labelFlag, "label", "l", "Drug", "label column holding the two classes")
	flags.IntVarP(&sizeFlag, "size", "n", 10, "number of weak learners in the ensemble")
	flags.Float64VarP(&rateFlag, "rate", "r", 0.1, "learning rate scaling every model weight")
	flags.Int64VarP(&seedFlag, "seed", "s", 0, "seed of the learner coin flip, 0 seeds from the clock")
	flags.Float64Var(&clampFlag, "clamp", 0, "clamp weighted errors into [clamp, 1-clamp] instead of failing")
	flags.StringVarP(&plotFlag, "plot", "p", "", "save the accuracy curve to this image file")
}

func attachFlags(cmd *cobra.Command, names []string) {
	cmdFlags := cmd.Flags()
	for _, name := range names {
		if flag := flags.Lookup(name); flag != nil {
			cmdFlags.AddFlag(flag)
		} else {
			panic(fmt.Errorf("Could not find flag '%s' to attach to command '%s'", name, cmd.Name()))
		}
	}
}

var mainCmd = &cobra.Command{Use: "adaboost", SilenceUsage: true}

func main() {
	mainCmd.AddCommand(trainCMD())

	if mainCmd.Execute() != nil {
		os.Exit(1)
	}
}
