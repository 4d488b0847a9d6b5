package main

import (
	"adaboost/core/config"
	"adaboost/node"

	"github.com/spf13/cobra"
)

func train(cmd *cobra.Command) (*node.BoostNode, error) {
	lc, err := config.InitLocalConfig(cmd)
	if err != nil {
		return nil, err
	}

	nodeInstance := &node.BoostNode{}
	if err := nodeInstance.Init(lc); err != nil {
		return nil, err
	}
	return nodeInstance, nodeInstance.Start()
}

func trainCMD() *cobra.Command {
	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "train an adaboost ensemble",
		Long:  "train an adaboost ensemble of naive bayes and decision stump learners and report its accuracy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := train(cmd)
			return err
		},
	}
	flagList := []string{
		"config",
		"data",
		"label",
		"size",
		"rate",
		"seed",
		"clamp",
		"plot",
	}
	attachFlags(trainCmd, flagList)
	return trainCmd
}
