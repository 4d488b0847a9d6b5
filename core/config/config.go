package config

import (
	"os"
	"strings"

	"adaboost/common"
	"adaboost/core/dataprep"
	"adaboost/core/ml"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flag name -> config key
var flagKeys = map[string]string{
	"data":  "data.path",
	"label": "data.label",
	"size":  "boost.ensemble_size",
	"rate":  "boost.learning_rate",
	"seed":  "boost.seed",
	"clamp": "boost.error_clamp",
	"plot":  "report.plot",
}

type DataConfig struct {
	Path      string
	Label     string
	Delimiter string
}

type BoostConfig struct {
	EnsembleSize int
	LearningRate float64
	ErrorClamp   float64
	Seed         int64
	// Variants, when set, replaces the coin flip with a fixed cycle such as "NB,DT".
	Variants []string
}

type ReportConfig struct {
	Plot         string
	ShowPredicts bool
}

type LogConfig struct {
	BriefMode      string
	Level          string
	Modules        map[string]string
	Path           string
	RotationMaxAge int
	RotationTime   int
	RotationSize   int
	ShowLine       bool
	Console        bool
}

type LocalConfig struct {
	Data   DataConfig
	Boost  BoostConfig
	Report ReportConfig
	Log    LogConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.label", dataprep.DefaultLabelColumn)
	v.SetDefault("data.delimiter", ",")
	v.SetDefault("boost.ensemble_size", ml.DefaultEnsembleSize)
	v.SetDefault("boost.learning_rate", ml.DefaultLearningRate)
	v.SetDefault("boost.seed", 0)
	v.SetDefault("boost.error_clamp", 0)
	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.rotation_max_age", 7)
	v.SetDefault("log.rotation_time", 24)
	v.SetDefault("log.rotation_size", 30)
	v.SetDefault("log.console", true)
}

// InitLocalConfig reads adaboost_config.yaml from --config, or else from
// ADABOOST_CFG_PATH (default "."). A missing file is not an error. Flags set
// on cmd win over ADABOOST_* env vars, which win over the file.
func InitLocalConfig(cmd *cobra.Command) (*LocalConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("adaboost")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	altPath := os.Getenv("ADABOOST_CFG_PATH")
	if altPath == "" {
		altPath = "."
	}
	v.AddConfigPath(altPath)
	v.SetConfigName("adaboost_config")

	cmdSetConfigFile := ""
	if flag := cmd.Flags().Lookup("config"); flag != nil {
		cmdSetConfigFile = flag.Value.String()
	}
	if cmdSetConfigFile != "" {
		v.SetConfigFile(cmdSetConfigFile)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cmdSetConfigFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, errors.Wrapf(err, "bind flag %s", name)
			}
		}
	}

	lc := &LocalConfig{
		Data: DataConfig{
			Path:      v.GetString("data.path"),
			Label:     v.GetString("data.label"),
			Delimiter: v.GetString("data.delimiter"),
		},
		Boost: BoostConfig{
			EnsembleSize: v.GetInt("boost.ensemble_size"),
			LearningRate: v.GetFloat64("boost.learning_rate"),
			ErrorClamp:   v.GetFloat64("boost.error_clamp"),
			Seed:         v.GetInt64("boost.seed"),
			Variants:     v.GetStringSlice("boost.variants"),
		},
		Report: ReportConfig{
			Plot:         v.GetString("report.plot"),
			ShowPredicts: v.GetBool("report.show_predicts"),
		},
		Log: LogConfig{
			BriefMode:      v.GetString("log.brief_mode"),
			Level:          v.GetString("log.level"),
			Modules:        v.GetStringMapString("log.modules"),
			Path:           v.GetString("log.path"),
			RotationMaxAge: v.GetInt("log.rotation_max_age"),
			RotationTime:   v.GetInt("log.rotation_time"),
			RotationSize:   v.GetInt("log.rotation_size"),
			ShowLine:       v.GetBool("log.show_line"),
			Console:        v.GetBool("log.console"),
		},
	}
	if lc.Data.Path == "" {
		return nil, errors.New("no data file, set data.path or --data")
	}
	return lc, nil
}

func (lc *LocalConfig) BoostConfig() ml.BoostConfig {
	return ml.BoostConfig{
		EnsembleSize: lc.Boost.EnsembleSize,
		LearningRate: lc.Boost.LearningRate,
		ErrorClamp:   lc.Boost.ErrorClamp,
	}
}

// VariantChooser is the fixed cycle of Boost.Variants, or a seeded coin flip.
func (lc *LocalConfig) VariantChooser() (ml.VariantChooser, error) {
	if len(lc.Boost.Variants) == 0 {
		return ml.NewRandomChooser(lc.Boost.Seed), nil
	}
	byName := make(map[string]ml.Variant)
	for v, name := range ml.Variant_Name {
		byName[name] = v
	}
	var vs []ml.Variant
	for _, entry := range lc.Boost.Variants {
		for _, name := range strings.Split(entry, ",") {
			v, ok := byName[strings.ToUpper(strings.TrimSpace(name))]
			if !ok {
				return nil, errors.Errorf("unknown learner variant %q", name)
			}
			vs = append(vs, v)
		}
	}
	return ml.SequenceChooser(vs...), nil
}

func (lc *LocalConfig) LoadOptions() (dataprep.LoadOptions, error) {
	opts := dataprep.LoadOptions{LabelColumn: lc.Data.Label, Delimiter: ','}
	if d := []rune(lc.Data.Delimiter); len(d) == 1 {
		opts.Delimiter = d[0]
	} else if len(d) > 1 {
		return opts, errors.Errorf("delimiter %q must be a single character", lc.Data.Delimiter)
	}
	return opts, nil
}

func (lc *LocalConfig) LogConfig() (*common.LogConfig, error) {
	c := &common.LogConfig{
		LogPath:        lc.Log.Path,
		LogLevel:       common.ParseLogLevel(lc.Log.Level),
		RotationMaxAge: lc.Log.RotationMaxAge,
		RotationTime:   lc.Log.RotationTime,
		RotationSize:   lc.Log.RotationSize,
		ShowLine:       lc.Log.ShowLine,
		LogInConsole:   lc.Log.Console,
	}
	switch strings.ToUpper(lc.Log.BriefMode) {
	case "":
	case common.LOG_MODE_DEV, common.LOG_MODE_PROD:
		c.BriefMode = strings.ToUpper(lc.Log.BriefMode)
	default:
		return nil, errors.Errorf("unknown log brief mode %q", lc.Log.BriefMode)
	}
	if len(lc.Log.Modules) > 0 {
		c.ModuleSpecialLevel = make(map[string]common.LOG_LEVEL, len(lc.Log.Modules))
		for module, level := range lc.Log.Modules {
			name, ok := common.ModuleName(module)
			if !ok {
				return nil, errors.Errorf("unknown log module %q", module)
			}
			c.ModuleSpecialLevel[name] = common.ParseLogLevel(level)
		}
	}
	return c, nil
}
