package config

import (
	"os"
	"path/filepath"
	"testing"

	"adaboost/common"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "train"}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().StringP("data", "d", "", "")
	cmd.Flags().IntP("size", "n", 10, "")
	cmd.Flags().Float64P("rate", "r", 0.1, "")
	return cmd
}

const yamlConfig = `
data:
  path: drugY.csv
  label: Drug
boost:
  ensemble_size: 25
  learning_rate: 0.5
  seed: 42
  variants: [NB, dt]
report:
  plot: curve.png
log:
  level: debug
  modules:
    boost: error
`

func TestInitLocalConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adaboost_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0644))

	cmd := newCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"-c", path, "-n", "3"}))
	lc, err := InitLocalConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "drugY.csv", lc.Data.Path)
	assert.Equal(t, 3, lc.Boost.EnsembleSize)
	assert.Equal(t, 0.5, lc.Boost.LearningRate)
	assert.Equal(t, int64(42), lc.Boost.Seed)
	assert.Equal(t, "curve.png", lc.Report.Plot)

	bc := lc.BoostConfig()
	assert.Equal(t, 3, bc.EnsembleSize)
	assert.NoError(t, bc.Validate())

	choose, err := lc.VariantChooser()
	require.NoError(t, err)
	assert.Equal(t, "NB", choose().String())
	assert.Equal(t, "DT", choose().String())

	logConf, err := lc.LogConfig()
	require.NoError(t, err)
	assert.Equal(t, common.LEVEL_DEBUG, logConf.LogLevel)
	assert.Equal(t, common.LEVEL_ERROR, logConf.ModuleSpecialLevel[common.MODULE_BOOST])

	opts, err := lc.LoadOptions()
	require.NoError(t, err)
	assert.Equal(t, "Drug", opts.LabelColumn)
	assert.Equal(t, ',', opts.Delimiter)
}

func TestInitLocalConfigWithoutFile(t *testing.T) {
	t.Setenv("ADABOOST_CFG_PATH", t.TempDir())
	t.Setenv("ADABOOST_BOOST_LEARNING_RATE", "0.25")

	cmd := newCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--data", "data.csv"}))
	lc, err := InitLocalConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "data.csv", lc.Data.Path)
	assert.Equal(t, 10, lc.Boost.EnsembleSize)
	assert.Equal(t, 0.25, lc.Boost.LearningRate)
	assert.Equal(t, "Drug", lc.Data.Label)
	assert.Empty(t, lc.Boost.Variants)

	_, err = lc.VariantChooser()
	assert.NoError(t, err)
}

func TestInitLocalConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "adaboost_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0644))
	t.Setenv("ADABOOST_BOOST_ENSEMBLE_SIZE", "7")
	t.Setenv("ADABOOST_BOOST_LEARNING_RATE", "0.3")

	cmd := newCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"-c", path, "-n", "3"}))
	lc, err := InitLocalConfig(cmd)
	require.NoError(t, err)
	// flag over env
	assert.Equal(t, 3, lc.Boost.EnsembleSize)
	// env over file
	assert.Equal(t, 0.3, lc.Boost.LearningRate)
	assert.Equal(t, int64(42), lc.Boost.Seed)
}

func TestInitLocalConfigErrors(t *testing.T) {
	t.Setenv("ADABOOST_CFG_PATH", t.TempDir())

	// no data file anywhere
	_, err := InitLocalConfig(newCmd())
	assert.Error(t, err)

	cmd := newCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"-c", filepath.Join(t.TempDir(), "none.yaml")}))
	_, err = InitLocalConfig(cmd)
	assert.Error(t, err)

	lc := &LocalConfig{Boost: BoostConfig{Variants: []string{"NB,SVM"}}}
	_, err = lc.VariantChooser()
	assert.Error(t, err)

	lc.Log.BriefMode = "TEST"
	_, err = lc.LogConfig()
	assert.Error(t, err)

	lc.Data.Delimiter = ";;"
	_, err = lc.LoadOptions()
	assert.Error(t, err)
}
