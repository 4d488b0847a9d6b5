package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleName(t *testing.T) {
	name, ok := ModuleName("boost")
	assert.True(t, ok)
	assert.Equal(t, MODULE_BOOST, name)

	name, ok = ModuleName("[DATAPREP]")
	assert.True(t, ok)
	assert.Equal(t, MODULE_DATAPREP, name)

	_, ok = ModuleName("p2pnet")
	assert.False(t, ok)
}

func TestModuleLogConfig(t *testing.T) {
	lc := &LogConfig{
		LogLevel:           LEVEL_INFO,
		ModuleSpecialLevel: map[string]LOG_LEVEL{MODULE_BOOST: LEVEL_ERROR},
		LogInConsole:       true,
	}
	assert.Equal(t, LEVEL_ERROR, moduleLogConfig(MODULE_BOOST, lc).LogLevel)
	assert.Equal(t, LEVEL_INFO, moduleLogConfig(MODULE_REPORT, lc).LogLevel)

	lc.BriefMode = LOG_MODE_PROD
	assert.Equal(t, DefaultLogConfig(false), moduleLogConfig(MODULE_BOOST, lc))
	assert.Equal(t, LEVEL_INFO, ParseLogLevel("verbose"))
	assert.Equal(t, LEVEL_WARN, ParseLogLevel("warn"))
}

func TestGetLogger(t *testing.T) {
	l := GetLogger(MODULE_REPORT)
	assert.Same(t, l, GetLogger(MODULE_REPORT))
	l.Infof("logger %s ready", MODULE_REPORT)

	SetLogConfig(&LogConfig{LogLevel: LEVEL_WARN, LogInConsole: true})
	assert.Same(t, l, GetLogger(MODULE_REPORT))
	assert.False(t, l.Logger().Desugar().Core().Enabled(zapLevels[LEVEL_INFO]))
}

func TestLocalMsgType(t *testing.T) {
	assert.Equal(t, LocalBoostMsg, LocalBoostMsg_Final.Type())
	assert.Equal(t, LocalMsgType(2), LocalBoostMsg_Final.SubType())
	assert.Equal(t, "BoostRound", LocalBoostMsg_Round.String())
}
