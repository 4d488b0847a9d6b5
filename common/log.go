package common

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LOG_LEVEL int

const (
	LEVEL_DEBUG LOG_LEVEL = iota
	LEVEL_INFO
	LEVEL_WARN
	LEVEL_ERROR
)

var (
	LOG_LEVEL_Name = map[LOG_LEVEL]string{
		LEVEL_DEBUG: "DEBUG",
		LEVEL_INFO:  "INFO",
		LEVEL_WARN:  "WARN",
		LEVEL_ERROR: "ERROR",
	}
	LOG_LEVEL_Value = map[string]LOG_LEVEL{
		"DEBUG": LEVEL_DEBUG,
		"INFO":  LEVEL_INFO,
		"WARN":  LEVEL_WARN,
		"ERROR": LEVEL_ERROR,
	}
	zapLevels = map[LOG_LEVEL]zapcore.Level{
		LEVEL_DEBUG: zap.DebugLevel,
		LEVEL_INFO:  zap.InfoLevel,
		LEVEL_WARN:  zap.WarnLevel,
		LEVEL_ERROR: zap.ErrorLevel,
	}
)

// ParseLogLevel falls back to INFO for unknown names.
func ParseLogLevel(name string) LOG_LEVEL {
	if lvl, ok := LOG_LEVEL_Value[strings.ToUpper(name)]; ok {
		return lvl
	}
	return LEVEL_INFO
}

const (
	LOG_MODE_DEV  = "DEV"
	LOG_MODE_PROD = "PROD"
)

type LogConfig struct {
	BriefMode          string
	ModuleSpecialLevel map[string]LOG_LEVEL

	LogPath        string // empty disables the file sink
	LogLevel       LOG_LEVEL
	RotationMaxAge int // days
	RotationTime   int // hours
	RotationSize   int // MB
	ShowLine       bool
	LogInConsole   bool
}

func DefaultLogConfig(isDEV bool) *LogConfig {
	if isDEV {
		return &LogConfig{
			LogLevel:     LEVEL_DEBUG,
			ShowLine:     true,
			LogInConsole: true,
		}
	}

	return &LogConfig{
		LogPath:        "./adaboost.prod.log",
		LogLevel:       LEVEL_INFO,
		RotationMaxAge: 7,
		RotationTime:   24,
		RotationSize:   30,
		LogInConsole:   true,
	}
}

// moduleLogConfig resolves the effective config for one named module.
func moduleLogConfig(name string, lc *LogConfig) *LogConfig {
	if lc.BriefMode != "" {
		return DefaultLogConfig(lc.BriefMode != LOG_MODE_PROD)
	}

	mc := *lc
	if lvl, ok := lc.ModuleSpecialLevel[name]; ok {
		mc.LogLevel = lvl
	}
	mc.ModuleSpecialLevel = nil
	return &mc
}

func newWriteSyncer(lc *LogConfig) zapcore.WriteSyncer {
	var syncers []zapcore.WriteSyncer
	if lc.LogInConsole {
		syncers = append(syncers, zapcore.AddSync(os.Stdout))
	}
	if lc.LogPath != "" {
		rotationWriter, err := rotatelogs.New(
			lc.LogPath+".%Y%m%d%H",
			rotatelogs.WithRotationTime(time.Duration(lc.RotationTime)*time.Hour),
			rotatelogs.WithRotationSize(int64(lc.RotationSize)*1024*1024),
			rotatelogs.WithMaxAge(time.Duration(lc.RotationMaxAge)*24*time.Hour),
		)
		if err != nil {
			log.Fatalf("new rotation log failed, %s", err)
		}
		syncers = append(syncers, zapcore.AddSync(rotationWriter))
	}
	if len(syncers) == 0 {
		return zapcore.AddSync(os.Stderr)
	}
	return zapcore.NewMultiWriteSyncer(syncers...)
}

func NewSugaredLogger(name string, lc *LogConfig) *zap.SugaredLogger {
	mc := moduleLogConfig(name, lc)

	zapLevel, ok := zapLevels[mc.LogLevel]
	if !ok {
		zapLevel = zap.InfoLevel
	}
	enabler := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapLevel
	})

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "time",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "line",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + level.CapitalString() + "]")
		},
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
		},
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), newWriteSyncer(mc), enabler)

	// BoostLogger wraps the sugared logger, so skip one frame for the caller
	opts := []zap.Option{zap.AddCallerSkip(1)}
	if mc.ShowLine {
		opts = append(opts, zap.AddCaller())
	}
	return zap.New(core, opts...).Named(name).Sugar()
}

const (
	MODULE_BOOST    = "[Boost]"
	MODULE_DATAPREP = "[DataPrep]"
	MODULE_REPORT   = "[Report]"
	MODULE_NODE     = "[Node]"
	MODULE_MSGBUS   = "[MsgBus]"
)

var modules = []string{MODULE_BOOST, MODULE_DATAPREP, MODULE_REPORT, MODULE_NODE, MODULE_MSGBUS}

// ModuleName resolves "boost" or "[Boost]" to MODULE_BOOST, ignoring case.
func ModuleName(name string) (string, bool) {
	name = strings.Trim(name, "[]")
	for _, m := range modules {
		if strings.EqualFold(strings.Trim(m, "[]"), name) {
			return m, true
		}
	}
	return "", false
}

type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type BoostLogger struct {
	zlog  *zap.SugaredLogger
	name  string
	mutex sync.RWMutex
}

func (l *BoostLogger) sugar() *zap.SugaredLogger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.zlog
}

func (l *BoostLogger) Logger() *zap.SugaredLogger { return l.sugar() }

func (l *BoostLogger) Debug(args ...interface{}) { l.sugar().Debug(args...) }

func (l *BoostLogger) Debugf(format string, args ...interface{}) { l.sugar().Debugf(format, args...) }

func (l *BoostLogger) Info(args ...interface{}) { l.sugar().Info(args...) }

func (l *BoostLogger) Infof(format string, args ...interface{}) { l.sugar().Infof(format, args...) }

func (l *BoostLogger) Warn(args ...interface{}) { l.sugar().Warn(args...) }

func (l *BoostLogger) Warnf(format string, args ...interface{}) { l.sugar().Warnf(format, args...) }

func (l *BoostLogger) Error(args ...interface{}) { l.sugar().Error(args...) }

func (l *BoostLogger) Errorf(format string, args ...interface{}) { l.sugar().Errorf(format, args...) }

func (l *BoostLogger) Sync() error { return l.sugar().Sync() }

func (l *BoostLogger) SetLogger(logger *zap.SugaredLogger) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.zlog = logger
}

var (
	loggers      = make(map[string]*BoostLogger)
	loggerMutex  sync.RWMutex
	curLogConfig *LogConfig
)

func GetLogger(name string) *BoostLogger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if logger, ok := loggers[name]; ok {
		return logger
	}
	if curLogConfig == nil {
		curLogConfig = DefaultLogConfig(true)
	}

	logger := &BoostLogger{
		name: name,
		zlog: NewSugaredLogger(name, curLogConfig),
	}
	loggers[name] = logger
	return logger
}

// SetLogConfig rebuilds every logger handed out so far.
func SetLogConfig(config *LogConfig) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	curLogConfig = config
	for _, logger := range loggers {
		logger.SetLogger(NewSugaredLogger(logger.name, curLogConfig))
	}
}

// SyncLoggers flushes buffered entries of all module loggers.
func SyncLoggers() {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	for _, logger := range loggers {
		_ = logger.Sync()
	}
}
