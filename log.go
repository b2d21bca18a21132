package learningassistant

import (
	"strings"

	"go.uber.org/zap"
)

// Global verbose flag
var verboseMode bool

var logger = zap.NewNop().Sugar()

// SetVerbose sets the global verbose mode
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// SetLogger replaces the package logger
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	logger = l
}

// Logger returns the package logger
func Logger() *zap.SugaredLogger {
	return logger
}

// NewLogger builds a sugared zap logger. mode "prod" or "production" selects
// JSON output, anything else the development console encoder.
func NewLogger(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// VerboseLog logs at debug level only when verbose mode is enabled
func VerboseLog(msg string, keysAndValues ...interface{}) {
	if verboseMode {
		logger.Debugw(msg, keysAndValues...)
	}
}
