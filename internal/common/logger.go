package common

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"movieplus/internal/config"
)

// NewLogger builds the process logger from config. Level defaults to
// info when the configured value does not parse.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
		level = parsed
	}

	var zc zap.Config
	if cfg.Logging.Format == "text" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
