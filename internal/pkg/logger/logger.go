// Package logger holds the process-wide zap logger. Init is called once from
// main; every other package reaches the logger through L().
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// Init builds the global logger. Development gets colored console output,
// everything else JSON with ISO-8601 timestamps. LOG_LEVEL overrides the
// default info level.
func Init(development bool) error {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		var level zapcore.Level
		if err := level.Set(lvl); err == nil {
			cfg.Level.SetLevel(level)
		}
	}

	built, err := cfg.Build()
	if err != nil {
		return err
	}
	log = built
	zap.RedirectStdLog(log)
	return nil
}

// L returns the global logger.
func L() *zap.Logger {
	return log
}

// Sync flushes any buffered log entries.
func Sync() error {
	return log.Sync()
}
