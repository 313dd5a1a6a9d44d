package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Init builds the global logger at the given level. Call once at startup.
func Init(level string) error {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return err
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Stack traces add noise in CloudWatch; the request log carries them instead.
	config.EncoderConfig.StacktraceKey = ""

	logger, err := config.Build()
	if err != nil {
		return err
	}

	log = logger
	return nil
}

// GetLogger returns the global logger, falling back to a production logger
// when Init has not run (tests, ad-hoc tools).
func GetLogger() *zap.Logger {
	if log == nil {
		var err error
		log, err = zap.NewProduction(zap.WithCaller(false))
		if err != nil {
			panic(err)
		}
	}
	return log
}

// Sync flushes any buffered log entries.
func Sync() error {
	return GetLogger().Sync()
}
