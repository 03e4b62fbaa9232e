package logger

import (
	"go.uber.org/zap"
)

var log = zap.NewNop()

// Init replaces the no-op default with a production JSON logger. Call once
// from main; library code and tests can use the package before Init.
func Init() {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.CallerKey = "caller"

	built, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	log = built
}

func Sugar() *zap.SugaredLogger {
	return log.Sugar()
}

func Logger() *zap.Logger {
	return log
}

// Sync flushes buffered entries; safe to defer from main.
func Sync() {
	_ = log.Sync()
}
