package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig holds configuration for the Zap logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// Output overrides the destination (stderr by default).
	Output zapcore.WriteSyncer
}

// zapLogger implements Logger.
type zapLogger struct {
	sugar *zap.SugaredLogger
	cfg   ZapConfig
	// fields added through With, replayed onto a request logger found in ctx.
	fields []any
}
