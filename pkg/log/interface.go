package log

import "context"

// Logger is the structured logger used across bank-api.
// Every method takes the request context first; implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)

	// With returns a child logger carrying the given key/value pairs on every entry.
	With(keysAndValues ...any) Logger
	// Sync flushes buffered entries.
	Sync() error
}

// Init builds a zap-backed Logger from cfg.
func Init(cfg ZapConfig) Logger {
	l := &zapLogger{cfg: cfg}
	l.init()
	return l
}

// NewNop returns a Logger that discards everything. Used by tests and tools.
func NewNop() Logger {
	return newNop()
}

// WithContext stores a request-scoped logger in ctx so that later calls with
// the same ctx pick up its fields. Fields a caller added with With are kept on
// top of it.
func WithContext(ctx context.Context, l Logger) context.Context {
	zl, ok := l.(*zapLogger)
	if !ok {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, zl.sugar)
}
