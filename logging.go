// logging.go: a minimal, zero-overhead-by-default logging hook.
package dictionary

import "go.uber.org/zap"

// Logger defines a minimal logging interface for internal diagnostics
// (forced resizes, allocation failures, tombstone accumulation). It never
// gates correctness — a Dictionary behaves identically regardless of which
// Logger is installed.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// NoOpLogger discards everything. It is the default, so a Dictionary never
// pays for logging it did not ask for.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...any) {}
func (NoOpLogger) Info(string, ...any)  {}
func (NoOpLogger) Warn(string, ...any)  {}
func (NoOpLogger) Error(string, ...any) {}

// ZapLogger adapts a *zap.Logger to the Logger interface.
type ZapLogger struct {
	L *zap.Logger
}

// NewZapLogger wraps l, substituting a no-op zap.Logger if l is nil.
func NewZapLogger(l *zap.Logger) ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return ZapLogger{L: l}
}

func (z ZapLogger) Debug(msg string, keyvals ...any) { z.L.Sugar().Debugw(msg, keyvals...) }
func (z ZapLogger) Info(msg string, keyvals ...any)  { z.L.Sugar().Infow(msg, keyvals...) }
func (z ZapLogger) Warn(msg string, keyvals ...any)  { z.L.Sugar().Warnw(msg, keyvals...) }
func (z ZapLogger) Error(msg string, keyvals ...any) { z.L.Sugar().Errorw(msg, keyvals...) }
