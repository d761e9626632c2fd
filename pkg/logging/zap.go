package logging

import "go.uber.org/zap"

// ZapLogger adapts a *zap.Logger to the Logger interface.
type ZapLogger struct {
	l *zap.Logger
}

// Zap wraps a zap logger for use as a Logger. A nil logger yields a no-op
// adapter.
func Zap(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{l: l}
}

// Debug implements Logger.
func (z *ZapLogger) Debug(msg string, fields ...Field) {
	z.l.Debug(msg, zapFields(fields)...)
}

// Info implements Logger.
func (z *ZapLogger) Info(msg string, fields ...Field) {
	z.l.Info(msg, zapFields(fields)...)
}

// Warn implements Logger.
func (z *ZapLogger) Warn(msg string, fields ...Field) {
	z.l.Warn(msg, zapFields(fields)...)
}

// Error implements Logger.
func (z *ZapLogger) Error(msg string, fields ...Field) {
	z.l.Error(msg, zapFields(fields)...)
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}
