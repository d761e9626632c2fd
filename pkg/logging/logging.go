// Package logging defines the minimal structured logging protocol used by
// the SDK. Callers that already run a logging stack plug it in through the
// Logger interface; the zap adapter covers the common case.
package logging

// Logger is the logging protocol accepted throughout the SDK.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is a key-value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// F is a shorthand Field constructor.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// NoOpLogger discards everything. It is used whenever no logger is
// configured.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, fields ...Field) {}
func (NoOpLogger) Info(msg string, fields ...Field)  {}
func (NoOpLogger) Warn(msg string, fields ...Field)  {}
func (NoOpLogger) Error(msg string, fields ...Field) {}
