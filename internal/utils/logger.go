// Package utils provides small helpers shared across packages
package utils

// Logger is the minimal logging contract the library packages depend on
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// NoopLogger is a logger implementation that discards everything. It is the
// default for packages that were not handed a real logger.
type NoopLogger struct{}

func (l NoopLogger) Debug(format string, args ...interface{}) {}
func (l NoopLogger) Info(format string, args ...interface{})  {}
func (l NoopLogger) Warn(format string, args ...interface{})  {}
func (l NoopLogger) Error(format string, args ...interface{}) {}
