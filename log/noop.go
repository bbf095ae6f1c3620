package log

// noopLogger discards everything; it is the default.
type noopLogger struct{}

// Noop returns a logger that discards all output.
func Noop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(msg string, fields ...Field) {}
func (noopLogger) Info(msg string, fields ...Field)  {}
func (noopLogger) Warn(msg string, fields ...Field)  {}
func (noopLogger) Error(msg string, fields ...Field) {}
