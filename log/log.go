// Package log is the logging facade of the jumon library.
//
// The library itself only emits debug-level progress from the password
// generator; by default everything is discarded. Attach a real logger
// with SetLogger, typically the zerolog adapter:
//
//	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	log.SetLogger(log.NewZerologAdapter(zlog))
//
// Any implementation of the Logger interface works.
package log

import "sync"

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger is the interface the library logs through.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

var (
	mu           sync.RWMutex
	globalLogger Logger = noopLogger{}
)

// SetLogger installs the global logger. Passing nil restores the no-op
// default. Safe for concurrent use.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		globalLogger = noopLogger{}
	} else {
		globalLogger = l
	}
}

// GetLogger returns the current global logger.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Debug logs at debug level through the global logger.
func Debug(msg string, fields ...Field) { GetLogger().Debug(msg, fields...) }

// Info logs at info level through the global logger.
func Info(msg string, fields ...Field) { GetLogger().Info(msg, fields...) }

// Warn logs at warn level through the global logger.
func Warn(msg string, fields ...Field) { GetLogger().Warn(msg, fields...) }

// Error logs at error level through the global logger.
func Error(msg string, fields ...Field) { GetLogger().Error(msg, fields...) }
