package log

import "github.com/rs/zerolog"

// zerologAdapter bridges the Logger interface onto a zerolog.Logger.
type zerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps a zerolog.Logger as a Logger.
func NewZerologAdapter(logger zerolog.Logger) Logger {
	return &zerologAdapter{logger: logger}
}

func (a *zerologAdapter) Debug(msg string, fields ...Field) { emit(a.logger.Debug(), msg, fields) }
func (a *zerologAdapter) Info(msg string, fields ...Field)  { emit(a.logger.Info(), msg, fields) }
func (a *zerologAdapter) Warn(msg string, fields ...Field)  { emit(a.logger.Warn(), msg, fields) }
func (a *zerologAdapter) Error(msg string, fields ...Field) { emit(a.logger.Error(), msg, fields) }

func emit(event *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case uint8:
			event = event.Uint8(f.Key, v)
		case uint16:
			event = event.Uint16(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	event.Msg(msg)
}
