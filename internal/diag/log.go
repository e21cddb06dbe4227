package diag

import "github.com/rs/zerolog"

// LogSink writes diagnostics as structured log events.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a sink backed by the given logger.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(d Diagnostic) {
	var ev *zerolog.Event
	switch d.Severity {
	case SeverityError:
		ev = s.logger.Error()
	case SeverityWarning:
		ev = s.logger.Warn()
	default:
		ev = s.logger.Info()
	}
	ev = ev.Str("source", d.Source)
	if d.Line > 0 {
		ev = ev.Int("line", d.Line)
	}
	ev.Msg(d.Message)
}
