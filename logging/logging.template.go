package logging

import (
	"errors"

	"github.com/itsatony/go-logmsg"
)

// TemplateLogger logs logmsg templates through a backend. Templates are
// compiled once through the engine cache, and nothing is rendered or
// serialized when the backend has the level disabled.
//
//	log := logging.NewTemplateLogger(logging.NewZap(zapLogger), nil)
//	log.LogData(logging.LevelInfo, "user {$name} logged in from {0}", user, remoteAddr)
type TemplateLogger struct {
	backend Logger
	engine  *logmsg.Engine
}

// NewTemplateLogger creates a template logger. A nil backend discards
// everything; a nil engine uses logmsg defaults.
func NewTemplateLogger(backend Logger, engine *logmsg.Engine) *TemplateLogger {
	if backend == nil {
		backend = Nop{}
	}
	if engine == nil {
		engine = logmsg.MustNew()
	}
	return &TemplateLogger{
		backend: backend,
		engine:  engine,
	}
}

// Backend returns the underlying logger
func (l *TemplateLogger) Backend() Logger {
	return l.backend
}

// Enabled reports whether the backend writes events at level
func (l *TemplateLogger) Enabled(level Level) bool {
	return l.backend.Enabled(level)
}

// Log renders template against positional args
func (l *TemplateLogger) Log(level Level, template string, args ...any) {
	l.log(level, nil, template, nil, args)
}

// LogData renders template against tree data and positional args. The data
// is also attached to the event as structured context.
func (l *TemplateLogger) LogData(level Level, template string, data any, args ...any) {
	l.log(level, nil, template, data, args)
}

// LogError is LogData with an attached error
func (l *TemplateLogger) LogError(level Level, err error, template string, data any, args ...any) {
	l.log(level, err, template, data, args)
}

// Trace logs at LevelTrace
func (l *TemplateLogger) Trace(template string, args ...any) { l.Log(LevelTrace, template, args...) }

// Debug logs at LevelDebug
func (l *TemplateLogger) Debug(template string, args ...any) { l.Log(LevelDebug, template, args...) }

// Info logs at LevelInfo
func (l *TemplateLogger) Info(template string, args ...any) { l.Log(LevelInfo, template, args...) }

// Warn logs at LevelWarn
func (l *TemplateLogger) Warn(template string, args ...any) { l.Log(LevelWarn, template, args...) }

// Error logs at LevelError
func (l *TemplateLogger) Error(template string, args ...any) { l.Log(LevelError, template, args...) }

func (l *TemplateLogger) log(level Level, err error, template string, data any, args []any) {
	l.backend.LogLazy(level, func() *Event {
		return l.event(err, template, data, args)
	})
}

// event renders template into a backend event. A template that cannot be
// rendered is logged verbatim with the render error attached.
func (l *TemplateLogger) event(err error, template string, data any, args []any) *Event {
	msg, renderErr := l.engine.Render(template, logmsg.RenderContext{Args: args, Data: data})
	if renderErr != nil {
		return &Event{
			Message: verbatimFormat,
			Args:    []any{template},
			Err:     errors.Join(err, renderErr),
			Data:    data,
		}
	}

	event := &Event{Err: err}
	if len(msg.Args()) == 0 {
		event.Message = verbatimFormat
		event.Args = []any{msg.String()}
	} else {
		event.Message = msg.Format()
		event.Args = msg.Args()
	}
	if data != nil {
		event.Data = msg.Structured()
	}
	return event
}

const verbatimFormat = "%s"
