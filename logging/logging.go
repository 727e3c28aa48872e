// Package logging is a small logging facade with level checks and lazily
// built events. Backends adapt zap and logrus; TemplateLogger renders
// logmsg templates on top of any backend.
//
// There is no process-wide logger registry: construct a backend and pass it
// to whatever needs it.
package logging

// Level is a log severity. The numeric gaps leave room for custom levels.
type Level int

// Log levels
const (
	LevelTrace Level = 1
	LevelDebug Level = 3
	LevelInfo  Level = 5
	LevelWarn  Level = 7
	LevelError Level = 9
)

// String returns the level name
func (l Level) String() string {
	switch {
	case l <= LevelTrace:
		return LevelNameTrace
	case l <= LevelDebug:
		return LevelNameDebug
	case l <= LevelInfo:
		return LevelNameInfo
	case l <= LevelWarn:
		return LevelNameWarn
	default:
		return LevelNameError
	}
}

// ParseLevel converts a level name to a Level
func ParseLevel(s string) (Level, bool) {
	switch s {
	case LevelNameTrace:
		return LevelTrace, true
	case LevelNameDebug:
		return LevelDebug, true
	case LevelNameInfo:
		return LevelInfo, true
	case LevelNameWarn:
		return LevelWarn, true
	case LevelNameError:
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

// Event is a log line with its printf-style message, the message
// arguments, an optional error and optional structured data.
type Event struct {
	Message string
	Args    []any
	Err     error
	Data    any
}

// NewEvent creates an event with a message format and its arguments
func NewEvent(message string, args ...any) *Event {
	return &Event{Message: message, Args: args}
}

// WithError attaches an error
func (e *Event) WithError(err error) *Event {
	e.Err = err
	return e
}

// WithData replaces the structured data
func (e *Event) WithData(data any) *Event {
	e.Data = data
	return e
}

// AddProperty adds a named value to the structured data. Data that is not
// already a map[string]any is kept under the DataKeyValue key.
func (e *Event) AddProperty(name string, value any) *Event {
	props, ok := e.Data.(map[string]any)
	if !ok {
		props = make(map[string]any)
		if e.Data != nil {
			props[DataKeyValue] = e.Data
		}
		e.Data = props
	}
	props[name] = value
	return e
}

// Logger is implemented by every backend
type Logger interface {
	// Enabled reports whether events at level would be written
	Enabled(level Level) bool
	// Log writes a printf-style message
	Log(level Level, message string, args ...any)
	// LogError writes a printf-style message with an attached error
	LogError(level Level, err error, message string, args ...any)
	// LogEvent writes a prepared event
	LogEvent(level Level, event *Event)
	// LogLazy calls supplier only if level is enabled
	LogLazy(level Level, supplier func() *Event)
}

// Nop discards everything and reports every level as disabled
type Nop struct{}

// Enabled implements Logger
func (Nop) Enabled(Level) bool { return false }

// Log implements Logger
func (Nop) Log(Level, string, ...any) {}

// LogError implements Logger
func (Nop) LogError(Level, error, string, ...any) {}

// LogEvent implements Logger
func (Nop) LogEvent(Level, *Event) {}

// LogLazy implements Logger
func (Nop) LogLazy(Level, func() *Event) {}
