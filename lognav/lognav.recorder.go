package lognav

import (
	"fmt"
	"sync"

	"github.com/itsatony/go-logmsg"
	"github.com/itsatony/go-logmsg/logging"
)

// PositionKey is the structured data property that carries a position id
const PositionKey = "position_id"

// Entry is one recorded log line
type Entry struct {
	Level    logging.Level
	Message  string
	Err      error
	Data     any
	Position string
}

// PositionID implements PositionHolder
func (e Entry) PositionID() string {
	return e.Position
}

// Recorder is a logging.Logger that keeps every event in memory. Position
// ids are read from the PositionKey property of map data, including data
// wrapped by a TemplateLogger.
type Recorder struct {
	mu       sync.Mutex
	minLevel logging.Level
	entries  []Entry
}

// NewRecorder creates a recorder that keeps events at minLevel and above
func NewRecorder(minLevel logging.Level) *Recorder {
	return &Recorder{minLevel: minLevel}
}

// Enabled implements logging.Logger
func (r *Recorder) Enabled(level logging.Level) bool {
	return level >= r.minLevel
}

// Log implements logging.Logger
func (r *Recorder) Log(level logging.Level, message string, args ...any) {
	r.LogEvent(level, logging.NewEvent(message, args...))
}

// LogError implements logging.Logger
func (r *Recorder) LogError(level logging.Level, err error, message string, args ...any) {
	r.LogEvent(level, logging.NewEvent(message, args...).WithError(err))
}

// LogEvent implements logging.Logger
func (r *Recorder) LogEvent(level logging.Level, event *logging.Event) {
	if event == nil || !r.Enabled(level) {
		return
	}
	entry := Entry{
		Level:    level,
		Message:  fmt.Sprintf(event.Message, event.Args...),
		Err:      event.Err,
		Data:     event.Data,
		Position: positionOf(event.Data),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

// LogLazy implements logging.Logger
func (r *Recorder) LogLazy(level logging.Level, supplier func() *logging.Event) {
	if !r.Enabled(level) {
		return
	}
	r.LogEvent(level, supplier())
}

// Entries returns a snapshot of the recorded entries
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Navigator returns a navigator over a snapshot of the recorded entries
func (r *Recorder) Navigator() *Navigator[Entry] {
	return New(r.Entries())
}

// Reset drops every recorded entry
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

func positionOf(data any) string {
	if s, ok := data.(*logmsg.Structured); ok {
		data = s.Value()
	}
	switch m := data.(type) {
	case map[string]any:
		id, _ := m[PositionKey].(string)
		return id
	case map[string]string:
		return m[PositionKey]
	default:
		return ""
	}
}
