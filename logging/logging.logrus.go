package logging

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger writes through a logrus entry
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus wraps a logrus logger. A nil logger uses logrus.StandardLogger().
func NewLogrus(logger *logrus.Logger) *LogrusLogger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusLogger{entry: logrus.NewEntry(logger)}
}

// NewLogrusEntry wraps an entry that already carries fields
func NewLogrusEntry(entry *logrus.Entry) *LogrusLogger {
	return &LogrusLogger{entry: entry}
}

// Enabled implements Logger
func (l *LogrusLogger) Enabled(level Level) bool {
	return l.entry.Logger.IsLevelEnabled(logrusLevel(level))
}

// Log implements Logger
func (l *LogrusLogger) Log(level Level, message string, args ...any) {
	l.entry.Logf(logrusLevel(level), message, args...)
}

// LogError implements Logger
func (l *LogrusLogger) LogError(level Level, err error, message string, args ...any) {
	l.entry.WithError(err).Logf(logrusLevel(level), message, args...)
}

// LogEvent implements Logger
func (l *LogrusLogger) LogEvent(level Level, event *Event) {
	if event == nil {
		return
	}
	entry := l.entry
	if event.Err != nil {
		entry = entry.WithError(event.Err)
	}
	if event.Data != nil {
		entry = entry.WithField(DataKeyData, event.Data)
	}
	entry.Logf(logrusLevel(level), event.Message, event.Args...)
}

// LogLazy implements Logger
func (l *LogrusLogger) LogLazy(level Level, supplier func() *Event) {
	if !l.Enabled(level) {
		return
	}
	l.LogEvent(level, supplier())
}

func logrusLevel(level Level) logrus.Level {
	switch {
	case level <= LevelTrace:
		return logrus.TraceLevel
	case level <= LevelDebug:
		return logrus.DebugLevel
	case level <= LevelInfo:
		return logrus.InfoLevel
	case level <= LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
