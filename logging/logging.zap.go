package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger writes through a zap sugared logger. Zap has no trace level, so
// LevelTrace maps to debug.
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZap wraps a zap logger. A nil logger discards everything.
func NewZap(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	// Caller annotations point at the adapter's caller.
	logger = logger.WithOptions(zap.AddCallerSkip(1))
	return &ZapLogger{
		base:  logger,
		sugar: logger.Sugar(),
	}
}

// Enabled implements Logger
func (z *ZapLogger) Enabled(level Level) bool {
	return z.base.Core().Enabled(zapLevel(level))
}

// Log implements Logger
func (z *ZapLogger) Log(level Level, message string, args ...any) {
	z.sugar.Logf(zapLevel(level), message, args...)
}

// LogError implements Logger
func (z *ZapLogger) LogError(level Level, err error, message string, args ...any) {
	z.sugar.With(zap.Error(err)).Logf(zapLevel(level), message, args...)
}

// LogEvent implements Logger
func (z *ZapLogger) LogEvent(level Level, event *Event) {
	if event == nil {
		return
	}
	sugar := z.sugar
	if event.Err != nil {
		sugar = sugar.With(zap.Error(event.Err))
	}
	if event.Data != nil {
		sugar = sugar.With(zap.Any(DataKeyData, event.Data))
	}
	sugar.Logf(zapLevel(level), event.Message, event.Args...)
}

// LogLazy implements Logger
func (z *ZapLogger) LogLazy(level Level, supplier func() *Event) {
	if !z.Enabled(level) {
		return
	}
	z.LogEvent(level, supplier())
}

func zapLevel(level Level) zapcore.Level {
	switch {
	case level <= LevelDebug:
		return zapcore.DebugLevel
	case level <= LevelInfo:
		return zapcore.InfoLevel
	case level <= LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
