package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/itsatony/go-logmsg"
)

func newObservedTemplateLogger(t *testing.T, opts ...logmsg.Option) (*TemplateLogger, *observer.ObservedLogs, *logmsg.Engine) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	engine, err := logmsg.New(opts...)
	require.NoError(t, err)
	return NewTemplateLogger(NewZap(zap.New(core)), engine), logs, engine
}

func TestTemplateLogger_LogData(t *testing.T) {
	log, logs, _ := newObservedTemplateLogger(t)

	log.LogData(LevelInfo, "user {$name} logged in from {0}", map[string]any{"name": "ann"}, "10.0.0.1")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "user ann logged in from 10.0.0.1", entry.Message)
	assert.Equal(t, `{"name":"ann"}`, entry.ContextMap()[DataKeyData])
}

func TestTemplateLogger_Percent(t *testing.T) {
	log, logs, _ := newObservedTemplateLogger(t)

	log.Info("100% of {0}", "disk")
	log.Info("100% done")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "100% of disk", entries[0].Message)
	assert.Equal(t, "100% done", entries[1].Message)
}

func TestTemplateLogger_Serialized(t *testing.T) {
	log, logs, _ := newObservedTemplateLogger(t)

	log.LogData(LevelWarn, "payload {@req} id {$req.id}", map[string]any{
		"req": map[string]any{"id": 7},
	})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, `payload {"id":7} id 7`, logs.All()[0].Message)
}

func TestTemplateLogger_DisabledLevelSkipsCompile(t *testing.T) {
	log, logs, engine := newObservedTemplateLogger(t)

	log.Debug("never {0}", "rendered")
	log.Trace("never {0}", "rendered")

	assert.Equal(t, 0, logs.Len())
	stats := engine.CacheStats()
	assert.Zero(t, stats.Hits+stats.Misses)
}

func TestTemplateLogger_CompileError(t *testing.T) {
	log, logs, _ := newObservedTemplateLogger(t)

	log.Error("broken {0", "x")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "broken {0", entry.Message)
	assert.Contains(t, entry.ContextMap()["error"], "expected '}'")
}

func TestTemplateLogger_FallbackError(t *testing.T) {
	log, logs, _ := newObservedTemplateLogger(t, logmsg.WithFallbackStrategy(logmsg.FallbackError))

	log.Warn("value {0}")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "value {0}", entry.Message)
	assert.Contains(t, entry.ContextMap(), "error")
}

func TestTemplateLogger_KeepRawMiss(t *testing.T) {
	log, logs, _ := newObservedTemplateLogger(t)

	log.Info("value {0} and {missing}")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "value {0} and {missing}", logs.All()[0].Message)
}

func TestTemplateLogger_Logrus(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)
	log := NewTemplateLogger(NewLogrus(logger), nil)

	data := map[string]any{"order": map[string]any{"id": "A-1"}}
	log.LogError(LevelError, assert.AnError, "order {$order.id} failed", data)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "order A-1 failed", entry.Message)
	assert.Equal(t, assert.AnError, entry.Data[logrus.ErrorKey])

	structured, ok := entry.Data[DataKeyData].(*logmsg.Structured)
	require.True(t, ok)
	assert.Equal(t, data, structured.Value())
}

func TestNewTemplateLogger_Defaults(t *testing.T) {
	log := NewTemplateLogger(nil, nil)
	assert.Equal(t, Nop{}, log.Backend())
	assert.False(t, log.Enabled(LevelError))
	log.Error("nothing {0}", 1)
}
