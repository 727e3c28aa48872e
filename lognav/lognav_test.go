package lognav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/go-logmsg/logging"
)

type record string

func (r record) PositionID() string { return string(r) }

func records(ids ...string) []record {
	out := make([]record, len(ids))
	for i, id := range ids {
		out[i] = record(id)
	}
	return out
}

func TestNavigator_Empty(t *testing.T) {
	nav := New[record](nil)
	assert.False(t, nav.HasNext())
	assert.Equal(t, 0, nav.NextIndex())

	_, ok := nav.Next()
	assert.False(t, ok)
}

func TestNavigator_Next(t *testing.T) {
	logs := records("a", "b", "c", "c")
	nav := New(logs)

	for i := range logs {
		assert.True(t, nav.HasNext())
		assert.Equal(t, i, nav.NextIndex())
		got, ok := nav.Next()
		require.True(t, ok)
		assert.Equal(t, logs[i], got)
	}

	assert.False(t, nav.HasNext())
	assert.Equal(t, 4, nav.NextIndex())
}

func TestNavigator_NextMatching(t *testing.T) {
	logs := records("a", "b", "c", "c")
	nav := New(logs)

	_, ok := nav.NextMatching([]string{"d"}, nil)
	assert.False(t, ok)
	assert.Equal(t, 0, nav.NextIndex())

	got, ok := nav.NextMatching([]string{"c", "b"}, nil)
	require.True(t, ok)
	assert.Equal(t, logs[1], got)
	assert.Equal(t, 2, nav.NextIndex())

	got, ok = nav.NextMatching([]string{"c"}, nil)
	require.True(t, ok)
	assert.Equal(t, logs[2], got)
	assert.Equal(t, 3, nav.NextIndex())

	_, ok = nav.NextMatching([]string{"a"}, nil)
	assert.False(t, ok)
	assert.True(t, nav.HasNext())
	assert.Equal(t, 3, nav.NextIndex())

	got, ok = nav.NextMatching([]string{"c"}, nil)
	require.True(t, ok)
	assert.Equal(t, logs[3], got)
	assert.False(t, nav.HasNext())
	assert.Equal(t, 4, nav.NextIndex())
}

func TestNavigator_NextMatchingWithLimit(t *testing.T) {
	logs := records("a", "b", "c", "c")
	nav := New(logs)

	tests := []struct {
		search    []string
		limit     []string
		want      record
		found     bool
		nextIndex int
	}{
		{[]string{"d"}, nil, "", false, 0},
		{[]string{"a"}, []string{"b"}, "a", true, 1},
		{[]string{"c"}, []string{"b"}, "", false, 1},
		{[]string{"b"}, []string{"b"}, "", false, 1},
		{[]string{"b"}, []string{"c"}, "b", true, 2},
		{[]string{"c"}, []string{"c"}, "", false, 2},
		{[]string{"c"}, nil, "c", true, 3},
	}
	for i, tt := range tests {
		got, ok := nav.NextMatching(tt.search, tt.limit)
		assert.Equal(t, tt.found, ok, "step %d", i)
		assert.Equal(t, tt.want, got, "step %d", i)
		assert.Equal(t, tt.nextIndex, nav.NextIndex(), "step %d", i)
		assert.True(t, nav.HasNext(), "step %d", i)
	}
}

func TestRecorder_WithTemplateLogger(t *testing.T) {
	rec := NewRecorder(logging.LevelDebug)
	log := logging.NewTemplateLogger(rec, nil)

	log.Trace("dropped")
	log.LogData(logging.LevelInfo, "order {$id} placed", map[string]any{PositionKey: "placed", "id": 7})
	log.Info("unrelated {0}", 1)
	log.LogData(logging.LevelWarn, "order {$id} shipped", map[string]any{PositionKey: "shipped", "id": 7})
	rec.LogEvent(logging.LevelError, logging.NewEvent("done").WithData(map[string]string{PositionKey: "done"}))

	entries := rec.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "order 7 placed", entries[0].Message)
	assert.Equal(t, "placed", entries[0].Position)
	assert.Equal(t, "unrelated 1", entries[1].Message)
	assert.Empty(t, entries[1].Position)

	nav := rec.Navigator()
	got, ok := nav.NextMatching([]string{"placed"}, []string{"shipped"})
	require.True(t, ok)
	assert.Equal(t, "order 7 placed", got.Message)

	_, ok = nav.NextMatching([]string{"done"}, []string{"shipped"})
	assert.False(t, ok)

	got, ok = nav.NextMatching([]string{"done"}, nil)
	require.True(t, ok)
	assert.Equal(t, logging.LevelError, got.Level)
	assert.False(t, nav.HasNext())

	rec.Reset()
	assert.Empty(t, rec.Entries())
}
