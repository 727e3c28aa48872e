package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/go-logmsg"
)

func TestFallbackCounter_CountsByKind(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter, err := NewFallbackCounter(nil, reg)
	require.NoError(t, err)

	r := logmsg.NewRenderer(logmsg.WithFallbackPolicy(counter))
	tmpl := logmsg.MustCompile("{0} {a.b} {c}")

	msg, err := r.Render(tmpl, logmsg.RenderContext{Data: map[string]any{"a": nil}})
	require.NoError(t, err)
	assert.Equal(t, "{0} {a.b} {c}", msg.String())

	vec := counter.Collector()
	assert.Equal(t, 1.0, testutil.ToFloat64(vec.WithLabelValues(string(logmsg.MissPositionalArgsAbsent), OutcomeSubstitute)))
	assert.Equal(t, 1.0, testutil.ToFloat64(vec.WithLabelValues(string(logmsg.MissPathThroughNull), OutcomeSubstitute)))
	assert.Equal(t, 1.0, testutil.ToFloat64(vec.WithLabelValues(string(logmsg.MissPathSegmentNotFound), OutcomeSubstitute)))
	assert.Equal(t, 3, testutil.CollectAndCount(vec))
}

func TestFallbackCounter_Refused(t *testing.T) {
	counter, err := NewFallbackCounter(logmsg.NewFallbackPolicy(logmsg.FallbackError, nil), prometheus.NewRegistry())
	require.NoError(t, err)

	r := logmsg.NewRenderer(logmsg.WithFallbackPolicy(counter))
	_, err = r.Render(logmsg.MustCompile("{3}"), logmsg.RenderContext{Args: []any{1}})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(
		counter.Collector().WithLabelValues(string(logmsg.MissPositionalIndexOutOfRange), OutcomeRefused)))
}

func TestNewFallbackCounter_ReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewFallbackCounter(nil, reg)
	require.NoError(t, err)
	second, err := NewFallbackCounter(nil, reg)
	require.NoError(t, err)

	assert.Same(t, first.Collector(), second.Collector())
}

func TestNewFallbackCounter_ConflictingCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{
		Name: FallbackTotalName,
		Help: FallbackTotalHelp,
	}))

	_, err := NewFallbackCounter(nil, reg)
	assert.Error(t, err)
}

func TestNewFallbackCounter_NoRegisterer(t *testing.T) {
	counter, err := NewFallbackCounter(nil, nil)
	require.NoError(t, err)

	sub, err := counter.Substitute(logmsg.Miss{Kind: logmsg.MissPathSegmentNotFound, Raw: "{x}"})
	require.NoError(t, err)
	assert.Equal(t, "{x}", sub.Value)
	assert.True(t, sub.Verbatim)
}
