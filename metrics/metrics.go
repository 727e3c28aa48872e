// Package metrics counts logmsg fallback substitutions with Prometheus.
//
//	policy, err := metrics.NewFallbackCounter(
//		logmsg.NewFallbackPolicy(logmsg.FallbackKeepRaw, nil),
//		prometheus.DefaultRegisterer,
//	)
//	r := logmsg.NewRenderer(logmsg.WithFallbackPolicy(policy))
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/itsatony/go-logmsg"
)

// Metric names and labels
const (
	FallbackTotalName = "logmsg_fallback_total"
	FallbackTotalHelp = "Template references handled by the fallback policy"
	LabelKind         = "kind"
	LabelOutcome      = "outcome"
	OutcomeSubstitute = "substituted"
	OutcomeRefused    = "refused"
)

// FallbackCounter decorates a fallback policy and counts every miss it
// handles by miss kind and outcome.
type FallbackCounter struct {
	next  logmsg.FallbackPolicy
	total *prometheus.CounterVec
}

// NewFallbackCounter wraps next and registers the counter with registerer.
// A counter already registered under the same name is reused, so several
// renderers can share one metric. A nil registerer skips registration.
func NewFallbackCounter(next logmsg.FallbackPolicy, registerer prometheus.Registerer) (*FallbackCounter, error) {
	if next == nil {
		next = logmsg.NewFallbackPolicy(logmsg.FallbackKeepRaw, nil)
	}

	total := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: FallbackTotalName,
			Help: FallbackTotalHelp,
		},
		[]string{LabelKind, LabelOutcome},
	)

	if registerer != nil {
		if err := registerer.Register(total); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, err
			}
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, err
			}
			total = existing
		}
	}

	return &FallbackCounter{next: next, total: total}, nil
}

// Substitute implements logmsg.FallbackPolicy
func (c *FallbackCounter) Substitute(miss logmsg.Miss) (logmsg.Substitution, error) {
	sub, err := c.next.Substitute(miss)
	outcome := OutcomeSubstitute
	if err != nil {
		outcome = OutcomeRefused
	}
	c.total.WithLabelValues(string(miss.Kind), outcome).Inc()
	return sub, err
}

// Collector returns the underlying counter vector
func (c *FallbackCounter) Collector() *prometheus.CounterVec {
	return c.total
}
