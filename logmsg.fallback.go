package logmsg

import (
	"go.uber.org/zap"
)

// Miss describes a reference that could not be resolved during rendering
type Miss struct {
	Kind MissKind
	Part Part
	// Raw is the exact field source, e.g. "{user.name}"
	Raw string
	// Segment is the failing path segment, or -1 for positional references
	Segment int
}

// Substitution is what a FallbackPolicy puts in place of a missed value.
// A Verbatim value is emitted as-is even when the reference asked for
// serialization.
type Substitution struct {
	Value    any
	Verbatim bool
}

// FallbackPolicy decides what to render for an unresolved reference.
// Returning an error aborts the render.
type FallbackPolicy interface {
	Substitute(miss Miss) (Substitution, error)
}

// FallbackFunc adapts a function to FallbackPolicy
type FallbackFunc func(miss Miss) (Substitution, error)

// Substitute implements FallbackPolicy
func (f FallbackFunc) Substitute(miss Miss) (Substitution, error) {
	return f(miss)
}

// NewFallbackPolicy returns the built-in policy for a strategy.
// The logger is only used by FallbackLog.
func NewFallbackPolicy(strategy FallbackStrategy, logger *zap.Logger) FallbackPolicy {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch strategy {
	case FallbackNull:
		return FallbackFunc(substituteNull)
	case FallbackEmpty:
		return FallbackFunc(substituteEmpty)
	case FallbackLog:
		return &logFallback{logger: logger}
	case FallbackError:
		return FallbackFunc(substituteError)
	default:
		return FallbackFunc(substituteRaw)
	}
}

func substituteRaw(miss Miss) (Substitution, error) {
	return Substitution{Value: miss.Raw, Verbatim: true}, nil
}

func substituteNull(Miss) (Substitution, error) {
	return Substitution{Value: nil}, nil
}

func substituteEmpty(Miss) (Substitution, error) {
	return Substitution{Value: StringValueEmpty, Verbatim: true}, nil
}

func substituteError(miss Miss) (Substitution, error) {
	return Substitution{}, NewMissError(miss)
}

// logFallback warns about every miss and keeps the raw source
type logFallback struct {
	logger *zap.Logger
}

func (f *logFallback) Substitute(miss Miss) (Substitution, error) {
	f.logger.Warn(LogMsgFallbackMiss,
		zap.String(LogFieldKind, string(miss.Kind)),
		zap.String(LogFieldRaw, miss.Raw),
		zap.Int(LogFieldSegment, miss.Segment))
	return substituteRaw(miss)
}
