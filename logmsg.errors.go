package logmsg

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-logmsg/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	ErrMsgCompileFailed     = "template compilation failed"
	ErrMsgReferenceNotFound = "template reference could not be resolved"
	ErrMsgNilTemplate       = "template is nil"
	ErrMsgInvalidCacheSize  = "cache size cannot be negative"
	ErrMsgUnknownConvention = "unknown placeholder convention"
	ErrMsgUnknownSerializer = "unknown serializer"
)

// Error code constants for categorization
const (
	ErrCodeParse  = "LOGMSG_PARSE"
	ErrCodeRender = "LOGMSG_RENDER"
	ErrCodeConfig = "LOGMSG_CONFIG"
)

// ErrorKind classifies a compile error
type ErrorKind string

// Compile error kinds
const (
	ErrorKindUnterminatedField        = ErrorKind(internal.ErrorKindUnterminatedField)
	ErrorKindUnexpectedClosingBracket = ErrorKind(internal.ErrorKindUnexpectedClosingBracket)
	ErrorKindStrayEndReplacement      = ErrorKind(internal.ErrorKindStrayEndReplacement)
	ErrorKindInvalidIndexLiteral      = ErrorKind(internal.ErrorKindInvalidIndexLiteral)
	ErrorKindEmptyPropertyName        = ErrorKind(internal.ErrorKindEmptyPropertyName)
	ErrorKindAmbiguousLeadingDigit    = ErrorKind(internal.ErrorKindAmbiguousLeadingDigit)
	ErrorKindMisplacedModifier        = ErrorKind(internal.ErrorKindMisplacedModifier)
	ErrorKindTrailingPositional       = ErrorKind(internal.ErrorKindTrailingPositional)
	ErrorKindUnexpectedToken          = ErrorKind(internal.ErrorKindUnexpectedToken)
)

// Position represents a location in the template source
type Position = internal.Position

// NewCompileError wraps a parser failure. The returned error carries the
// kind and the position as metadata, and its cause renders the full
// diagnostic with the offending line and a caret.
func NewCompileError(cause error) error {
	var serr *internal.SyntaxError
	if !errors.As(cause, &serr) {
		return cuserr.WrapStdError(cause, ErrCodeParse, ErrMsgCompileFailed)
	}
	return cuserr.WrapStdError(cause, ErrCodeParse, serr.Message).
		WithMetadata(MetaKeyKind, string(serr.Kind)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(serr.Position.Offset)).
		WithMetadata(MetaKeyLine, strconv.Itoa(serr.Position.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(serr.Position.Column))
}

// NewMissError creates the error returned by the FallbackError strategy
func NewMissError(miss Miss) error {
	err := cuserr.NewNotFoundError(MetaKeySource, ErrMsgReferenceNotFound).
		WithMetadata(MetaKeyKind, string(miss.Kind)).
		WithMetadata(MetaKeyRaw, miss.Raw)
	if miss.Segment >= 0 {
		err = err.WithMetadata(MetaKeySegment, strconv.Itoa(miss.Segment))
	}
	return err
}

// NewConfigError creates a configuration error for an invalid option value
func NewConfigError(msg, option string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(MetaKeyOption, option)
}

// CompileErrorKind extracts the kind of a compile error
func CompileErrorKind(err error) (ErrorKind, bool) {
	var serr *internal.SyntaxError
	if !errors.As(err, &serr) {
		return StringValueEmpty, false
	}
	return ErrorKind(serr.Kind), true
}

// CompileErrorPosition extracts the source position of a compile error
func CompileErrorPosition(err error) (Position, bool) {
	var serr *internal.SyntaxError
	if !errors.As(err, &serr) {
		return Position{}, false
	}
	return serr.Position, true
}

// CompileErrorDiagnostic returns the multi-line diagnostic of a compile
// error:
//
//	at index 3, line 1: expected property name
//
//	a{.}b
//	   ^
//
// Errors that did not come from the compiler are returned as err.Error().
func CompileErrorDiagnostic(err error) string {
	if err == nil {
		return StringValueEmpty
	}
	var serr *internal.SyntaxError
	if !errors.As(err, &serr) {
		return err.Error()
	}
	return serr.Error()
}

// MissErrorKind extracts the miss kind of a render error
func MissErrorKind(err error) (MissKind, bool) {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return StringValueEmpty, false
	}
	if _, ok := customErr.GetMetadata(MetaKeyRaw); !ok {
		return StringValueEmpty, false
	}
	kind, ok := customErr.GetMetadata(MetaKeyKind)
	if !ok {
		return StringValueEmpty, false
	}
	return MissKind(kind), true
}
