package logmsg

import (
	"go.uber.org/zap"

	"github.com/itsatony/go-logmsg/internal"
)

// Template is a compiled log message template. It is immutable and safe for
// concurrent use; compile once and render as often as needed.
type Template struct {
	source string
	parts  []Part
}

// defaultRenderer backs Template.Format
var defaultRenderer = NewRenderer()

// compile runs the lexer and parser over source
func compile(source string, logger *zap.Logger) (*Template, error) {
	logger.Debug(LogMsgCompileStart, zap.Int(LogFieldSource, len(source)))

	nodes, err := internal.Parse(source, logger)
	if err != nil {
		logger.Debug(LogMsgCompileFailed, zap.Error(err))
		return nil, NewCompileError(err)
	}

	tmpl := &Template{
		source: source,
		parts:  partsFromNodes(nodes),
	}
	logger.Debug(LogMsgCompileDone, zap.Int(LogFieldParts, len(tmpl.parts)))
	return tmpl, nil
}

// Source returns the template source
func (t *Template) Source() string {
	return t.source
}

// Parts returns a copy of the compiled parts in source order
func (t *Template) Parts() []Part {
	parts := make([]Part, len(t.parts))
	copy(parts, t.parts)
	return parts
}

// Raw returns the exact source text a part was compiled from, e.g. "{@0}"
func (t *Template) Raw(p Part) string {
	span := p.SourceSpan()
	if span.Start < 0 || span.End > len(t.source) || span.Start > span.End {
		return StringValueEmpty
	}
	return t.source[span.Start:span.End]
}

// HasReferences reports whether the template contains any replacement field
func (t *Template) HasReferences() bool {
	for _, p := range t.parts {
		if _, ok := p.(Literal); !ok {
			return true
		}
	}
	return false
}

// slotAt reports whether the part at i renders as an argument slot
func (t *Template) slotAt(i int) bool {
	if i >= len(t.parts) {
		return false
	}
	_, literal := t.parts[i].(Literal)
	return !literal
}

// String returns the template source
func (t *Template) String() string {
	return t.source
}

// Format renders the template with the default renderer and returns the
// materialized text. Unresolved references keep their raw source.
func (t *Template) Format(args []any, data any) string {
	msg, err := defaultRenderer.Render(t, RenderContext{Args: args, Data: data})
	if err != nil {
		return t.source
	}
	return msg.String()
}
