package logmsg

import (
	"fmt"
	"strings"
)

// PlaceholderConvention describes the format string dialect of a logging
// backend: how an argument slot is written and how literal text must be
// escaped so the backend does not mistake it for a slot.
type PlaceholderConvention interface {
	// Placeholder returns the slot for the argument at position (zero-based)
	Placeholder(position int) string
	// EscapeLiteral escapes literal text for this dialect. beforeSlot is
	// true when a slot directly follows the text.
	EscapeLiteral(text string, beforeSlot bool) string
}

// PrintfConvention is the fmt dialect used by zap's sugared logger and logrus
type PrintfConvention struct{}

// Placeholder implements PlaceholderConvention
func (PrintfConvention) Placeholder(int) string { return PlaceholderPrintf }

// EscapeLiteral implements PlaceholderConvention
func (PrintfConvention) EscapeLiteral(text string, _ bool) string {
	return strings.ReplaceAll(text, PrintfPercent, PrintfEscapedPercent)
}

// SLF4JConvention writes "{}" slots. SLF4J only reads a backslash as an
// escape directly before "{}", so a literal "{}" becomes "\{}" and a literal
// ending in a backslash gets one more when a slot follows. Lone braces pass
// through untouched.
type SLF4JConvention struct{}

// Placeholder implements PlaceholderConvention
func (SLF4JConvention) Placeholder(int) string { return PlaceholderSLF4J }

// EscapeLiteral implements PlaceholderConvention
//
// SLF4J has no spelling for a literal backslash followed by "{}": such
// backslashes are dropped so the pair never turns into a slot.
func (SLF4JConvention) EscapeLiteral(text string, beforeSlot bool) string {
	var b strings.Builder
	for {
		i := strings.Index(text, PlaceholderSLF4J)
		if i < 0 {
			break
		}
		b.WriteString(strings.TrimRight(text[:i], SLF4JEscape))
		b.WriteString(SLF4JEscape)
		b.WriteString(PlaceholderSLF4J)
		text = text[i+len(PlaceholderSLF4J):]
	}
	b.WriteString(text)
	if beforeSlot && strings.HasSuffix(text, SLF4JEscape) {
		b.WriteString(SLF4JEscape)
	}
	return b.String()
}

// IndexedConvention writes numbered "{0}" slots and doubles literal braces
type IndexedConvention struct{}

// Placeholder implements PlaceholderConvention
func (IndexedConvention) Placeholder(position int) string {
	return fmt.Sprintf(PlaceholderIndexedFmt, position)
}

// EscapeLiteral implements PlaceholderConvention
func (IndexedConvention) EscapeLiteral(text string, _ bool) string {
	return indexedEscaper.Replace(text)
}

var indexedEscaper = strings.NewReplacer(
	IndexedOpen, IndexedEscapedOpen,
	IndexedClose, IndexedEscapedClose,
)

// PlaceholderConventionByName returns a built-in convention
func PlaceholderConventionByName(name string) (PlaceholderConvention, error) {
	switch name {
	case PlaceholderNamePrintf:
		return PrintfConvention{}, nil
	case PlaceholderNameSLF4J:
		return SLF4JConvention{}, nil
	case PlaceholderNameIndexed:
		return IndexedConvention{}, nil
	default:
		return nil, NewConfigError(ErrMsgUnknownConvention, name)
	}
}
