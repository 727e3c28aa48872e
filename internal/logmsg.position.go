package internal

import (
	"fmt"
	"strings"
)

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// LocateOffset computes line and column for a byte offset.
// "\r\n", "\r" and "\n" each count as a single line break; a break only
// counts once it has been passed completely, so an offset pointing at the
// '\n' of a "\r\n" pair still belongs to the earlier line.
func LocateOffset(source string, offset int) Position {
	line := 1
	lastBreakEnd := 0
	for i := 0; i < len(source); {
		end := lineBreakEnd(source, i)
		if end < 0 {
			i++
			continue
		}
		if end > offset {
			break
		}
		line++
		lastBreakEnd = end
		i = end
	}
	return Position{
		Offset: offset,
		Line:   line,
		Column: offset - lastBreakEnd + 1,
	}
}

// SourceLine returns the 1-indexed line of source, without its terminator
func SourceLine(source string, line int) string {
	current := 1
	start := 0
	for i := 0; i < len(source); {
		end := lineBreakEnd(source, i)
		if end < 0 {
			i++
			continue
		}
		if current == line {
			return source[start:i]
		}
		current++
		start = end
		i = end
	}
	if current == line {
		return source[start:]
	}
	return StringValueEmpty
}

// FormatDiagnostic renders an error message with the offending source line
// and a caret under the error column:
//
//	at index 4, line 1: expected property name
//
//	a{.}b
//	   ^
func FormatDiagnostic(source string, offset int, message string) string {
	pos := LocateOffset(source, offset)
	var sb strings.Builder
	fmt.Fprintf(&sb, DiagFmtHeader, offset, pos.Line, message)
	sb.WriteString(DiagSeparator)
	sb.WriteString(SourceLine(source, pos.Line))
	sb.WriteString(DiagNewline)
	sb.WriteString(strings.Repeat(string(CharSpace), pos.Column-1))
	sb.WriteByte(CharCaret)
	return sb.String()
}

// lineBreakEnd returns the offset just past a line break starting at i, or -1
func lineBreakEnd(source string, i int) int {
	switch source[i] {
	case CharCarriageRet:
		if i+1 < len(source) && source[i+1] == CharNewline {
			return i + 2
		}
		return i + 1
	case CharNewline:
		return i + 1
	default:
		return -1
	}
}
