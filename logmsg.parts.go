package logmsg

import (
	"strconv"
	"strings"

	"github.com/itsatony/go-logmsg/internal"
)

// Span is a half-open byte range [Start, End) in the template source
type Span = internal.Span

// Part is one element of a compiled template. The implementations are
// Literal, PositionalRef and TreeDataRef; no other type satisfies Part.
type Part interface {
	SourceSpan() Span
	part()
}

// Literal is output text with the brace escapes already removed
type Literal struct {
	Text string
	Span Span
}

// PositionalRef refers to an element of the positional argument list.
// Serialize is only set by the '@' modifier.
type PositionalRef struct {
	Index     int
	Serialize bool
	Span      Span
}

// TreeDataRef refers to a value inside the tree data. An empty Path is the
// root itself. Serialize is set unless the '$' modifier was used.
type TreeDataRef struct {
	Path      []PathSegment
	Serialize bool
	Span      Span
}

// SourceSpan implements Part
func (p Literal) SourceSpan() Span { return p.Span }

// SourceSpan implements Part
func (p PositionalRef) SourceSpan() Span { return p.Span }

// SourceSpan implements Part
func (p TreeDataRef) SourceSpan() Span { return p.Span }

func (Literal) part()       {}
func (PositionalRef) part() {}
func (TreeDataRef) part()   {}

// PathSegment is one step of a tree data path. The implementations are Key
// and Index.
type PathSegment interface {
	String() string
	segment()
}

// Key selects a map entry or object property
type Key string

// Index selects a list element. Negative values count from the end.
type Index int

// String renders the key as it appears after a dot
func (k Key) String() string { return "." + string(k) }

// String renders the index in brackets
func (i Index) String() string { return "[" + strconv.Itoa(int(i)) + "]" }

func (Key) segment()   {}
func (Index) segment() {}

// PathString renders a path the way it is written in a template,
// e.g. "bag.prices[0]".
func PathString(path []PathSegment) string {
	var sb strings.Builder
	for i, seg := range path {
		if key, ok := seg.(Key); ok && i == 0 {
			sb.WriteString(string(key))
			continue
		}
		sb.WriteString(seg.String())
	}
	return sb.String()
}

// partsFromNodes converts the parser output into the public part model
func partsFromNodes(nodes []internal.Node) []Part {
	parts := make([]Part, 0, len(nodes))
	for _, node := range nodes {
		switch n := node.(type) {
		case *internal.TextNode:
			parts = append(parts, Literal{Text: n.Text, Span: n.Span})
		case *internal.PositionalNode:
			parts = append(parts, PositionalRef{Index: n.Index, Serialize: n.Serialize, Span: n.Span})
		case *internal.PathNode:
			var path []PathSegment
			for _, seg := range n.Segments {
				if seg.IsIndex {
					path = append(path, Index(seg.Index))
				} else {
					path = append(path, Key(seg.Key))
				}
			}
			parts = append(parts, TreeDataRef{Path: path, Serialize: n.Serialize, Span: n.Span})
		}
	}
	return parts
}
