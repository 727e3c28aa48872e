package internal

import (
	"strconv"
	"strings"
)

// Node is one compiled piece of a template. The concrete types are
// *TextNode, *PositionalNode and *PathNode.
type Node interface {
	SourceSpan() Span
	node()
}

// TextNode is a run of literal output text, already unescaped
type TextNode struct {
	Text string
	Span Span
}

// PositionalNode refers to the positional argument list
type PositionalNode struct {
	Index     int
	Serialize bool
	Span      Span
}

// PathNode refers to the tree data root through a path of segments
type PathNode struct {
	Segments  []Segment
	Serialize bool
	Span      Span
}

// Segment is one step of a tree data path: a key or a list index
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// KeySegment creates a key segment
func KeySegment(key string) Segment {
	return Segment{Key: key}
}

// IndexSegment creates an index segment
func IndexSegment(index int) Segment {
	return Segment{Index: index, IsIndex: true}
}

// String renders the segment the way it is written in a template
func (s Segment) String() string {
	if s.IsIndex {
		return string(CharOpenSquare) + strconv.Itoa(s.Index) + string(CharCloseSquare)
	}
	return string(CharDot) + s.Key
}

// PathString renders a whole path, e.g. "bag.prices[0]"
func PathString(segments []Segment) string {
	var sb strings.Builder
	for i, seg := range segments {
		if i == 0 && !seg.IsIndex {
			sb.WriteString(seg.Key)
			continue
		}
		sb.WriteString(seg.String())
	}
	return sb.String()
}

// SourceSpan implements Node
func (n *TextNode) SourceSpan() Span { return n.Span }

// SourceSpan implements Node
func (n *PositionalNode) SourceSpan() Span { return n.Span }

// SourceSpan implements Node
func (n *PathNode) SourceSpan() Span { return n.Span }

func (*TextNode) node()       {}
func (*PositionalNode) node() {}
func (*PathNode) node()       {}
