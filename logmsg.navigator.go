package logmsg

import (
	"reflect"

	"go.uber.org/zap"
)

// MissKind classifies a reference that could not be resolved
type MissKind string

// Miss kinds
const (
	MissPositionalIndexOutOfRange MissKind = "PositionalIndexOutOfRange"
	MissPositionalArgsAbsent      MissKind = "MissingPositionalArgs"
	MissPathSegmentNotFound       MissKind = "TreeDataPathSegmentNotFound"
	MissPathThroughNull           MissKind = "TreeDataPathThroughNull"
)

// PropertyAccessor looks up a key on a value that is not a map, such as a
// struct. It reports false when the value has no such property.
type PropertyAccessor interface {
	Property(node any, key string) (any, bool)
}

// PropertyAccessorFunc adapts a function to PropertyAccessor
type PropertyAccessorFunc func(node any, key string) (any, bool)

// Property implements PropertyAccessor
func (f PropertyAccessorFunc) Property(node any, key string) (any, bool) {
	return f(node, key)
}

// ItemAccessor looks up an index on a value that is not a list. The index
// is passed as written in the template and may be negative.
type ItemAccessor interface {
	Item(node any, index int) (any, bool)
}

// ItemAccessorFunc adapts a function to ItemAccessor
type ItemAccessorFunc func(node any, index int) (any, bool)

// Item implements ItemAccessor
func (f ItemAccessorFunc) Item(node any, index int) (any, bool) {
	return f(node, index)
}

// Sequence lets custom list types take part in index lookups
type Sequence interface {
	Len() int
	At(index int) any
}

// Mapping lets custom map types take part in key lookups
type Mapping interface {
	Lookup(key string) (any, bool)
}

// Resolution is the outcome of resolving a reference. When Found is false,
// Miss says why and Segment is the zero-based path segment that failed
// (-1 for positional references).
type Resolution struct {
	Value   any
	Found   bool
	Miss    MissKind
	Segment int
}

// Navigator resolves positional and tree data references. It never panics:
// panics raised by accessors or custom collections count as not found.
type Navigator struct {
	properties PropertyAccessor
	items      ItemAccessor
	logger     *zap.Logger
}

// NewNavigator creates a navigator. Both accessors are optional.
func NewNavigator(properties PropertyAccessor, items ItemAccessor, logger *zap.Logger) *Navigator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Navigator{
		properties: properties,
		items:      items,
		logger:     logger,
	}
}

// NormalizeIndex maps an index onto [0, length). Negative indexes count from
// the end. An index whose absolute value is at least length is rejected, so
// -length itself is out of range.
func NormalizeIndex(index, length int) (int, bool) {
	if index >= length || -index >= length {
		return 0, false
	}
	if index < 0 {
		index += length
	}
	return index, true
}

// ResolvePositional resolves an index into the positional arguments.
// A nil args slice means no arguments were supplied at all.
func (n *Navigator) ResolvePositional(args []any, index int) Resolution {
	if args == nil {
		return Resolution{Miss: MissPositionalArgsAbsent, Segment: -1}
	}
	i, ok := NormalizeIndex(index, len(args))
	if !ok {
		return Resolution{Miss: MissPositionalIndexOutOfRange, Segment: -1}
	}
	return Resolution{Value: args[i], Found: true, Segment: -1}
}

// ResolvePath walks path starting at root
func (n *Navigator) ResolvePath(root any, path []PathSegment) Resolution {
	node := root
	for i, seg := range path {
		if isNil(node) {
			return Resolution{Miss: MissPathThroughNull, Segment: i}
		}

		var next any
		var ok bool
		switch s := seg.(type) {
		case Key:
			next, ok = n.property(node, string(s))
		case Index:
			next, ok = n.item(node, int(s))
		}
		if !ok {
			return Resolution{Miss: MissPathSegmentNotFound, Segment: i}
		}
		node = next
	}
	return Resolution{Value: node, Found: true, Segment: len(path)}
}

// property looks up key on a map-like node, falling back to the accessor
func (n *Navigator) property(node any, key string) (value any, ok bool) {
	defer n.recoverAccess(&value, &ok)

	switch m := node.(type) {
	case map[string]any:
		value, ok = m[key]
		return value, ok
	case map[string]string:
		s, found := m[key]
		return s, found
	case Mapping:
		return m.Lookup(key)
	}

	if n.properties == nil {
		return nil, false
	}
	return n.properties.Property(node, key)
}

// item looks up index on a list-like node, falling back to the accessor
func (n *Navigator) item(node any, index int) (value any, ok bool) {
	defer n.recoverAccess(&value, &ok)

	switch l := node.(type) {
	case []any:
		return sliceItem(l, index)
	case []string:
		return sliceItem(l, index)
	case []int:
		return sliceItem(l, index)
	case []float64:
		return sliceItem(l, index)
	case []map[string]any:
		return sliceItem(l, index)
	case Sequence:
		i, found := NormalizeIndex(index, l.Len())
		if !found {
			return nil, false
		}
		return l.At(i), true
	}

	if n.items == nil {
		return nil, false
	}
	return n.items.Item(node, index)
}

// isNil reports whether v is nil itself or a nil pointer, map or slice
// held in an interface
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// recoverAccess turns a panic during a lookup into a not-found result
func (n *Navigator) recoverAccess(value *any, ok *bool) {
	if r := recover(); r != nil {
		n.logger.Debug(LogMsgAccessorPanic, zap.Any(LogFieldPanic, r))
		*value = nil
		*ok = false
	}
}

func sliceItem[T any](s []T, index int) (any, bool) {
	i, ok := NormalizeIndex(index, len(s))
	if !ok {
		return nil, false
	}
	return s[i], true
}
