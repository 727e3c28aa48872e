package logmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNormalizeIndex(t *testing.T) {
	tests := []struct {
		index    int
		length   int
		expected int
		ok       bool
	}{
		{0, 3, 0, true},
		{2, 3, 2, true},
		{3, 3, 0, false},
		{-1, 3, 2, true},
		{-2, 3, 1, true},
		{-3, 3, 0, false},
		{-4, 3, 0, false},
		{0, 0, 0, false},
		{-1, 1, 0, false},
	}

	for _, tt := range tests {
		got, ok := NormalizeIndex(tt.index, tt.length)
		assert.Equal(t, tt.ok, ok, "NormalizeIndex(%d, %d)", tt.index, tt.length)
		if tt.ok {
			assert.Equal(t, tt.expected, got, "NormalizeIndex(%d, %d)", tt.index, tt.length)
		}
	}
}

func TestNavigator_ResolvePositional(t *testing.T) {
	nav := NewNavigator(nil, nil, nil)
	args := []any{"a", "b", "c"}

	t.Run("in range", func(t *testing.T) {
		res := nav.ResolvePositional(args, 1)
		require.True(t, res.Found)
		assert.Equal(t, "b", res.Value)
	})

	t.Run("negative", func(t *testing.T) {
		res := nav.ResolvePositional(args, -1)
		require.True(t, res.Found)
		assert.Equal(t, "c", res.Value)
	})

	t.Run("out of range", func(t *testing.T) {
		res := nav.ResolvePositional(args, 3)
		assert.False(t, res.Found)
		assert.Equal(t, MissPositionalIndexOutOfRange, res.Miss)
		assert.Equal(t, -1, res.Segment)
	})

	t.Run("empty args", func(t *testing.T) {
		res := nav.ResolvePositional([]any{}, 0)
		assert.False(t, res.Found)
		assert.Equal(t, MissPositionalIndexOutOfRange, res.Miss)
	})

	t.Run("absent args", func(t *testing.T) {
		res := nav.ResolvePositional(nil, 0)
		assert.False(t, res.Found)
		assert.Equal(t, MissPositionalArgsAbsent, res.Miss)
	})

	t.Run("nil element is found", func(t *testing.T) {
		res := nav.ResolvePositional([]any{nil}, 0)
		assert.True(t, res.Found)
		assert.Nil(t, res.Value)
	})
}

type testSequence []string

func (s testSequence) Len() int         { return len(s) }
func (s testSequence) At(index int) any { return s[index] }

type testMapping map[string]int

func (m testMapping) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

type opaque struct {
	Name string
}

func TestNavigator_ResolvePath(t *testing.T) {
	data := map[string]any{
		"bag": map[string]any{
			"prices": []any{10, 20, 30},
		},
		"labels":  map[string]string{"env": "prod"},
		"nums":    []int{1, 2},
		"floats":  []float64{0.5},
		"rows":    []map[string]any{{"id": "r1"}},
		"strs":    []string{"x"},
		"seq":     testSequence{"s0", "s1"},
		"counts":  testMapping{"hits": 3},
		"nothing": nil,
		"obj":     opaque{Name: "thing"},
	}
	nav := NewNavigator(nil, nil, nil)

	tests := []struct {
		name    string
		path    []PathSegment
		value   any
		miss    MissKind
		segment int
	}{
		{"root", nil, data, "", 0},
		{"key then index", []PathSegment{Key("bag"), Key("prices"), Index(1)}, 20, "", 3},
		{"negative index", []PathSegment{Key("bag"), Key("prices"), Index(-2)}, 20, "", 3},
		{"negative length index", []PathSegment{Key("bag"), Key("prices"), Index(-3)}, nil, MissPathSegmentNotFound, 2},
		{"index out of range", []PathSegment{Key("bag"), Key("prices"), Index(3)}, nil, MissPathSegmentNotFound, 2},
		{"negative out of range", []PathSegment{Key("bag"), Key("prices"), Index(-4)}, nil, MissPathSegmentNotFound, 2},
		{"missing key", []PathSegment{Key("bag"), Key("weight")}, nil, MissPathSegmentNotFound, 1},
		{"string map", []PathSegment{Key("labels"), Key("env")}, "prod", "", 2},
		{"int slice", []PathSegment{Key("nums"), Index(-1)}, 2, "", 2},
		{"float slice", []PathSegment{Key("floats"), Index(0)}, 0.5, "", 2},
		{"map slice", []PathSegment{Key("rows"), Index(0), Key("id")}, "r1", "", 3},
		{"string slice", []PathSegment{Key("strs"), Index(0)}, "x", "", 2},
		{"sequence", []PathSegment{Key("seq"), Index(-1)}, "s1", "", 2},
		{"mapping", []PathSegment{Key("counts"), Key("hits")}, 3, "", 2},
		{"null value found", []PathSegment{Key("nothing")}, nil, "", 1},
		{"through null", []PathSegment{Key("nothing"), Key("x")}, nil, MissPathThroughNull, 1},
		{"key on list", []PathSegment{Key("nums"), Key("x")}, nil, MissPathSegmentNotFound, 1},
		{"index on map", []PathSegment{Key("bag"), Index(0)}, nil, MissPathSegmentNotFound, 1},
		{"key on scalar", []PathSegment{Key("bag"), Key("prices"), Index(0), Key("x")}, nil, MissPathSegmentNotFound, 3},
		{"opaque without accessor", []PathSegment{Key("obj"), Key("Name")}, nil, MissPathSegmentNotFound, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := nav.ResolvePath(data, tt.path)
			assert.Equal(t, tt.segment, res.Segment)
			if tt.miss != "" {
				assert.False(t, res.Found)
				assert.Equal(t, tt.miss, res.Miss)
				return
			}
			require.True(t, res.Found)
			assert.Equal(t, tt.value, res.Value)
		})
	}
}

func TestNavigator_NilRoot(t *testing.T) {
	nav := NewNavigator(nil, nil, nil)

	res := nav.ResolvePath(nil, nil)
	assert.True(t, res.Found)
	assert.Nil(t, res.Value)

	res = nav.ResolvePath(nil, []PathSegment{Key("a")})
	assert.False(t, res.Found)
	assert.Equal(t, MissPathThroughNull, res.Miss)
	assert.Equal(t, 0, res.Segment)
}

func TestNavigator_TypedNilIsNull(t *testing.T) {
	nav := NewNavigator(nil, nil, nil)

	var ptr *opaque
	var m map[string]any
	var list []any
	data := map[string]any{"ptr": ptr, "map": m, "list": list}

	for _, key := range []string{"ptr", "map", "list"} {
		t.Run(key, func(t *testing.T) {
			res := nav.ResolvePath(data, []PathSegment{Key(key), Key("x")})
			assert.False(t, res.Found)
			assert.Equal(t, MissPathThroughNull, res.Miss)
			assert.Equal(t, 1, res.Segment)

			res = nav.ResolvePath(data, []PathSegment{Key(key)})
			assert.True(t, res.Found)
		})
	}

	res := nav.ResolvePath(ptr, []PathSegment{Key("Name")})
	assert.False(t, res.Found)
	assert.Equal(t, MissPathThroughNull, res.Miss)
	assert.Equal(t, 0, res.Segment)
}

func TestNavigator_IndexRange(t *testing.T) {
	nav := NewNavigator(nil, nil, nil)

	for _, n := range []int{1, 2, 3, 5} {
		args := make([]any, n)
		for i := range args {
			args[i] = i * 10
		}
		data := map[string]any{"list": args}

		for i := -n - 2; i <= n+1; i++ {
			pos := nav.ResolvePositional(args, i)
			path := nav.ResolvePath(data, []PathSegment{Key("list"), Index(i)})

			if i > -n && i < n {
				want := args[(i+n)%n]
				require.True(t, pos.Found, "n=%d i=%d", n, i)
				assert.Equal(t, want, pos.Value, "n=%d i=%d", n, i)
				require.True(t, path.Found, "n=%d i=%d", n, i)
				assert.Equal(t, want, path.Value, "n=%d i=%d", n, i)
				continue
			}
			assert.False(t, pos.Found, "n=%d i=%d", n, i)
			assert.Equal(t, MissPositionalIndexOutOfRange, pos.Miss, "n=%d i=%d", n, i)
			assert.False(t, path.Found, "n=%d i=%d", n, i)
			assert.Equal(t, MissPathSegmentNotFound, path.Miss, "n=%d i=%d", n, i)
			assert.Equal(t, 1, path.Segment, "n=%d i=%d", n, i)
		}
	}
}

func TestNavigator_Accessors(t *testing.T) {
	props := PropertyAccessorFunc(func(node any, key string) (any, bool) {
		o, ok := node.(opaque)
		if !ok || key != "Name" {
			return nil, false
		}
		return o.Name, true
	})
	items := ItemAccessorFunc(func(node any, index int) (any, bool) {
		s, ok := node.(string)
		if !ok {
			return nil, false
		}
		i, ok := NormalizeIndex(index, len(s))
		if !ok {
			return nil, false
		}
		return string(s[i]), true
	})
	nav := NewNavigator(props, items, nil)
	data := map[string]any{"obj": opaque{Name: "thing"}}

	res := nav.ResolvePath(data, []PathSegment{Key("obj"), Key("Name"), Index(-1)})
	require.True(t, res.Found)
	assert.Equal(t, "g", res.Value)

	res = nav.ResolvePath(data, []PathSegment{Key("obj"), Key("Other")})
	assert.False(t, res.Found)
	assert.Equal(t, MissPathSegmentNotFound, res.Miss)
}

func TestNavigator_AccessorPanicIsNotFound(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	props := PropertyAccessorFunc(func(any, string) (any, bool) {
		panic("boom")
	})
	nav := NewNavigator(props, nil, zap.New(core))

	var res Resolution
	assert.NotPanics(t, func() {
		res = nav.ResolvePath(map[string]any{"obj": opaque{}}, []PathSegment{Key("obj"), Key("Name")})
	})
	assert.False(t, res.Found)
	assert.Equal(t, MissPathSegmentNotFound, res.Miss)
	assert.Equal(t, 1, logs.FilterMessage(LogMsgAccessorPanic).Len())
}

type panickingSequence struct{}

func (panickingSequence) Len() int   { return 2 }
func (panickingSequence) At(int) any { panic("broken sequence") }

func TestNavigator_SequencePanicIsNotFound(t *testing.T) {
	nav := NewNavigator(nil, nil, nil)

	res := nav.ResolvePath(panickingSequence{}, []PathSegment{Index(0)})
	assert.False(t, res.Found)
	assert.Equal(t, MissPathSegmentNotFound, res.Miss)
}
