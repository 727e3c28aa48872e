package logmsg

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSerializer(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "null"},
		{"string", "yes", `"yes"`},
		{"number", 1.5, "1.5"},
		{"html is not escaped", "<a&b>", `"<a&b>"`},
		{"map", map[string]any{"b": 2, "a": 1}, `{"a":1,"b":2}`},
		{"list", []any{"x", true}, `["x",true]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := JSONSerializer{}.Serialize(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestJSONSerializer_Indent(t *testing.T) {
	out, err := JSONSerializer{Indent: "  "}.Serialize(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", out)
}

func TestJSONSerializer_Error(t *testing.T) {
	_, err := JSONSerializer{}.Serialize(make(chan int))
	assert.Error(t, err)
}

func TestYAMLSerializer(t *testing.T) {
	out, err := YAMLSerializer{}.Serialize("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	out, err = YAMLSerializer{}.Serialize(map[string]any{"a": []any{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "a:\n    - 1\n    - 2", out)
}

func TestStringSerializer(t *testing.T) {
	out, err := StringSerializer{}.Serialize(map[string]any{"a": "yes"})
	require.NoError(t, err)
	assert.Equal(t, "map[a:yes]", out)
}

func TestSerializerByName(t *testing.T) {
	for _, name := range []string{SerializerNameJSON, SerializerNameYAML, SerializerNameString} {
		s, err := SerializerByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}

	_, err := SerializerByName("xml")
	assert.Error(t, err)
}

func TestStructured(t *testing.T) {
	calls := 0
	s := NewStructured([]int{1, 2}, SerializerFunc(func(v any) (string, error) {
		calls++
		return JSONSerializer{}.Serialize(v)
	}))

	assert.Equal(t, []int{1, 2}, s.Value())
	assert.Equal(t, 0, calls)
	assert.Equal(t, "[1,2]", s.String())
	assert.Equal(t, "[1,2]", s.String())
	assert.Equal(t, 1, calls)
}

func TestStructured_SerializerError(t *testing.T) {
	s := NewStructured(42, SerializerFunc(func(any) (string, error) {
		return "", errors.New("nope")
	}))
	assert.Equal(t, "!(serialize int: nope)", s.String())
}

func TestStructured_DefaultSerializer(t *testing.T) {
	assert.Equal(t, `{"k":"v"}`, NewStructured(map[string]string{"k": "v"}, nil).String())
}

func TestStructured_ConcurrentMaterialization(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	s := NewStructured("v", SerializerFunc(func(v any) (string, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return JSONSerializer{}.Serialize(v)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, `"v"`, s.String())
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, calls)
}
