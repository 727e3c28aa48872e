package logmsg

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateCache_GetSet(t *testing.T) {
	cache := NewTemplateCache(10)

	_, ok, _ := cache.Get("{0}")
	assert.False(t, ok)

	tmpl := MustCompile("{0}")
	cache.Set("{0}", tmpl, nil)

	got, ok, err := cache.Get("{0}")
	require.True(t, ok)
	assert.NoError(t, err)
	assert.Same(t, tmpl, got)

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.EntryCount)
	assert.InDelta(t, 0.5, cache.HitRate(), 0.0001)
}

func TestTemplateCache_CachesErrors(t *testing.T) {
	cache := NewTemplateCache(10)
	compiles := 0
	compileFn := func(source string) (*Template, error) {
		compiles++
		return Compile(source)
	}

	_, err1 := cache.GetOrCompile("{", compileFn)
	_, err2 := cache.GetOrCompile("{", compileFn)

	require.Error(t, err1)
	assert.Equal(t, err1, err2)
	assert.Equal(t, 1, compiles)

	tmpl, ok, err := cache.Get("{")
	assert.True(t, ok)
	assert.Nil(t, tmpl)
	assert.Equal(t, err1, err)
}

func TestTemplateCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewTemplateCache(2)
	cache.Set("a", MustCompile("a"), nil)
	cache.Set("b", MustCompile("b"), nil)

	// touch "a" so "b" becomes the oldest
	_, ok, _ := cache.Get("a")
	require.True(t, ok)

	cache.Set("c", MustCompile("c"), nil)

	_, ok, _ = cache.Get("b")
	assert.False(t, ok)
	_, ok, _ = cache.Get("a")
	assert.True(t, ok)
	_, ok, _ = cache.Get("c")
	assert.True(t, ok)

	assert.Equal(t, int64(1), cache.Stats().Evictions)
	assert.Equal(t, 2, cache.Len())
}

func TestTemplateCache_InvalidateAndClear(t *testing.T) {
	cache := NewTemplateCache(0)
	cache.Set("a", MustCompile("a"), nil)
	cache.Set("b", MustCompile("b"), nil)

	cache.Invalidate("a")
	cache.Invalidate("missing")
	assert.Equal(t, 1, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, 0, cache.Stats().EntryCount)
}

func TestTemplateCache_Concurrent(t *testing.T) {
	cache := NewTemplateCache(8)
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			source := fmt.Sprintf("{%d}", i%12)
			tmpl, err := cache.GetOrCompile(source, func(s string) (*Template, error) { return Compile(s) })
			assert.NoError(t, err)
			assert.Equal(t, source, tmpl.Source())
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 8)
}
