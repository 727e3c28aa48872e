package logmsg

import (
	"sync"
)

// TemplateCache keeps compiled templates keyed by source. Compile failures
// are cached too, so a broken template in a hot logging path is only parsed
// once. When full, the least recently used entry is evicted.
type TemplateCache struct {
	mu         sync.RWMutex
	entries    map[string]*templateCacheEntry
	maxEntries int
	stats      CacheStats
	evictList  []string // LRU order, oldest first
}

// templateCacheEntry holds a compile result
type templateCacheEntry struct {
	template *Template
	err      error
}

// CacheStats tracks cache performance metrics.
type CacheStats struct {
	Hits       int64
	Misses     int64
	Evictions  int64
	EntryCount int
}

// NewTemplateCache creates a cache holding at most maxEntries templates.
// A non-positive maxEntries uses DefaultCacheMaxEntries.
func NewTemplateCache(maxEntries int) *TemplateCache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheMaxEntries
	}
	return &TemplateCache{
		entries:    make(map[string]*templateCacheEntry),
		maxEntries: maxEntries,
		evictList:  make([]string, 0, maxEntries),
	}
}

// Get returns the cached compile result for source. ok is false on a miss;
// err is the cached compile error, if any.
func (c *TemplateCache) Get(source string) (tmpl *Template, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[source]
	if !exists {
		c.stats.Misses++
		return nil, false, nil
	}

	c.stats.Hits++
	c.touch(source)
	return entry.template, true, entry.err
}

// Set stores a compile result
func (c *TemplateCache) Set(source string, tmpl *Template, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[source]; exists {
		c.entries[source] = &templateCacheEntry{template: tmpl, err: err}
		c.touch(source)
		return
	}

	if len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}

	c.entries[source] = &templateCacheEntry{template: tmpl, err: err}
	c.evictList = append(c.evictList, source)
	c.stats.EntryCount = len(c.entries)
}

// GetOrCompile returns the cached result for source, compiling and storing
// it on a miss.
func (c *TemplateCache) GetOrCompile(source string, compileFn func(string) (*Template, error)) (*Template, error) {
	if tmpl, ok, err := c.Get(source); ok {
		return tmpl, err
	}
	tmpl, err := compileFn(source)
	c.Set(source, tmpl, err)
	return tmpl, err
}

// Invalidate removes a specific cache entry.
func (c *TemplateCache) Invalidate(source string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[source]; !exists {
		return
	}
	delete(c.entries, source)
	c.removeFromEvictList(source)
	c.stats.EntryCount = len(c.entries)
}

// Clear removes all entries from the cache.
func (c *TemplateCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*templateCacheEntry)
	c.evictList = make([]string, 0, c.maxEntries)
	c.stats.EntryCount = 0
}

// Len returns the number of cached entries
func (c *TemplateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns current cache statistics.
func (c *TemplateCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the cache hit rate (0.0 to 1.0).
func (c *TemplateCache) HitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.stats.Hits + c.stats.Misses
	if total == 0 {
		return 0
	}
	return float64(c.stats.Hits) / float64(total)
}

// touch moves source to the most recently used end. Caller holds the lock.
func (c *TemplateCache) touch(source string) {
	c.removeFromEvictList(source)
	c.evictList = append(c.evictList, source)
}

func (c *TemplateCache) removeFromEvictList(source string) {
	for i, key := range c.evictList {
		if key == source {
			c.evictList = append(c.evictList[:i], c.evictList[i+1:]...)
			return
		}
	}
}

// evictOldest removes the least recently used entry. Caller holds the lock.
func (c *TemplateCache) evictOldest() {
	if len(c.evictList) == 0 {
		return
	}

	oldestKey := c.evictList[0]
	c.evictList = c.evictList[1:]

	if _, exists := c.entries[oldestKey]; exists {
		delete(c.entries, oldestKey)
		c.stats.Evictions++
	}
}
