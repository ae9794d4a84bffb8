package dataset

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Cache is the in-process cache of parsed workbook data. It is
// injected into the Service so callers own its lifecycle; entries are
// only ever added or cleared wholesale, never evicted piecemeal.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	id       string
	storedAt time.Time
	value    any
}

// CacheEntryInfo describes one cached entry for the cache endpoint.
type CacheEntryInfo struct {
	Key      string    `json:"key"`
	LoadID   string    `json:"loadId"`
	StoredAt time.Time `json:"storedAt"`
}

// CacheInfo summarizes cache contents.
type CacheInfo struct {
	Size    int              `json:"size"`
	Entries []CacheEntryInfo `json:"entries"`
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Get returns a cached value.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Put stores a value and returns the load ID assigned to it.
func (c *Cache) Put(key string, value any) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := uuid.New().String()
	c.entries[key] = &cacheEntry{
		id:       id,
		storedAt: time.Now(),
		value:    value,
	}
	return id
}

// Info lists the cached entries.
func (c *Cache) Info() CacheInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info := CacheInfo{Size: len(c.entries)}
	for key, e := range c.entries {
		info.Entries = append(info.Entries, CacheEntryInfo{
			Key:      key,
			LoadID:   e.id,
			StoredAt: e.storedAt,
		})
	}
	return info
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}
