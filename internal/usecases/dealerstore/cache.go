package dealerstore

import (
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// memoryCache is a TTL cache for expensive reads. Entries expire lazily on
// access.
type memoryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newMemoryCache(ttl time.Duration) *memoryCache {
	return &memoryCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *memoryCache) Get(key string) (any, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}

	return entry.value, true
}

func (c *memoryCache) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

func (c *memoryCache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *memoryCache) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// KeysByPrefix returns live (non-expired) keys with the given prefix.
func (c *memoryCache) KeysByPrefix(prefix string) []string {
	now := time.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0)
	for key, entry := range c.entries {
		if strings.HasPrefix(key, prefix) && now.Before(entry.expiresAt) {
			keys = append(keys, key)
		}
	}
	return keys
}

func (c *memoryCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
