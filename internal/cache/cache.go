// Package cache provides a small string cache used to avoid recomputing
// and reserializing deal reports on every request. The engine itself is
// cheap; the cache exists for the API path where a saved deal's full
// report (calculations, sensitivity, schedule, waterfall) is serialized
// repeatedly.
package cache

import "sync"

// Cache is a string key-value cache with explicit invalidation.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	Delete(key string) error
}

// MemoryCache is a process-local Cache used in tests and when no Redis
// address is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	return value, ok
}

func (m *MemoryCache) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MemoryCache) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
