package cache

import (
	"context"
	"time"

	lcache "github.com/go-pkgz/expirable-cache/v3"
)

// Memory is an in-process store with per-key TTL
type Memory struct {
	cache lcache.Cache[string, string]
}

// NewMemory makes in-memory store limited to maxKeys entries, 0 means unlimited
func NewMemory(maxKeys int) *Memory {
	return &Memory{cache: lcache.NewCache[string, string]().WithMaxKeys(maxKeys)}
}

// Get returns a non-expired value
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.cache.Get(key)
	return v, ok, nil
}

// Set stores value for ttl
func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.cache.Set(key, value, ttl)
	return nil
}

// Flush removes all keys
func (m *Memory) Flush(context.Context) error {
	m.cache.Purge()
	return nil
}
