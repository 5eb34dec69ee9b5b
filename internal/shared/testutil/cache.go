package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/ecomshop/shop-api/internal/shared/cache"
)

// MemoryCache is an in-process cache.Store for tests
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[string][]byte{}}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.entries[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return v, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}

func (m *MemoryCache) Close() error { return nil }

// Has reports whether key is cached
func (m *MemoryCache) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.entries[key]
	return ok
}

var _ cache.Store = (*MemoryCache)(nil)
