package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a map-backed Store used when Redis is not configured and
// in tests. Expired entries are dropped lazily on read.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]entry
	clock func() time.Time
}

type entry struct {
	value   []byte
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:  make(map[string]entry),
		clock: time.Now,
	}
}

func (m *MemoryStore) Close() error {
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	e, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && m.clock().After(e.expires) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: value}
	if ttl > 0 {
		e.expires = m.clock().Add(ttl)
	}
	m.mu.Lock()
	m.data[key] = e
	m.mu.Unlock()
	return nil
}
