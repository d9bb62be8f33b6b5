package store

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type inMemory struct {
	mu      sync.RWMutex
	storage map[string]memoryEntry
}

func NewMemoryStore() MetadataStore {
	return &inMemory{}
}

func (m *inMemory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	entry, ok := m.storage[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		// lazy eviction, re-check in case a writer refreshed the entry
		m.mu.Lock()
		if cur, ok := m.storage[key]; ok && time.Now().After(cur.expiresAt) {
			delete(m.storage, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (m *inMemory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.storage == nil {
		// create on first use
		m.storage = make(map[string]memoryEntry)
	}
	m.storage[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}
