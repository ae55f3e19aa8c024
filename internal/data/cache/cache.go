package cache

import (
	"context"
	"sync"
	"time"
)

// Cache stores serialized snapshots between renders so concurrent
// dashboard users do not each hammer the upstream APIs.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Memory is the in-process fallback when no Redis address is
// configured.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Expired entries are overwritten lazily; with one key per feed
	// snapshot there is nothing worth a cleanup goroutine.
	m.entries[key] = memoryEntry{
		value:   append([]byte(nil), value...),
		expires: time.Now().Add(ttl),
	}
	return nil
}
