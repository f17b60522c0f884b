package storage

import (
	"context"
	"sync"
)

// MemoryChannel keeps values in process memory. Used by tests and as
// the default backend when none is configured.
type MemoryChannel struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryChannel() *MemoryChannel {
	return &MemoryChannel{values: make(map[string]string)}
}

func (m *MemoryChannel) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *MemoryChannel) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryChannel) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
