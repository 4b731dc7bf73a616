package missions

import (
	"context"
	"sync"
)

// MemoryBackend keeps blobs in a map. Used in tests and as a throwaway
// backend when no database is configured.
type MemoryBackend struct {
	mu    sync.Mutex
	blobs map[string][]byte
	saves int
}

// NewMemoryBackend creates an empty MemoryBackend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

// Load implements Backend
func (m *MemoryBackend) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), blob...), true, nil
}

// Save implements Backend
func (m *MemoryBackend) Save(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), blob...)
	m.saves++
	return nil
}

// Saves returns how many times Save was called
func (m *MemoryBackend) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
