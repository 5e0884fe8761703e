// internal/store/memory.go
//
// Storage capability and its in-memory implementation.
// The game never talks to a concrete backend; everything that persists goes
// through Storage (string keys, string values).
//
// Characteristics of the memory store:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Used in tests and when no database path is configured.

package store

import (
	"context"
	"sync"
)

// Storage is a durable key-value store.
type Storage interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set creates or replaces the value for key.
	Set(ctx context.Context, key, value string) error

	// Create stores value only if key is absent. It reports whether the
	// value was written; the check and the write are one atomic step.
	Create(ctx context.Context, key, value string) (bool, error)

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// memory is an in-memory map-based Storage implementation.
type memory struct {
	mu   sync.RWMutex      // guards data
	data map[string]string // keyed by storage key
}

// NewMemory constructs an empty in-memory Storage.
func NewMemory() Storage {
	return &memory{data: make(map[string]string)}
}

func (m *memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memory) Create(ctx context.Context, key, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return false, nil
	}
	m.data[key] = value
	return true, nil
}

func (m *memory) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
