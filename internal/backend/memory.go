// ABOUTME: In-memory backend implementation with injectable failures
// ABOUTME: Used by tests and as a scratch store for ephemeral sessions

package backend

import "sync"

// Memory is a map-backed Backend. The error fields, when set, make the
// corresponding operation fail; tests use them to simulate outages.
type Memory struct {
	mu    sync.Mutex
	items map[string]string

	GetErr    error
	SetErr    error
	RemoveErr error
}

// Compile-time check that Memory implements Backend.
var _ Backend = (*Memory)(nil)

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

// GetItem returns the stored value or ErrNotFound.
func (m *Memory) GetItem(key string) (string, error) {
	if m.GetErr != nil {
		return "", m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// SetItem stores value under key.
func (m *Memory) SetItem(key, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

// RemoveItem deletes key if present.
func (m *Memory) RemoveItem(key string) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Put seeds a raw value, bypassing the failure hooks. Test helper.
func (m *Memory) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
}

// Raw returns the stored value and whether it exists, bypassing hooks.
func (m *Memory) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
