package store

import (
	"sort"
	"sync"
)

// Memory is an in-memory store for testing and ephemeral sessions.
type Memory struct {
	mu   sync.RWMutex
	data map[string]Constant
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]Constant)}
}

// List returns all constants ordered by key.
func (m *Memory) List() ([]Constant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Constant, 0, len(m.data))
	for _, c := range m.data {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Get retrieves a constant by key.
func (m *Memory) Get(key string) (*Constant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.data[key]; ok {
		return &c, nil
	}
	return nil, nil
}

// Put stores a constant by key.
func (m *Memory) Put(c Constant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[c.Key] = c
	return nil
}

// Delete removes a constant by key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Close is a no-op for the memory store.
func (m *Memory) Close() error {
	return nil
}
