package storage

import (
	"strconv"
	"sync"
)

// MemoryKV is an in-process key/value store. It is used when no database
// is available and in tests.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
	writes int
}

// NewMemoryKV creates an empty store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

// Get returns the value stored under key. ok is false if the key is absent.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.writes++
	return nil
}

// SetIfGreater stores value under key unless the current value is an
// integer at least as large. It reports whether it wrote.
func (m *MemoryKV) SetIfGreater(key string, value int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if raw, ok := m.values[key]; ok {
		if cur, err := strconv.Atoi(raw); err == nil && cur >= value {
			return false, nil
		}
	}
	m.values[key] = strconv.Itoa(value)
	m.writes++
	return true, nil
}

// Writes returns how many times Set has been called.
func (m *MemoryKV) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
