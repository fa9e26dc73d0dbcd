// Package store provides the built-in persisted-settings backends used to
// remember severity thresholds: volatile memory, environment variables, a
// YAML settings file, and a Pebble key/value database.
package store

import (
	"sync"

	taglogstore "github.com/taglog-labs/taglog/pkg/taglog/v1/store"
)

// MemoryStore implements the store interface with a standard Go map
// protected by a sync.RWMutex. Values do not survive a process restart; it
// is the default backend and the one used in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]int)}
}

// GetInt returns the stored value, or def when the key was never set.
func (s *MemoryStore) GetInt(key string, def int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.data[key]; ok {
		return v
	}
	return def
}

// SetInt stores the value under key.
func (s *MemoryStore) SetInt(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error { return nil }

var _ taglogstore.Store = (*MemoryStore)(nil)
