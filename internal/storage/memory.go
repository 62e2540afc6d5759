package storage

import (
	"encoding/json"
	"sync"
)

// MemoryStore holds collections in memory, used for tests and ephemeral runs
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]json.RawMessage),
	}
}

// Load decodes the collection stored under key into v
func (s *MemoryStore) Load(key string, v interface{}) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return
	}
	_ = json.Unmarshal(raw, v)
}

// Save encodes v and stores it under key
func (s *MemoryStore) Save(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

// Remove deletes the collection stored under key
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error {
	return nil
}

// Register the memory backend
func init() {
	Register("memory", func(path string) (Store, error) {
		return NewMemoryStore(), nil
	})
}
