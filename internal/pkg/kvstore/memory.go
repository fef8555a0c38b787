package kvstore

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-process Store used by tests and the "memory" storage
// mode. Contents are lost on shutdown.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]byte)}
}

func (s *MemoryStore) Read(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[name]
	if !ok {
		return nil, ErrCollectionNotFound
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStore) Write(_ context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.collections[name] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections, name)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
