package registry

import (
	"context"
	"sync"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/library"
)

// MemoryStore is an in-memory Store, suitable for development, testing, and
// single-node deployments where persistence across restarts is not needed.
// It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	schemas map[id.Link]library.Schema
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{schemas: make(map[id.Link]library.Schema)}
}

func (s *MemoryStore) Put(_ context.Context, schema library.Schema) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemas[schema.Id()] = schema
	return nil
}

func (s *MemoryStore) Get(_ context.Context, libID id.Link) (library.Schema, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	schema, ok := s.schemas[libID]
	return schema, ok, nil
}

func (s *MemoryStore) List(_ context.Context) ([]library.Schema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]library.Schema, 0, len(s.schemas))
	for _, schema := range s.schemas {
		out = append(out, schema)
	}
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, libID id.Link) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schemas[libID]; !ok {
		return ErrNotFound
	}
	delete(s.schemas, libID)
	return nil
}
