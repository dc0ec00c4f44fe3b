package persistence

import (
	"context"
	"sync"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// mappingStore implements adapter.MappingStore. The learned mappings form a
// one-way ratchet: entries are overwritten but never removed.
type mappingStore struct {
	kv adapter.KeyValueStore

	mu       sync.Mutex
	loaded   bool
	mappings map[string]string
}

// NewMappingStore creates a learned-mapping store backed by kv.
func NewMappingStore(kv adapter.KeyValueStore) adapter.MappingStore {
	return &mappingStore{kv: kv}
}

func (s *mappingStore) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	mappings := map[string]string{}
	if _, err := loadDocument(ctx, s.kv, keyMappings, &mappings); err != nil {
		return err
	}
	if mappings == nil {
		mappings = map[string]string{}
	}
	s.mappings = mappings
	s.loaded = true
	return nil
}

// All returns a snapshot of the learned mappings.
func (s *mappingStore) All(ctx context.Context) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	snapshot := make(map[string]string, len(s.mappings))
	for k, v := range s.mappings {
		snapshot[k] = v
	}
	return snapshot, nil
}

// Learn records merchant as mapping to category and persists, overwriting
// any prior mapping for that merchant.
func (s *mappingStore) Learn(ctx context.Context, merchant string, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.mappings[merchant] = category
	return saveDocument(ctx, s.kv, keyMappings, s.mappings)
}
