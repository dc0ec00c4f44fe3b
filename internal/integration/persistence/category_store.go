package persistence

import (
	"context"
	"sync"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// categoryStore implements adapter.CategoryStore. The category set is a
// fixed seed: an empty or corrupt backing key rehydrates as the defaults,
// which are persisted immediately so ids stay stable across restarts.
type categoryStore struct {
	kv adapter.KeyValueStore

	mu     sync.Mutex
	loaded bool
	items  []entity.Category
}

// NewCategoryStore creates a category store backed by kv.
func NewCategoryStore(kv adapter.KeyValueStore) adapter.CategoryStore {
	return &categoryStore{kv: kv}
}

// List returns the category set, seeding the defaults on first run.
func (s *categoryStore) List(ctx context.Context) ([]entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		var items []entity.Category
		found, err := loadDocument(ctx, s.kv, keyCategories, &items)
		if err != nil {
			return nil, err
		}
		if !found || len(items) == 0 {
			items = entity.DefaultCategories()
			if err := saveDocument(ctx, s.kv, keyCategories, items); err != nil {
				return nil, err
			}
		}
		s.items = items
		s.loaded = true
	}

	snapshot := make([]entity.Category, len(s.items))
	copy(snapshot, s.items)
	return snapshot, nil
}
