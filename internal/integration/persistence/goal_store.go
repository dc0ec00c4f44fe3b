package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// goalStore implements adapter.GoalStore over the key-value boundary.
type goalStore struct {
	kv adapter.KeyValueStore

	mu     sync.Mutex
	loaded bool
	items  []entity.Goal
}

// NewGoalStore creates a goal store backed by kv.
func NewGoalStore(kv adapter.KeyValueStore) adapter.GoalStore {
	return &goalStore{kv: kv}
}

func (s *goalStore) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	var items []entity.Goal
	if _, err := loadDocument(ctx, s.kv, keyGoals, &items); err != nil {
		return err
	}
	s.items = items
	s.loaded = true
	return nil
}

func (s *goalStore) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []entity.Goal{}
	}
	return saveDocument(ctx, s.kv, keyGoals, items)
}

// List returns a snapshot of all goals in insertion order.
func (s *goalStore) List(ctx context.Context) ([]entity.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	snapshot := make([]entity.Goal, len(s.items))
	copy(snapshot, s.items)
	return snapshot, nil
}

// Add appends the goal and persists the collection.
func (s *goalStore) Add(ctx context.Context, goal *entity.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.items = append(s.items, *goal)
	return s.persist(ctx)
}

// Replace overwrites the stored goal with the same id and persists.
func (s *goalStore) Replace(ctx context.Context, goal *entity.Goal) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return false, err
	}
	for i := range s.items {
		if s.items[i].ID == goal.ID {
			s.items[i] = *goal
			return true, s.persist(ctx)
		}
	}
	return false, nil
}

// Get returns the goal with the given id.
func (s *goalStore) Get(ctx context.Context, id uuid.UUID) (*entity.Goal, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, false, err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			found := s.items[i]
			return &found, true, nil
		}
	}
	return nil, false, nil
}

// Delete removes the matching goal and persists. Absent ids no-op.
func (s *goalStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	kept := s.items[:0]
	for _, g := range s.items {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	if len(kept) == len(s.items) {
		return nil
	}
	s.items = kept
	return s.persist(ctx)
}
