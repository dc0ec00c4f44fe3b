package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// assetStore implements adapter.AssetStore over the key-value boundary.
type assetStore struct {
	kv adapter.KeyValueStore

	mu     sync.Mutex
	loaded bool
	items  []entity.Asset
}

// NewAssetStore creates an asset store backed by kv.
func NewAssetStore(kv adapter.KeyValueStore) adapter.AssetStore {
	return &assetStore{kv: kv}
}

func (s *assetStore) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	var items []entity.Asset
	if _, err := loadDocument(ctx, s.kv, keyAssets, &items); err != nil {
		return err
	}
	s.items = items
	s.loaded = true
	return nil
}

func (s *assetStore) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []entity.Asset{}
	}
	return saveDocument(ctx, s.kv, keyAssets, items)
}

// List returns a snapshot of all assets in insertion order.
func (s *assetStore) List(ctx context.Context) ([]entity.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	snapshot := make([]entity.Asset, len(s.items))
	copy(snapshot, s.items)
	return snapshot, nil
}

// Add appends the asset and persists the collection.
func (s *assetStore) Add(ctx context.Context, asset *entity.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.items = append(s.items, *asset)
	return s.persist(ctx)
}

// Replace overwrites the stored asset with the same id and persists.
func (s *assetStore) Replace(ctx context.Context, asset *entity.Asset) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return false, err
	}
	for i := range s.items {
		if s.items[i].ID == asset.ID {
			s.items[i] = *asset
			return true, s.persist(ctx)
		}
	}
	return false, nil
}

// Get returns the asset with the given id.
func (s *assetStore) Get(ctx context.Context, id uuid.UUID) (*entity.Asset, bool, error) {
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

// Delete removes the matching asset and persists. Absent ids no-op.
func (s *assetStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	kept := s.items[:0]
	for _, a := range s.items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(s.items) {
		return nil
	}
	s.items = kept
	return s.persist(ctx)
}
