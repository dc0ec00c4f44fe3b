package persistence

import (
	"context"
	"sync"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// preferenceStore implements adapter.PreferenceStore. An absent or corrupt
// document falls back to the defaults.
type preferenceStore struct {
	kv adapter.KeyValueStore

	mu sync.Mutex
}

// NewPreferenceStore creates a preference store backed by kv.
func NewPreferenceStore(kv adapter.KeyValueStore) adapter.PreferenceStore {
	return &preferenceStore{kv: kv}
}

// Get returns the stored preferences, or the defaults when nothing usable
// is persisted.
func (s *preferenceStore) Get(ctx context.Context) (entity.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := entity.DefaultPreferences()
	found, err := loadDocument(ctx, s.kv, keyPreferences, &prefs)
	if err != nil {
		return entity.Preferences{}, err
	}
	if !found {
		return entity.DefaultPreferences(), nil
	}
	return prefs, nil
}

// Set persists the preferences.
func (s *preferenceStore) Set(ctx context.Context, prefs entity.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveDocument(ctx, s.kv, keyPreferences, prefs)
}
