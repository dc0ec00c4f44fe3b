package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/adapter"
	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// transactionStore implements adapter.TransactionStore over the key-value
// boundary. The collection is cached in memory after the first load and
// rewritten in full on every change. The mutex serializes mutations so a
// read-modify-write cannot interleave.
type transactionStore struct {
	kv adapter.KeyValueStore

	mu     sync.Mutex
	loaded bool
	items  []entity.Transaction
}

// NewTransactionStore creates a transaction store backed by kv.
func NewTransactionStore(kv adapter.KeyValueStore) adapter.TransactionStore {
	return &transactionStore{kv: kv}
}

func (s *transactionStore) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	var items []entity.Transaction
	if _, err := loadDocument(ctx, s.kv, keyTransactions, &items); err != nil {
		return err
	}
	s.items = items
	s.loaded = true
	return nil
}

func (s *transactionStore) persist(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []entity.Transaction{}
	}
	return saveDocument(ctx, s.kv, keyTransactions, items)
}

// List returns a snapshot of all transactions, newest entry first.
func (s *transactionStore) List(ctx context.Context) ([]entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	snapshot := make([]entity.Transaction, len(s.items))
	copy(snapshot, s.items)
	return snapshot, nil
}

// Add prepends the transaction and persists the collection.
func (s *transactionStore) Add(ctx context.Context, transaction *entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.items = append([]entity.Transaction{*transaction}, s.items...)
	return s.persist(ctx)
}

// Update merges the non-nil patch fields into the matching transaction and
// persists. An absent id is a no-op.
func (s *transactionStore) Update(ctx context.Context, id uuid.UUID, patch adapter.TransactionPatch) (*entity.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, false, err
	}

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		t := &s.items[i]
		if patch.Type != nil {
			t.Type = *patch.Type
		}
		if patch.Amount != nil {
			t.Amount = *patch.Amount
		}
		if patch.Merchant != nil {
			t.Merchant = *patch.Merchant
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		t.UpdatedAt = time.Now().UTC()

		if err := s.persist(ctx); err != nil {
			return nil, false, err
		}
		updated := *t
		return &updated, true, nil
	}
	return nil, false, nil
}

// Delete removes the matching transaction and persists. Absent ids no-op.
func (s *transactionStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}

	kept := s.items[:0]
	for _, t := range s.items {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(s.items) {
		return nil
	}
	s.items = kept
	return s.persist(ctx)
}
