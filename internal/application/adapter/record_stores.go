// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// TransactionStore defines persistence operations for transactions.
// Implementations perform no field validation; that is the caller's job.
type TransactionStore interface {
	// List returns a snapshot of all transactions, newest entry first.
	List(ctx context.Context) ([]entity.Transaction, error)

	// Add prepends the transaction and persists the collection.
	Add(ctx context.Context, transaction *entity.Transaction) error

	// Update merges the non-nil fields of patch into the matching transaction
	// and persists. Absent ids are a no-op; the boolean reports whether a
	// transaction was found.
	Update(ctx context.Context, id uuid.UUID, patch TransactionPatch) (*entity.Transaction, bool, error)

	// Delete removes the matching transaction and persists. No-op when absent.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionPatch carries the partial fields of a transaction update.
// Parsing and validation happen before a patch is built; stores just merge.
type TransactionPatch struct {
	Type        *entity.TransactionType
	Amount      *decimal.Decimal
	Merchant    *string
	Category    *string
	Date        *time.Time
	Description *string
}

// AssetStore defines persistence operations for assets.
type AssetStore interface {
	List(ctx context.Context) ([]entity.Asset, error)

	// Add appends the asset and persists the collection.
	Add(ctx context.Context, asset *entity.Asset) error

	// Replace overwrites the stored asset with the same id and persists.
	// Absent ids are a no-op; the boolean reports whether an asset was found.
	Replace(ctx context.Context, asset *entity.Asset) (bool, error)

	// Get returns the asset with the given id, or false when absent.
	Get(ctx context.Context, id uuid.UUID) (*entity.Asset, bool, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalStore defines persistence operations for goals.
type GoalStore interface {
	List(ctx context.Context) ([]entity.Goal, error)
	Add(ctx context.Context, goal *entity.Goal) error
	Replace(ctx context.Context, goal *entity.Goal) (bool, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Goal, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryStore provides read access to the fixed category set. An empty
// backing key rehydrates as the default seed set.
type CategoryStore interface {
	List(ctx context.Context) ([]entity.Category, error)
}

// MappingStore persists the learned merchant-to-category mappings. Keys are
// lowercased merchant strings; the map only ever grows.
type MappingStore interface {
	// All returns a snapshot of the learned mappings.
	All(ctx context.Context) (map[string]string, error)

	// Learn records merchant (lowercased by the caller) as mapping to
	// category, unconditionally overwriting any prior mapping, and persists.
	Learn(ctx context.Context, merchant string, category string) error
}

// PreferenceStore persists the display preferences.
type PreferenceStore interface {
	Get(ctx context.Context) (entity.Preferences, error)
	Set(ctx context.Context, prefs entity.Preferences) error
}
