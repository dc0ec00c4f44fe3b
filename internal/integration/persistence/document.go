// Package persistence implements the record stores on top of the opaque
// key-value boundary. Each collection is one JSON document under one key,
// rewritten in full on every change and rehydrated on first access.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/finance-dashboard/backend/internal/application/adapter"
)

// Collection keys. One document per key, no schema version field.
const (
	keyTransactions = "transactions"
	keyAssets       = "assets"
	keyGoals        = "goals"
	keyCategories   = "categories"
	keyMappings     = "learned_mappings"
	keyPreferences  = "preferences"
)

// loadDocument unmarshals the document at key into out. An absent key
// reports found=false. A document that fails to parse is treated as absent
// and logged: losing a corrupt collection is recoverable, refusing to start
// is not.
func loadDocument(ctx context.Context, store adapter.KeyValueStore, key string, out any) (bool, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to load %q: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		slog.Warn("Discarding malformed collection document",
			"key", key,
			"error", err,
		)
		return false, nil
	}
	return true, nil
}

// saveDocument marshals value and rewrites the document at key.
func saveDocument(ctx context.Context, store adapter.KeyValueStore, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}
