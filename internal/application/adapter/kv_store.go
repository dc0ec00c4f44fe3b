// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// KeyValueStore is the opaque persistence boundary of the application. Each
// record collection is serialized in full under a single string key and
// rewritten on every change; there are no partial writes and no schema
// version. Backends are interchangeable (in-memory, Redis, SQL table).
type KeyValueStore interface {
	// Get returns the value for key. The boolean is false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
