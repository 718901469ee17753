package repository

import "context"

// KVRepository defines namespaced key-value persistence for the store.
// Values are JSON-serialized collection blobs; one fixed key per collection.
type KVRepository interface {
	// Get retrieves the value for a key. Returns (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores or replaces the value for a key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close closes the repository connection.
	Close() error
}
