package repository

import (
	"context"
	"sync"
)

// MemoryKVRepository is an in-memory implementation of KVRepository.
// Use this for development/testing; nothing survives a restart.
type MemoryKVRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryKVRepository creates a new in-memory key-value repository.
func NewMemoryKVRepository() *MemoryKVRepository {
	return &MemoryKVRepository{values: make(map[string][]byte)}
}

// Get retrieves the value for a key.
func (r *MemoryKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

// Set stores or replaces the value for a key.
func (r *MemoryKVRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	r.values[key] = valueCopy
	return nil
}

// Delete removes a key.
func (r *MemoryKVRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}

// Close is a no-op for the memory repository.
func (r *MemoryKVRepository) Close() error {
	return nil
}

var _ KVRepository = (*MemoryKVRepository)(nil)
