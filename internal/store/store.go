package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"karigar-api/internal/cache"
	"karigar-api/internal/model"
	"karigar-api/internal/repository"
)

// Fixed persistence keys, one per collection. There is no schema version
// field; format changes are not migrated.
const (
	keyUser      = "karigar_user"
	keyProducts  = "karigar_products"
	keyChats     = "karigar_chats"
	keyAnalytics = "karigar_analytics"
	keySettings  = "karigar_settings"
)

// Store is the single writer for all persisted collections. Every mutation is
// a read-modify-write sequence guarded by one mutex, so sequences are atomic
// with respect to other calls in this process; nothing protects against a
// second process sharing the same database (last writer wins).
type Store struct {
	repo     repository.KVRepository
	cache    cache.Cache
	cacheTTL time.Duration

	mu  sync.Mutex
	now func() time.Time
}

// New creates a store without a cache layer.
// Returns nil if repo is nil (required dependency).
func New(repo repository.KVRepository) *Store {
	if repo == nil {
		return nil
	}
	return &Store{
		repo: repo,
		now:  time.Now,
	}
}

// NewWithCache creates a store that serves reads through the given cache.
func NewWithCache(repo repository.KVRepository, c cache.Cache, ttl time.Duration) *Store {
	s := New(repo)
	if s == nil {
		return nil
	}
	s.cache = c
	s.cacheTTL = ttl
	return s
}

// timestamp returns the current time as an ISO 8601 string, the format every
// persisted record uses.
func (s *Store) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}

// read returns the raw blob for a key, consulting the cache first.
// Absent keys yield (nil, nil).
func (s *Store) read(ctx context.Context, key string) ([]byte, error) {
	if s.cache != nil {
		if value, err := s.cache.Get(ctx, key); err == nil {
			return value, nil
		}
	}

	value, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if value != nil && s.cache != nil {
		_ = s.cache.Set(ctx, key, value, s.cacheTTL)
	}
	return value, nil
}

// write serializes v and persists it under key, refreshing the cache.
func (s *Store) write(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, key, data); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, data, s.cacheTTL)
	}
	return nil
}

// remove deletes a key from persistence and cache.
func (s *Store) remove(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, key)
	}
	return nil
}

// resetCorrupted logs a blob that failed to decode and removes it so the
// collection falls back to its empty default on the next read.
func (s *Store) resetCorrupted(ctx context.Context, key string, decodeErr error) error {
	log.Printf("[Store] corrupted blob under %q, resetting collection: %v", key, decodeErr)
	return s.remove(ctx, key)
}

// SetUser stores the profile wholesale. Field contents are not validated.
func (s *Store) SetUser(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, keyUser, user)
}

// GetUser returns the stored profile, or nil when none exists.
func (s *Store) GetUser(ctx context.Context) (*model.User, error) {
	raw, err := s.read(ctx, keyUser)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		if resetErr := s.resetCorrupted(ctx, keyUser, err); resetErr != nil {
			return nil, resetErr
		}
		return nil, nil
	}
	return &user, nil
}

// Logout removes the stored profile.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(ctx, keyUser)
}

// Close releases the underlying repository connection.
func (s *Store) Close() error {
	return s.repo.Close()
}
