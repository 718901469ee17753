package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite" // Pure Go SQLite driver - no CGO required
)

// SQLiteKVRepository implements KVRepository using SQLite.
// Thread-safe with WAL mode for concurrent reads.
type SQLiteKVRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteKVRepository creates a new SQLite key-value repository.
// dbPath is the path to the database file (e.g., "./data/karigar.db").
func NewSQLiteKVRepository(dbPath string) (*SQLiteKVRepository, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := createKVTable(db); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	log.Printf("[SQLiteKVRepository] Initialized with database: %s", dbPath)
	return &SQLiteKVRepository{db: db}, nil
}

func createKVTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS karigar_kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	_, err := db.Exec(query)
	return err
}

// Get retrieves the value for a key.
func (r *SQLiteKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM karigar_kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return []byte(value), nil
}

// Set stores or replaces the value for a key.
func (r *SQLiteKVRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	query := `
		INSERT INTO karigar_kv (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = datetime('now')`

	if _, err := r.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes a key.
func (r *SQLiteKVRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM karigar_kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (r *SQLiteKVRepository) Close() error {
	return r.db.Close()
}

// Ensure SQLiteKVRepository implements KVRepository
var _ KVRepository = (*SQLiteKVRepository)(nil)
