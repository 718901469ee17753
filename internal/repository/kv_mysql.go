package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// MySQLKVRepository implements KVRepository using MySQL.
type MySQLKVRepository struct {
	db *sql.DB
}

// NewMySQLKVRepository creates a new MySQL key-value repository.
// dsn format: "user:password@tcp(host:port)/dbname?parseTime=true"
func NewMySQLKVRepository(dsn string) (*MySQLKVRepository, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS karigar_kv (
		` + "`key`" + ` VARCHAR(255) PRIMARY KEY,
		value LONGTEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLKVRepository{db: db}, nil
}

// Get retrieves the value for a key.
func (r *MySQLKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, "SELECT value FROM karigar_kv WHERE `key` = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return []byte(value), nil
}

// Set stores or replaces the value for a key.
func (r *MySQLKVRepository) Set(ctx context.Context, key string, value []byte) error {
	query := "INSERT INTO karigar_kv (`key`, value, updated_at) VALUES (?, ?, NOW()) " +
		"ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = NOW()"

	if _, err := r.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes a key.
func (r *MySQLKVRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM karigar_kv WHERE `key` = ?", key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Close closes the database connection.
func (r *MySQLKVRepository) Close() error {
	return r.db.Close()
}

var _ KVRepository = (*MySQLKVRepository)(nil)
