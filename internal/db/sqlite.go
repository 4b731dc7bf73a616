package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const timestampFormat = time.RFC3339Nano

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
	now  func() time.Time
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	// Ensure the directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Initialize key/value table
	if _, err := conn.Exec(createKVTable); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create kv schema: %w", err)
	}

	return &DB{conn: conn, now: time.Now}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Load returns the blob stored under key. ok is false when the key is absent.
func (db *DB) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := db.conn.QueryRowContext(ctx, selectKV, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Save writes blob under key, replacing any previous value
func (db *DB) Save(ctx context.Context, key string, blob []byte) error {
	_, err := db.conn.ExecContext(ctx, upsertKV, key, string(blob), db.now().UTC().Format(timestampFormat))
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// SavedAt returns when key was last written. ok is false when the key is absent.
func (db *DB) SavedAt(ctx context.Context, key string) (time.Time, bool, error) {
	var ts string
	err := db.conn.QueryRowContext(ctx, selectKVUpdatedAt, key).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to query %s: %w", key, err)
	}
	t, err := time.Parse(timestampFormat, ts)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse timestamp %q: %w", ts, err)
	}
	return t, true, nil
}
