// Package sqlite provides a SQLite-backed implementation of kvstore.Store.
//
// WAL mode is enabled on Open so a read of one key never blocks a write of
// another while the storefront serves overlapping requests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// Register the pure-Go SQLite driver.
	// We use modernc.org/sqlite instead of mattn/go-sqlite3 to avoid CGO
	// requirements, making it easier to build and run in Docker (Alpine).
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup. The namespace is tiny (a
// handful of well-known keys), so a single two-column table is enough.
const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
    key    TEXT PRIMARY KEY,
    value  TEXT NOT NULL
);
`

// Store is the SQLite implementation of kvstore.Store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema.
//
//	store, err := sqlite.Open("./data/freshmart.db")
func Open(path string) (*Store, error) {
	// The pure-Go driver uses _pragma query parameters to configure connection state.
	// busy_timeout waits for locks instead of failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// Use "sqlite", not "sqlite3" for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if err := applySchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, or "" when the key is absent.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	const q = `SELECT value FROM kv_entries WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, q, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("sqlite: get %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO kv_entries (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("sqlite: set %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_entries WHERE key = ?`

	if _, err := s.db.ExecContext(ctx, q, key); err != nil {
		return fmt.Errorf("sqlite: delete %q: %w", key, err)
	}
	return nil
}

// applySchema runs the DDL statements once. Idempotent due to IF NOT EXISTS.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return nil
}
