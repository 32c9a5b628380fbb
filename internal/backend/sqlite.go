// ABOUTME: SQLite backend using modernc.org/sqlite (pure Go)
// ABOUTME: Stores keys in a single kv table with WAL mode enabled

package backend

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteBackend persists keys in a SQLite database.
type SQLiteBackend struct {
	db *sql.DB
}

// Compile-time check that SQLiteBackend implements Backend.
var _ Backend = (*SQLiteBackend)(nil)

// NewSQLiteBackend opens (or creates) the database at dbPath, creating
// the parent directory if needed.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, &Error{Kind: KindUnavailable, Op: "init", Err: err}
	}

	// WAL mode for better concurrency with a busy timeout so parallel
	// invocations queue instead of failing.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, &Error{Kind: KindUnavailable, Op: "init", Err: err}
	}

	schema := `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &Error{Kind: KindUnavailable, Op: "init", Err: err}
	}

	return &SQLiteBackend{db: db}, nil
}

// GetItem reads the value for key.
func (b *SQLiteBackend) GetItem(key string) (string, error) {
	var value string
	err := b.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", &Error{Kind: KindIO, Op: "get", Err: err}
	}
	return value, nil
}

// SetItem writes the value for key, replacing any existing value.
func (b *SQLiteBackend) SetItem(key, value string) error {
	_, err := b.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return &Error{Kind: KindIO, Op: "set", Err: err}
	}
	return nil
}

// RemoveItem deletes the row for key. Missing keys are ignored.
func (b *SQLiteBackend) RemoveItem(key string) error {
	if _, err := b.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return &Error{Kind: KindIO, Op: "remove", Err: err}
	}
	return nil
}

// Close releases the database handle.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
