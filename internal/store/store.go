// Package store provides the durable boolean key-value store backing
// persisted feature toggles, implemented on a local SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite"
)

const (
	ftDir  = ".ft"
	dbFile = ".ft/flags.db"
)

// ErrUnavailable indicates the underlying database could not be opened.
// All open/initialize failures wrap this sentinel.
var ErrUnavailable = errors.New("flag store unavailable")

const schema = `
CREATE TABLE IF NOT EXISTS flags (
	key        TEXT PRIMARY KEY,
	value      INTEGER NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Store wraps the database connection
type Store struct {
	conn    *sql.DB
	baseDir string
}

// Open opens an existing flag store
func Open(baseDir string) (*Store, error) {
	dbPath := filepath.Join(baseDir, dbFile)

	// Check if db exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: database not found, run 'ft init' first", ErrUnavailable)
	}

	return open(dbPath, baseDir)
}

// Initialize creates the flag store, including the .ft directory and schema
func Initialize(baseDir string) (*Store, error) {
	dbPath := filepath.Join(baseDir, dbFile)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: create store dir: %v", ErrUnavailable, err)
	}

	return open(dbPath, baseDir)
}

func open(dbPath, baseDir string) (*Store, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrUnavailable, err)
	}

	// Enable WAL mode for concurrent reads while writes are serialized
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: enable WAL mode: %v", ErrUnavailable, err)
	}

	// Set busy timeout as fallback protection (500ms, matches lock timeout)
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: set busy timeout: %v", ErrUnavailable, err)
	}

	// Slightly faster writes, still safe with WAL
	conn.Exec("PRAGMA synchronous=NORMAL")

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: create schema: %v", ErrUnavailable, err)
	}

	return &Store{conn: conn, baseDir: baseDir}, nil
}

// Close closes the store
func (s *Store) Close() error {
	return s.conn.Close()
}

// GetBool returns the stored value for key. The second return value reports
// whether an entry exists, so callers can tell "stored false" from "never set".
func (s *Store) GetBool(key string) (bool, bool, error) {
	var value int
	err := s.conn.QueryRow("SELECT value FROM flags WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value != 0, true, nil
}

// SetBool writes or overwrites the entry for key
func (s *Store) SetBool(key string, value bool) error {
	v := 0
	if value {
		v = 1
	}
	_, err := s.conn.Exec(`
		INSERT INTO flags (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, v, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes the entry for key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.conn.Exec("DELETE FROM flags WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys returns every stored key, sorted
func (s *Store) Keys() ([]string, error) {
	rows, err := s.conn.Query("SELECT key FROM flags")
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	sort.Strings(keys)
	return keys, nil
}

// WithWriteLock executes fn while holding an exclusive cross-process write
// lock. Read-modify-write sequences (toggle) go through this so concurrent
// processes cannot interleave between the read and the write.
func (s *Store) WithWriteLock(fn func() error) error {
	locker := newWriteLocker(s.baseDir)
	if err := locker.acquire(defaultTimeout); err != nil {
		return err
	}
	defer locker.release()
	return fn()
}
