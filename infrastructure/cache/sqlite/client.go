// ABOUTME: SQLite cache implementation for persistent single-node caching
// ABOUTME: Stores entries with expiry timestamps and lazily evicts stale rows

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrCacheMiss is returned when a key is not found in the cache.
var ErrCacheMiss = errors.New("cache: key not found")

const schema = `
CREATE TABLE IF NOT EXISTS cache (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cache_expires ON cache(expires_at);
`

// SQLiteCache implements the Cache interface on a local SQLite file.
// It survives process restarts, which the in-memory backend cannot.
type SQLiteCache struct {
	db *sql.DB
}

// NewSQLiteCache opens (creating if needed) the cache database at path.
func NewSQLiteCache(path string) (*SQLiteCache, error) {
	if path == "" {
		return nil, errors.New("sqlite cache path cannot be empty")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteCache{db: db}, nil
}

// Get retrieves a value, treating expired rows as misses and removing them.
func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var expiresAt int64

	row := c.db.QueryRowContext(ctx, "SELECT value, expires_at FROM cache WHERE key = ?", key)
	if err := row.Scan(&value, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	// expires_at 0 means no expiry
	if expiresAt > 0 && time.Now().Unix() >= expiresAt {
		_, _ = c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key)
		return nil, ErrCacheMiss
	}

	return value, nil
}

// Set stores a value with the given TTL. A zero TTL stores it indefinitely.
func (c *SQLiteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).Unix()
	}

	_, err := c.db.ExecContext(ctx,
		"INSERT INTO cache (key, value, expires_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at",
		key, value, expiresAt)
	return err
}

// Delete removes a key from the cache
func (c *SQLiteCache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key)
	return err
}

// Close closes the underlying database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
