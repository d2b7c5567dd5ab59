package thumbnail

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Cache stores downloaded image bytes keyed by URL
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// OpenCache opens the SQLite cache at path and runs migrations
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}

	// Set connection pragmas (must be done outside of transactions)
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set dialect: %w", err)
	}

	// Suppress goose logging
	goose.SetLogger(goose.NopLogger())

	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Cache{db: db, now: time.Now}, nil
}

// Get returns the cached bytes for url. ok is false on a miss.
func (c *Cache) Get(url string) (body []byte, ok bool, err error) {
	err = c.db.QueryRow("SELECT body FROM thumbnails WHERE url = ?", url).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached image: %w", err)
	}
	return body, true, nil
}

// Put stores body for url, replacing any previous entry
func (c *Cache) Put(url string, body []byte) error {
	_, err := c.db.Exec(`
		INSERT INTO thumbnails (url, body, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at
	`, url, body, c.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to cache image: %w", err)
	}
	return nil
}

// Prune deletes entries fetched more than maxAge ago and returns how many were removed.
// maxAge must be positive; use Clear to empty the cache.
func (c *Cache) Prune(maxAge time.Duration) (int64, error) {
	if maxAge <= 0 {
		return 0, fmt.Errorf("max age must be positive, got %s", maxAge)
	}
	cutoff := c.now().Add(-maxAge).Unix()
	return c.deleteWhere("DELETE FROM thumbnails WHERE fetched_at < ?", cutoff)
}

// Clear deletes every entry and returns how many were removed
func (c *Cache) Clear() (int64, error) {
	return c.deleteWhere("DELETE FROM thumbnails")
}

func (c *Cache) deleteWhere(query string, args ...any) (int64, error) {
	res, err := c.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to prune cache: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned rows: %w", err)
	}
	return n, nil
}

// Len returns the number of cached images
func (c *Cache) Len() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM thumbnails").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return n, nil
}

// Close closes the underlying database
func (c *Cache) Close() error {
	return c.db.Close()
}
