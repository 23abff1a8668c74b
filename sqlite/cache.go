package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// Compile-time interface verification.
var _ unlocked.CacheService = (*CacheService)(nil)

// CacheService implements unlocked.CacheService using SQLite.
// Entries are keyed by the exact original URL; writes are upserts so the
// last successful extraction always wins.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// Get returns the unexpired entry for the URL. Expired rows stay in the
// table until swept but are never visible here.
func (s *CacheService) Get(ctx context.Context, url string) (*unlocked.CacheEntry, error) {
	var entry unlocked.CacheEntry
	var createdAt, expiresAt string

	now := time.Now().UTC().Format(time.RFC3339)
	err := s.db.QueryRowContext(ctx, `
		SELECT url, title, author, content_html, plain_text, word_count,
		       reading_time, score, method, content_hash, created_at, expires_at
		FROM cache_entries
		WHERE url = ? AND expires_at > ?
	`, url, now).Scan(&entry.URL, &entry.Title, &entry.Author, &entry.ContentHTML,
		&entry.PlainText, &entry.WordCount, &entry.ReadingTimeMinutes, &entry.Score,
		&entry.Method, &entry.ContentHash, &createdAt, &expiresAt)

	if err == sql.ErrNoRows {
		return nil, unlocked.Errorf(unlocked.ENOTFOUND, "no cached article for URL")
	}
	if err != nil {
		return nil, err
	}

	if entry.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if entry.ExpiresAt, err = parseRFC3339(expiresAt, "expires_at"); err != nil {
		return nil, err
	}

	return &entry, nil
}

// Put upserts the entry by URL and assigns timestamps and content hash.
func (s *CacheService) Put(ctx context.Context, entry *unlocked.CacheEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.CreatedAt = time.Now().UTC()
	entry.ExpiresAt = entry.CreatedAt.Add(unlocked.CacheTTL)
	entry.ContentHash = hashContent(entry.ContentHTML)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (url, title, author, content_html, plain_text,
			word_count, reading_time, score, method, content_hash, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			content_html = excluded.content_html,
			plain_text = excluded.plain_text,
			word_count = excluded.word_count,
			reading_time = excluded.reading_time,
			score = excluded.score,
			method = excluded.method,
			content_hash = excluded.content_hash,
			created_at = excluded.created_at,
			expires_at = excluded.expires_at
	`, entry.URL, entry.Title, entry.Author, entry.ContentHTML, entry.PlainText,
		entry.WordCount, entry.ReadingTimeMinutes, entry.Score, entry.Method,
		entry.ContentHash, entry.CreatedAt.Format(time.RFC3339),
		entry.ExpiresAt.Format(time.RFC3339))

	return err
}

// Sweep deletes entries past expiry and returns how many were removed.
// Running it concurrently is safe; each expired row is deleted once.
func (s *CacheService) Sweep(ctx context.Context) (int, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	result, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE expires_at <= ?`, now)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}
