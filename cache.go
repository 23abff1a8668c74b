package unlocked

import (
	"context"
	"time"
)

// CacheTTL is how long a stored extraction is served without re-fetching.
const CacheTTL = 7 * 24 * time.Hour

// CacheEntry is a previously accepted extraction keyed by the exact
// original article URL (no normalization). Exactly one entry exists per
// URL; the last successful extraction wins.
type CacheEntry struct {
	URL                string    `json:"url"`
	Title              string    `json:"title"`
	Author             string    `json:"author"`
	ContentHTML        string    `json:"contentHtml"`
	PlainText          string    `json:"plainText"`
	WordCount          int       `json:"wordCount"`
	ReadingTimeMinutes int       `json:"readingTimeMinutes"`
	Score              int       `json:"score"`
	Method             string    `json:"method"`
	ContentHash        string    `json:"contentHash"`
	CreatedAt          time.Time `json:"createdAt"`
	ExpiresAt          time.Time `json:"expiresAt"`
}

// Expired reports whether the entry is past its TTL at the given instant.
func (e *CacheEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.After(now)
}

// Article converts the entry back into the article that was cached.
func (e *CacheEntry) Article() *Article {
	return &Article{
		Title:              e.Title,
		Author:             e.Author,
		ContentHTML:        e.ContentHTML,
		PlainText:          e.PlainText,
		WordCount:          e.WordCount,
		ReadingTimeMinutes: e.ReadingTimeMinutes,
		Score:              e.Score,
		Method:             e.Method,
		Cached:             true,
	}
}

// Validate returns an error if the entry contains invalid fields.
func (e *CacheEntry) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "cache entry URL required")
	}
	if e.Score < ScoreSuccess {
		return Errorf(EINVALID, "cache entry score %d below success threshold", e.Score)
	}
	return nil
}

// CacheService stores accepted extractions with a TTL.
type CacheService interface {
	// Get returns the unexpired entry for the URL.
	// Returns ENOTFOUND if no entry exists or the entry has expired.
	Get(ctx context.Context, url string) (*CacheEntry, error)

	// Put upserts the entry by URL. Only called for extractions at or
	// above the success threshold.
	Put(ctx context.Context, entry *CacheEntry) error

	// Sweep deletes entries past expiry and returns how many were
	// removed. Idempotent and safe under concurrent execution.
	Sweep(ctx context.Context) (int, error)
}
