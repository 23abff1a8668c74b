// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// Ensure LoggingFetcher implements unlocked.Fetcher.
var _ unlocked.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-request debug logging.
type LoggingFetcher struct {
	next   unlocked.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next unlocked.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs host, duration,
// response size and outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, req unlocked.FetchRequest) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, req)
	if err != nil {
		f.logger.Debug("fetch failed",
			"host", unlocked.Domain(req.URL),
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Debug("fetch succeeded",
		"host", unlocked.Domain(req.URL),
		"duration", time.Since(begin),
		"bytes", len(html),
	)
	return html, nil
}
