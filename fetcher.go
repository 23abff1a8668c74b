package unlocked

import (
	"context"
	"time"
)

// FetchRequest describes a single bounded-time fetch of a resolved
// strategy URL.
type FetchRequest struct {
	// URL is the fully resolved mirror URL.
	URL string

	// Timeout is the hard deadline for the whole request. The fetch is
	// cancelled exactly at this boundary, independent of any deadline
	// already present on the caller's context.
	Timeout time.Duration

	// Headers are merged over the fetcher's default header profile.
	Headers map[string]string
}

// Fetcher retrieves raw markup from a URL. Implementations do no parsing.
type Fetcher interface {
	// Fetch issues one GET and returns the response body.
	// The context controls cancellation; the request's Timeout bounds
	// the fetch regardless of the context's own deadline.
	Fetch(ctx context.Context, req FetchRequest) (html string, err error)
}

// DomainLimiter rate limits requests per domain. The pipeline consults it
// before each fetch so concurrent invocations stay polite toward the
// mirror services. It is always an explicit dependency, never a package
// global.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is cancelled before the wait
	// completes.
	Wait(ctx context.Context, domain string) error
}
