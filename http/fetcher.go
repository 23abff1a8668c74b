// Package http provides the HTTP implementation of unlocked.Fetcher.
// It issues single bounded-time GET requests with a browser-like header
// profile; mirror services tend to serve bot-flagged clients an empty
// shell page.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// DefaultFetchTimeout applies when a request carries no timeout of its own.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMinBodyBytes is the smallest response body accepted as a real
// page. Mirrors return tiny placeholder documents on failure; treating
// them as errors lets the pipeline move on to the next attempt.
const DefaultMinBodyBytes = 500

// defaultUserAgent is a current mainstream browser identity.
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements unlocked.Fetcher at compile time.
var _ unlocked.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw markup over HTTP. Redirects are followed using
// the client's default policy.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	minBodyBytes int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the underlying HTTP client. The client should not set
// its own Timeout; per-request deadlines come from the fetch request.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithUserAgent overrides the default browser User-Agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMinBodyBytes sets the minimum viable response size.
// Defaults to DefaultMinBodyBytes.
func WithMinBodyBytes(n int) Option {
	return func(f *Fetcher) {
		f.minBodyBytes = n
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:       &http.Client{},
		userAgent:    defaultUserAgent,
		minBodyBytes: DefaultMinBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch issues one GET with a deterministic cutoff at req.Timeout.
// Cancellation of ctx propagates into the in-flight request.
func (f *Fetcher) Fetch(ctx context.Context, req unlocked.FetchRequest) (string, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return "", unlocked.Errorf(unlocked.EINVALID, "invalid fetch URL %q", req.URL)
	}

	httpReq.Header.Set("User-Agent", f.userAgent)
	httpReq.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	httpReq.Header.Set("Accept-Language", "en-US,en;q=0.9")
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := f.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", unlocked.Errorf(unlocked.ETIMEOUT, "fetch timed out after %s", timeout)
		}
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", unlocked.Errorf(unlocked.EUNAVAILABLE, "fetch failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", unlocked.Errorf(unlocked.EUNAVAILABLE, "HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", unlocked.Errorf(unlocked.ETIMEOUT, "fetch timed out after %s", timeout)
		}
		return "", unlocked.Errorf(unlocked.EUNAVAILABLE, "reading response: %v", err)
	}

	if len(body) < f.minBodyBytes {
		return "", unlocked.Errorf(unlocked.ETOOSHORT, "response body too short (%d bytes)", len(body))
	}

	return string(body), nil
}
