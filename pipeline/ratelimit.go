package pipeline

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	unlocked "github.com/Skasundra/medium-unlocked"
)

var _ unlocked.DomainLimiter = (*RateLimiter)(nil)

// RateLimiter paces requests per mirror domain with token buckets. Each
// domain gets its own bucket with a burst of 1, so throttling one slow
// mirror never delays requests to the others. Domains can carry
// individual rates for mirrors that are more bot-sensitive than the
// rest of the table.
type RateLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*rate.Limiter
	defaultRPS float64
	domainRPS  map[string]float64
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithDomainRPS sets a per-domain rate, overriding the default.
func WithDomainRPS(domain string, rps float64) RateLimiterOption {
	return func(l *RateLimiter) {
		l.domainRPS[domain] = rps
	}
}

// NewRateLimiter creates a RateLimiter allowing rps requests per second
// per domain with a burst of 1 (no bursting). A rate of zero or less
// disables limiting for the domains it applies to.
func NewRateLimiter(rps float64, opts ...RateLimiterOption) *RateLimiter {
	l := &RateLimiter{
		limiters:   make(map[string]*rate.Limiter),
		defaultRPS: rps,
		domainRPS:  make(map[string]float64),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is cancelled before the wait completes.
func (l *RateLimiter) Wait(ctx context.Context, domain string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(l.rateFor(domain), 1)
		l.limiters[domain] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}

// rateFor resolves the configured rate for a domain.
func (l *RateLimiter) rateFor(domain string) rate.Limit {
	rps := l.defaultRPS
	if override, ok := l.domainRPS[domain]; ok {
		rps = override
	}
	if rps <= 0 {
		return rate.Inf
	}
	return rate.Limit(rps)
}
