package mock

import (
	"context"

	unlocked "github.com/Skasundra/medium-unlocked"
)

var _ unlocked.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of unlocked.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, req unlocked.FetchRequest) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, req unlocked.FetchRequest) (string, error) {
	return f.FetchFn(ctx, req)
}

var _ unlocked.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of unlocked.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
