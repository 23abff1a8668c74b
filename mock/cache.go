package mock

import (
	"context"

	unlocked "github.com/Skasundra/medium-unlocked"
)

var _ unlocked.CacheService = (*CacheService)(nil)

// CacheService is a mock implementation of unlocked.CacheService.
type CacheService struct {
	GetFn   func(ctx context.Context, url string) (*unlocked.CacheEntry, error)
	PutFn   func(ctx context.Context, entry *unlocked.CacheEntry) error
	SweepFn func(ctx context.Context) (int, error)
}

func (s *CacheService) Get(ctx context.Context, url string) (*unlocked.CacheEntry, error) {
	return s.GetFn(ctx, url)
}

func (s *CacheService) Put(ctx context.Context, entry *unlocked.CacheEntry) error {
	return s.PutFn(ctx, entry)
}

func (s *CacheService) Sweep(ctx context.Context) (int, error) {
	return s.SweepFn(ctx)
}
