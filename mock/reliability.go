package mock

import (
	"context"

	unlocked "github.com/Skasundra/medium-unlocked"
)

var _ unlocked.ReliabilityService = (*ReliabilityService)(nil)

// ReliabilityService is a mock implementation of unlocked.ReliabilityService.
type ReliabilityService struct {
	RecordAttemptFn func(ctx context.Context, domain, method string, success bool, responseTimeMs int64) error
	FindByDomainFn  func(ctx context.Context, domain string) (*unlocked.ReliabilityRecord, error)
	TopDomainsFn    func(ctx context.Context, n int) ([]*unlocked.ReliabilityRecord, error)
}

func (s *ReliabilityService) RecordAttempt(ctx context.Context, domain, method string, success bool, responseTimeMs int64) error {
	return s.RecordAttemptFn(ctx, domain, method, success, responseTimeMs)
}

func (s *ReliabilityService) FindByDomain(ctx context.Context, domain string) (*unlocked.ReliabilityRecord, error) {
	return s.FindByDomainFn(ctx, domain)
}

func (s *ReliabilityService) TopDomains(ctx context.Context, n int) ([]*unlocked.ReliabilityRecord, error) {
	return s.TopDomainsFn(ctx, n)
}
