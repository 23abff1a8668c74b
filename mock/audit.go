package mock

import (
	"context"

	unlocked "github.com/Skasundra/medium-unlocked"
)

var _ unlocked.AuditService = (*AuditService)(nil)

// AuditService is a mock implementation of unlocked.AuditService.
type AuditService struct {
	AppendFn func(ctx context.Context, entry *unlocked.LogEntry) error
	RecentFn func(ctx context.Context, n int) ([]*unlocked.LogEntry, error)
}

func (s *AuditService) Append(ctx context.Context, entry *unlocked.LogEntry) error {
	return s.AppendFn(ctx, entry)
}

func (s *AuditService) Recent(ctx context.Context, n int) ([]*unlocked.LogEntry, error) {
	return s.RecentFn(ctx, n)
}
