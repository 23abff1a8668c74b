package unlocked

import (
	"context"
	"time"
)

// Attempt statuses recorded in the audit log.
const (
	StatusSuccess = "success"
	StatusPartial = "partial"
	StatusFailed  = "failed"
)

// LogEntry is one append-only audit record per extraction attempt.
// Entries are never mutated after being written.
type LogEntry struct {
	ID             string    `json:"id"`
	URL            string    `json:"url"`
	Attempt        int       `json:"attempt"`
	Method         string    `json:"method"`
	Status         string    `json:"status"`
	ErrorMessage   string    `json:"errorMessage,omitempty"`
	ResponseTimeMs int64     `json:"responseTimeMs"`
	ContentLength  int       `json:"contentLength"`
	Score          int       `json:"score"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AuditService persists the per-attempt audit trail.
//
// Append failures must be swallowed by callers: the audit log never
// aborts or alters the result returned to the user.
type AuditService interface {
	// Append writes one entry. The ID and CreatedAt are assigned by the
	// implementation.
	Append(ctx context.Context, entry *LogEntry) error

	// Recent returns up to n entries, newest first, for monitoring.
	Recent(ctx context.Context, n int) ([]*LogEntry, error)
}
