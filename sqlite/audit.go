package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// Compile-time interface verification.
var _ unlocked.AuditService = (*AuditService)(nil)

// auditTimestampLayout is RFC3339 with fixed-width nanoseconds. The
// created_at column is TEXT and Recent orders it lexicographically;
// RFC3339Nano trims trailing zeros ("...00.5Z" vs "...00.51Z"), which
// sorts sub-second neighbors out of order.
const auditTimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// AuditService implements unlocked.AuditService using SQLite. Rows are
// append-only; nothing here updates or deletes them.
type AuditService struct {
	db *DB
}

// NewAuditService creates a new AuditService.
func NewAuditService(db *DB) *AuditService {
	return &AuditService{db: db}
}

// Append writes one audit entry, assigning its ID and timestamp.
func (s *AuditService) Append(ctx context.Context, entry *unlocked.LogEntry) error {
	if entry.URL == "" {
		return unlocked.Errorf(unlocked.EINVALID, "audit entry URL required")
	}
	if entry.Status == "" {
		return unlocked.Errorf(unlocked.EINVALID, "audit entry status required")
	}

	entry.ID = uuid.New().String()
	entry.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extraction_logs (id, url, attempt, method, status, error_message,
			response_time_ms, content_length, score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.URL, entry.Attempt, entry.Method, entry.Status, entry.ErrorMessage,
		entry.ResponseTimeMs, entry.ContentLength, entry.Score,
		entry.CreatedAt.Format(auditTimestampLayout))

	return err
}

// Recent returns up to n entries, newest first.
func (s *AuditService) Recent(ctx context.Context, n int) ([]*unlocked.LogEntry, error) {
	if n <= 0 {
		n = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, attempt, method, status, error_message,
		       response_time_ms, content_length, score, created_at
		FROM extraction_logs
		ORDER BY created_at DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*unlocked.LogEntry
	for rows.Next() {
		var entry unlocked.LogEntry
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.URL, &entry.Attempt, &entry.Method,
			&entry.Status, &entry.ErrorMessage, &entry.ResponseTimeMs,
			&entry.ContentLength, &entry.Score, &createdAt); err != nil {
			return nil, err
		}
		if entry.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
