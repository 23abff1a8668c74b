package sqlite

import (
	"context"
	"database/sql"
	"time"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// Compile-time interface verification.
var _ unlocked.ReliabilityService = (*ReliabilityService)(nil)

// ReliabilityService implements unlocked.ReliabilityService using SQLite.
type ReliabilityService struct {
	db *DB
}

// NewReliabilityService creates a new ReliabilityService.
func NewReliabilityService(db *DB) *ReliabilityService {
	return &ReliabilityService{db: db}
}

// RecordAttempt folds one attempt into the domain's record.
//
// The whole update is a single upsert statement so concurrent requests
// to the same domain never lose counts. All right-hand sides in the
// DO UPDATE clause see the pre-update row, which gives the incremental
// weighted mean (oldAvg*oldTotal + rt) / (oldTotal + 1) directly.
func (s *ReliabilityService) RecordAttempt(ctx context.Context, domain, method string, success bool, responseTimeMs int64) error {
	if domain == "" {
		return unlocked.Errorf(unlocked.EINVALID, "reliability domain required")
	}

	successInc := 0
	bestMethod := ""
	var lastSuccessAt any
	if success {
		successInc = 1
		bestMethod = method
		lastSuccessAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reliability_records
			(domain, total_attempts, successful_attempts, best_method, avg_response_time_ms, last_success_at)
		VALUES (?, 1, ?, ?, ?, ?)
		ON CONFLICT(domain) DO UPDATE SET
			avg_response_time_ms = (avg_response_time_ms * total_attempts + excluded.avg_response_time_ms) / (total_attempts + 1),
			total_attempts = total_attempts + 1,
			successful_attempts = successful_attempts + excluded.successful_attempts,
			best_method = CASE WHEN excluded.successful_attempts > 0 THEN excluded.best_method ELSE best_method END,
			last_success_at = CASE WHEN excluded.successful_attempts > 0 THEN excluded.last_success_at ELSE last_success_at END
	`, domain, successInc, bestMethod, float64(responseTimeMs), lastSuccessAt)

	return err
}

// FindByDomain returns the record for a domain.
func (s *ReliabilityService) FindByDomain(ctx context.Context, domain string) (*unlocked.ReliabilityRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT domain, total_attempts, successful_attempts, best_method, avg_response_time_ms, last_success_at
		FROM reliability_records
		WHERE domain = ?
	`, domain)

	record, err := scanReliabilityRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, unlocked.Errorf(unlocked.ENOTFOUND, "no reliability record for domain")
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// TopDomains returns up to n records ordered by total attempts.
func (s *ReliabilityService) TopDomains(ctx context.Context, n int) ([]*unlocked.ReliabilityRecord, error) {
	if n <= 0 {
		n = 10
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT domain, total_attempts, successful_attempts, best_method, avg_response_time_ms, last_success_at
		FROM reliability_records
		ORDER BY total_attempts DESC, domain ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*unlocked.ReliabilityRecord
	for rows.Next() {
		record, err := scanReliabilityRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// scanReliabilityRecord scans one row using the given scan function.
func scanReliabilityRecord(scan func(dest ...any) error) (*unlocked.ReliabilityRecord, error) {
	var record unlocked.ReliabilityRecord
	var lastSuccessAt sql.NullString

	if err := scan(&record.Domain, &record.TotalAttempts, &record.SuccessfulAttempts,
		&record.BestMethod, &record.AvgResponseTimeMs, &lastSuccessAt); err != nil {
		return nil, err
	}

	if lastSuccessAt.Valid {
		t, err := parseRFC3339(lastSuccessAt.String, "last_success_at")
		if err != nil {
			return nil, err
		}
		record.LastSuccessAt = &t
	}

	return &record, nil
}
