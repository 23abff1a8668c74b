package unlocked

import (
	"context"
	"time"
)

// ReliabilityRecord holds rolling per-domain attempt statistics, used by
// monitoring to see which mirrors are worth keeping.
type ReliabilityRecord struct {
	Domain             string `json:"domain"`
	TotalAttempts      int64  `json:"totalAttempts"`
	SuccessfulAttempts int64  `json:"successfulAttempts"`
	// BestMethod is the method of the most recent success, not the
	// historically best performer. The name predates the behavior and
	// is kept for compatibility with existing databases.
	BestMethod        string     `json:"bestMethod"`
	AvgResponseTimeMs float64    `json:"avgResponseTimeMs"`
	LastSuccessAt     *time.Time `json:"lastSuccessAt,omitempty"`
}

// SuccessRate returns successful/total in [0,1], or 0 when no attempts
// have been recorded.
func (r *ReliabilityRecord) SuccessRate() float64 {
	if r.TotalAttempts == 0 {
		return 0
	}
	return float64(r.SuccessfulAttempts) / float64(r.TotalAttempts)
}

// ReliabilityService tracks attempt outcomes per domain.
//
// RecordAttempt must be atomic with respect to concurrent callers hitting
// the same domain: counters are updated in a single statement so no
// increment is ever lost.
type ReliabilityService interface {
	// RecordAttempt folds one attempt into the domain's record. The
	// average response time is recomputed as an incremental weighted
	// mean; best method and last success are updated only on success.
	RecordAttempt(ctx context.Context, domain, method string, success bool, responseTimeMs int64) error

	// FindByDomain returns the record for a domain.
	// Returns ENOTFOUND if no attempts have been recorded.
	FindByDomain(ctx context.Context, domain string) (*ReliabilityRecord, error)

	// TopDomains returns up to n records ordered by total attempts,
	// for monitoring.
	TopDomains(ctx context.Context, n int) ([]*ReliabilityRecord, error)
}
