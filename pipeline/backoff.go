package pipeline

import (
	"context"
	"time"
)

// backoff sleeps base * 2^(completed-1) after the completed-th attempt
// of a strategy, returning early if the context is cancelled. Backoff
// only blocks the current invocation.
func (p *Pipeline) backoff(ctx context.Context, completed int) error {
	base := p.BackoffBase
	if base <= 0 {
		base = DefaultBackoffBase
	}
	delay := base * (1 << (completed - 1))

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
