package main

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// Run executes the stats command. The reliability and audit reads are
// independent, so they run concurrently.
func (c *StatsCmd) Run(deps *Dependencies) error {
	var records []*unlocked.ReliabilityRecord
	var entries []*unlocked.LogEntry

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		var err error
		records, err = deps.Reliability.TopDomains(ctx, c.Top)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = deps.Audit.Recent(ctx, c.Top)
		return err
	})
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unlocked.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No attempts recorded yet.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, "Domain reliability:")
	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "  %-30s %4d/%4d ok (%.0f%%)  avg %.0fms  best: %s\n",
			r.Domain, r.SuccessfulAttempts, r.TotalAttempts,
			r.SuccessRate()*100, r.AvgResponseTimeMs, orDash(r.BestMethod))
	}

	if len(entries) > 0 {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Recent attempts:")
		for _, e := range entries {
			fmt.Fprintf(deps.Stdout, "  %s  %-12s %-8s score %3d  %dms\n",
				e.CreatedAt.Format("2006-01-02 15:04:05"), e.Method, e.Status, e.Score, e.ResponseTimeMs)
		}
	}

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
