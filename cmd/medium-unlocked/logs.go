package main

import (
	"fmt"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// Run executes the logs command.
func (c *LogsCmd) Run(deps *Dependencies) error {
	entries, err := deps.Audit.Recent(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unlocked.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No extraction attempts logged yet.")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-12s attempt %d  %-8s score %3d  %dms  %s",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Method, e.Attempt,
			e.Status, e.Score, e.ResponseTimeMs, e.URL)
		if e.ErrorMessage != "" {
			line += "  (" + e.ErrorMessage + ")"
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	return nil
}
