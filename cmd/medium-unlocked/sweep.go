package main

import (
	"fmt"

	unlocked "github.com/Skasundra/medium-unlocked"
)

// Run executes the sweep command.
func (c *SweepCmd) Run(deps *Dependencies) error {
	removed, err := deps.Cache.Sweep(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", unlocked.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %d expired cache entries.\n", removed)
	return nil
}
