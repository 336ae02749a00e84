package main

import (
	"fmt"

	"github.com/fwojciec/teibow"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return teibow.Errorf(teibow.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, c.RunID); err != nil {
		if teibow.ErrorCode(err) == teibow.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'teibow runs' to see recorded runs.\n", c.RunID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", teibow.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %q\n", c.RunID)
	return nil
}
