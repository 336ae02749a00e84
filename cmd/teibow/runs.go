package main

import (
	"fmt"

	"github.com/fwojciec/teibow"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", teibow.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'teibow build' to create one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d/%d docs  %d words  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.CorpusPath,
			r.DocsUsed, r.DocsFound, r.UniqueWords, r.OutputPath)
	}

	return nil
}
