package main

import (
	"fmt"

	"github.com/fwojciec/teibow"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	if _, err := deps.Runs.FindRunByID(deps.Ctx, c.RunID); err != nil {
		if teibow.ErrorCode(err) == teibow.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'teibow runs' to see recorded runs.\n", c.RunID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", teibow.ErrorMessage(err))
		}
		return err
	}

	docs, err := deps.Documents.FindDocumentsByRun(deps.Ctx, c.RunID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", teibow.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents recorded for this run.")
		return nil
	}

	for _, d := range docs {
		title := d.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%4d  %s  %s  %d sentences  %d words\n",
			d.Position, d.Path, title, d.Sentences, d.Words)
	}

	return nil
}
