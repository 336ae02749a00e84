package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/teibow"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	cfg := *deps.Config
	if c.Sample >= 0 {
		cfg.SampleSize = c.Sample
	}
	if c.Top >= 0 {
		cfg.TableLength = c.Top
	}
	if c.Output != "" {
		cfg.OutputPath = c.Output
	}
	if c.Seed >= 0 {
		cfg.Seed = c.Seed
	}

	b := deps.Builder
	b.SampleSize = cfg.SampleSize
	b.TableLength = cfg.TableLength
	b.Seed = cfg.Seed
	b.OutputPath = cfg.OutputPath

	progress := func(ev teibow.ProgressEvent) {
		switch ev.Type {
		case teibow.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Processing %d documents\n", ev.Total)
		case teibow.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r[%.1f%%] %s", percent(ev), filepath.Base(ev.Path))
		case teibow.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "\nskip %s: %s\n", ev.Path, teibow.ErrorMessage(ev.Err))
		case teibow.ProgressDuplicate:
			fmt.Fprintf(deps.Stderr, "\nduplicate %s\n", ev.Path)
		case teibow.ProgressFinished:
			fmt.Fprintln(deps.Stdout)
		}
	}

	result, err := b.Run(deps.Ctx, c.Dir, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", teibow.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Found %d XML files, used %d, skipped %d (%d duplicates)\n",
		result.DocsFound, result.DocsUsed, result.DocsSkipped, result.Duplicates)
	fmt.Fprintf(deps.Stdout, "Unique words: %d\n", result.UniqueWords)
	fmt.Fprintf(deps.Stdout, "Wrote %d words to %s\n", result.Written, cfg.OutputPath)
	if result.RunID != "" {
		fmt.Fprintf(deps.Stdout, "Recorded run %s\n", result.RunID)
	}

	return nil
}

func percent(ev teibow.ProgressEvent) float64 {
	if ev.Total == 0 {
		return 100.0
	}
	return float64(ev.Completed) / float64(ev.Total) * 100.0
}
