package main

import (
	"context"
	"io"

	"github.com/fwojciec/teibow"
	"github.com/fwojciec/teibow/build"
	"github.com/fwojciec/teibow/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *teibow.Config
	DB        *sqlite.DB
	Runs      teibow.RunService
	Documents teibow.DocumentService
	Builder   *build.Builder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build  BuildCmd  `cmd:"" help:"Build a bag-of-words table from a corpus directory"`
	Runs   RunsCmd   `cmd:"" help:"List recorded runs"`
	Docs   DocsCmd   `cmd:"" help:"List documents processed by a run"`
	Delete DeleteCmd `cmd:"" help:"Delete a run and its document records"`
}

// BuildCmd is the "build" subcommand. Flag defaults of -1 mean "use the
// config file value".
type BuildCmd struct {
	Dir       string `arg:"" help:"Corpus root directory"`
	Sample    int    `short:"s" default:"-1" help:"Number of documents to sample (0 = all)"`
	Top       int    `short:"n" default:"-1" help:"Number of table rows to write (0 = all)"`
	Output    string `short:"o" help:"Output TSV path"`
	Seed      int64  `default:"-1" help:"Sampler seed"`
	Extractor string `help:"Extractor implementation: tei, etree or goquery"`
	Verbose   bool   `short:"v" help:"Log discovery and extraction details"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct{}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	RunID string `arg:"" help:"Run ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	RunID string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}
