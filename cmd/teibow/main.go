package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/teibow"
	"github.com/fwojciec/teibow/build"
	"github.com/fwojciec/teibow/etree"
	"github.com/fwojciec/teibow/fs"
	"github.com/fwojciec/teibow/goquery"
	"github.com/fwojciec/teibow/sentences"
	teislog "github.com/fwojciec/teibow/slog"
	"github.com/fwojciec/teibow/sqlite"
	"github.com/fwojciec/teibow/tei"
	"github.com/fwojciec/teibow/toml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path. Set before calling Run().
	ConfigPath string

	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService      teibow.RunService
	DocumentService teibow.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		DBPath:     defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("teibow"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'teibow --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Load config file defaults; flags override them per command.
	cfg, err := toml.Load(m.ConfigPath)
	if err != nil {
		return err
	}
	deps.Config = cfg

	// Open run-history database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TEIBOW_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RunService = sqlite.NewRunService(m.DB)
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Runs = m.RunService
	deps.Documents = m.DocumentService

	// Wire the pipeline for the build command
	if cmd == "build" {
		tokenizer, err := sentences.NewTokenizer()
		if err != nil {
			return fmt.Errorf("failed to create sentence tokenizer: %w", err)
		}

		name := cli.Build.Extractor
		if name == "" {
			name = cfg.Extractor
		}
		extractor, err := newExtractor(name, tokenizer)
		if err != nil {
			return err
		}

		var source teibow.CorpusSource = fs.NewWalker(".xml")
		if cli.Build.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			source = teislog.NewLoggingSource(source, logger)
			extractor = teislog.NewLoggingExtractor(extractor, logger)
		}

		deps.Builder = &build.Builder{
			Source:    source,
			Extractor: extractor,
			Writer:    fs.NewWriter(),
			Runs:      m.RunService,
			Documents: m.DocumentService,
		}
	}

	return kongCtx.Run(deps)
}

// newExtractor selects an extractor implementation by name.
func newExtractor(name string, tokenizer teibow.SentenceTokenizer) (teibow.Extractor, error) {
	switch name {
	case teibow.ExtractorTEI:
		return tei.NewExtractor(tokenizer), nil
	case teibow.ExtractorEtree:
		return etree.NewExtractor(tokenizer), nil
	case teibow.ExtractorGoquery:
		return goquery.NewExtractor(tokenizer), nil
	default:
		return nil, teibow.Errorf(teibow.EINVALID, "unknown extractor %q", name)
	}
}

func defaultConfigPath() string {
	if path := os.Getenv("TEIBOW_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "teibow.toml"
	}
	return filepath.Join(home, ".teibow", "config.toml")
}

func defaultDBPath() string {
	if path := os.Getenv("TEIBOW_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "teibow.db"
	}
	dir := filepath.Join(home, ".teibow")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "teibow.db")
}
