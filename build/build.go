// Package build provides bag-of-words pipeline orchestration. It
// coordinates corpus discovery, sampling, text extraction, counting, and
// table output, and optionally records run history.
//
// The pipeline is deliberately sequential: every stage runs to completion
// before the next starts, and the whole corpus's cleaned sentences plus the
// frequency table stay resident in memory. This bounds practical corpus
// size — a known limit, carried over from the original tool.
package build

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/teibow"
)

// Builder orchestrates one bag-of-words build.
type Builder struct {
	Source    teibow.CorpusSource
	Extractor teibow.Extractor
	Writer    teibow.TableWriter

	// Runs and Documents record run history when both are set.
	Runs      teibow.RunService
	Documents teibow.DocumentService

	// SampleSize caps documents processed; 0 or out-of-range means all.
	SampleSize int
	// TableLength caps output rows; 0 or out-of-range means all.
	TableLength int
	// Seed fixes sampler determinism.
	Seed int64
	// OutputPath is the TSV destination.
	OutputPath string
}

// Result holds the outcome of a build.
type Result struct {
	RunID       string
	DocsFound   int
	DocsUsed    int
	DocsSkipped int
	Duplicates  int
	Sentences   int
	UniqueWords int
	Written     int
}

// Run builds a frequency table from the corpus under corpusDir and writes
// it to the configured output path. Malformed or unreadable documents are
// skipped and reported through the progress callback; the run continues.
// Discovery and write failures are fatal. The output file is written once,
// after all counting is complete.
func (b *Builder) Run(ctx context.Context, corpusDir string, progress teibow.ProgressFunc) (*Result, error) {
	paths, err := b.Source.Discover(ctx, corpusDir)
	if err != nil {
		return nil, fmt.Errorf("corpus discovery: %w", err)
	}

	sampled := teibow.Sample(paths, b.SampleSize, b.Seed)
	total := len(sampled)

	if progress != nil {
		progress(teibow.ProgressEvent{Type: teibow.ProgressStarted, Total: total})
	}

	result := &Result{DocsFound: len(paths), DocsUsed: total}
	table := make(teibow.Table)
	var docs []*teibow.Document
	seen := make(map[uint64]bool)
	completed := 0

	for i, path := range sampled {
		completed++

		content, err := os.ReadFile(path)
		if err != nil {
			result.DocsSkipped++
			if progress != nil {
				progress(teibow.ProgressEvent{
					Type:      teibow.ProgressSkipped,
					Completed: completed,
					Total:     total,
					Path:      path,
					Err:       err,
				})
			}
			continue
		}

		// Identical files contribute their words only once per run.
		hash := xxhash.Sum64(content)
		if seen[hash] {
			result.Duplicates++
			if progress != nil {
				progress(teibow.ProgressEvent{
					Type:      teibow.ProgressDuplicate,
					Completed: completed,
					Total:     total,
					Path:      path,
				})
			}
			continue
		}
		seen[hash] = true

		extracted, err := b.Extractor.Extract(string(content))
		if err != nil {
			result.DocsSkipped++
			if progress != nil {
				progress(teibow.ProgressEvent{
					Type:      teibow.ProgressSkipped,
					Completed: completed,
					Total:     total,
					Path:      path,
					Err:       err,
				})
			}
			continue
		}

		words := 0
		for _, sentence := range extracted.Sentences {
			words += table.AddSentence(sentence)
		}
		result.Sentences += len(extracted.Sentences)

		docs = append(docs, &teibow.Document{
			Path:        path,
			Title:       extracted.Title,
			ContentHash: hashString(hash),
			Sentences:   len(extracted.Sentences),
			Words:       words,
			Position:    i,
		})

		if progress != nil {
			progress(teibow.ProgressEvent{
				Type:      teibow.ProgressCompleted,
				Completed: completed,
				Total:     total,
				Path:      path,
			})
		}
	}

	result.UniqueWords = len(table)

	entries := table.Entries(b.TableLength)
	if err := b.Writer.WriteTable(ctx, b.OutputPath, entries); err != nil {
		return nil, fmt.Errorf("write table: %w", err)
	}
	result.Written = len(entries)

	if b.Runs != nil && b.Documents != nil {
		run := &teibow.Run{
			CorpusPath:  corpusDir,
			Seed:        b.Seed,
			SampleSize:  b.SampleSize,
			DocsFound:   result.DocsFound,
			DocsUsed:    result.DocsUsed,
			DocsSkipped: result.DocsSkipped,
			Sentences:   result.Sentences,
			UniqueWords: result.UniqueWords,
			TableLength: result.Written,
			OutputPath:  b.OutputPath,
		}
		if err := b.Runs.CreateRun(ctx, run); err != nil {
			return nil, fmt.Errorf("record run: %w", err)
		}
		result.RunID = run.ID

		for _, doc := range docs {
			doc.RunID = run.ID
			if err := b.Documents.CreateDocument(ctx, doc); err != nil {
				return nil, fmt.Errorf("record document %q: %w", doc.Path, err)
			}
		}
	}

	if progress != nil {
		progress(teibow.ProgressEvent{Type: teibow.ProgressFinished, Completed: completed, Total: total})
	}

	return result, nil
}

// hashString renders an xxhash digest as fixed-width hex.
func hashString(h uint64) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}
