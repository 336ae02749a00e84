package build_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fwojciec/teibow"
	"github.com/fwojciec/teibow/build"
	"github.com/fwojciec/teibow/fs"
	"github.com/fwojciec/teibow/mock"
	"github.com/fwojciec/teibow/sentences"
	"github.com/fwojciec/teibow/tei"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCorpus creates a corpus directory with the given file contents and
// returns its path.
func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

// lineTokenizer is a trivial sentence tokenizer for mock-based tests.
func lineTokenizer() *mock.SentenceTokenizer {
	return &mock.SentenceTokenizer{
		TokenizeFn: func(text string) []string {
			var out []string
			for _, s := range strings.Split(text, ".") {
				if strings.TrimSpace(s) == "" {
					continue
				}
				out = append(out, s)
			}
			return out
		},
	}
}

func TestBuilder_Run(t *testing.T) {
	t.Parallel()

	t.Run("two-file scenario produces the expected table", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpus(t, map[string]string{
			"a.xml": "<body>The cat sat. The cat ran.</body>",
			"b.xml": "<body>A dog ran fast.</body>",
		})
		out := filepath.Join(t.TempDir(), "bow.txt")

		tokenizer, err := sentences.NewTokenizer()
		require.NoError(t, err)

		b := &build.Builder{
			Source:     fs.NewWalker(".xml"),
			Extractor:  tei.NewExtractor(tokenizer),
			Writer:     fs.NewWriter(),
			Seed:       4,
			OutputPath: out,
		}

		result, err := b.Run(context.Background(), dir, nil)
		require.NoError(t, err)

		assert.Equal(t, 2, result.DocsFound)
		assert.Equal(t, 2, result.DocsUsed)
		assert.Equal(t, 0, result.DocsSkipped)
		assert.Equal(t, 6, result.UniqueWords)

		data, err := os.ReadFile(out)
		require.NoError(t, err)

		counts := make(map[string]int)
		lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		var prev int
		for i, line := range lines {
			fields := strings.Split(line, "\t")
			require.Len(t, fields, 2)
			n, err := strconv.Atoi(fields[1])
			require.NoError(t, err)
			counts[fields[0]] = n
			if i > 0 {
				assert.GreaterOrEqual(t, prev, n, "counts must be non-increasing")
			}
			prev = n
		}

		assert.Equal(t, map[string]int{
			"the":  2,
			"cat":  2,
			"ran":  2,
			"sat":  1,
			"dog":  1,
			"fast": 1,
		}, counts)
	})

	t.Run("accented words are counted whole", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpus(t, map[string]string{
			"a.xml": "<body>Hij was geïrriteerd. Zij was ook geïrriteerd, zeî ze.</body>",
		})
		out := filepath.Join(t.TempDir(), "bow.txt")

		b := &build.Builder{
			Source:     fs.NewWalker(".xml"),
			Extractor:  tei.NewExtractor(lineTokenizer()),
			Writer:     fs.NewWriter(),
			Seed:       4,
			OutputPath: out,
		}

		result, err := b.Run(context.Background(), dir, nil)
		require.NoError(t, err)

		// hij, was, geïrriteerd, zij, ook, zeî; no fragments from split
		// diacritics.
		assert.Equal(t, 6, result.UniqueWords)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "geïrriteerd\t2")
		assert.Contains(t, string(data), "zeî\t1")
		assert.NotContains(t, string(data), "ge\t")
		assert.NotContains(t, string(data), "rriteerd")
	})

	t.Run("extraction is idempotent for a fixed seed", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpus(t, map[string]string{
			"a.xml": "<body>The cat sat. The cat ran.</body>",
			"b.xml": "<body>A dog ran fast.</body>",
			"c.xml": "<body>Geen woorden zonder daden.</body>",
		})

		tokenizer, err := sentences.NewTokenizer()
		require.NoError(t, err)

		run := func(out string) []byte {
			b := &build.Builder{
				Source:     fs.NewWalker(".xml"),
				Extractor:  tei.NewExtractor(tokenizer),
				Writer:     fs.NewWriter(),
				SampleSize: 2,
				Seed:       4,
				OutputPath: out,
			}
			_, err := b.Run(context.Background(), dir, nil)
			require.NoError(t, err)
			data, err := os.ReadFile(out)
			require.NoError(t, err)
			return data
		}

		first := run(filepath.Join(t.TempDir(), "one.txt"))
		second := run(filepath.Join(t.TempDir(), "two.txt"))

		assert.Equal(t, first, second)
	})

	t.Run("skips malformed documents and continues", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpus(t, map[string]string{
			"good.xml": "<body>The cat sat.</body>",
			"bad.xml":  "<TEI>no body marker here</TEI>",
		})
		out := filepath.Join(t.TempDir(), "bow.txt")

		var skipped []string
		progress := func(ev teibow.ProgressEvent) {
			if ev.Type == teibow.ProgressSkipped {
				skipped = append(skipped, ev.Path)
				assert.Equal(t, teibow.EMALFORMED, teibow.ErrorCode(ev.Err))
			}
		}

		b := &build.Builder{
			Source:     fs.NewWalker(".xml"),
			Extractor:  tei.NewExtractor(lineTokenizer()),
			Writer:     fs.NewWriter(),
			Seed:       4,
			OutputPath: out,
		}

		result, err := b.Run(context.Background(), dir, progress)
		require.NoError(t, err)

		assert.Equal(t, 1, result.DocsSkipped)
		require.Len(t, skipped, 1)
		assert.Equal(t, filepath.Join(dir, "bad.xml"), skipped[0])

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "cat\t1")
	})

	t.Run("identical files are counted once", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpus(t, map[string]string{
			"a.xml": "<body>The cat sat.</body>",
			"b.xml": "<body>The cat sat.</body>",
		})
		out := filepath.Join(t.TempDir(), "bow.txt")

		b := &build.Builder{
			Source:     fs.NewWalker(".xml"),
			Extractor:  tei.NewExtractor(lineTokenizer()),
			Writer:     fs.NewWriter(),
			Seed:       4,
			OutputPath: out,
		}

		result, err := b.Run(context.Background(), dir, nil)
		require.NoError(t, err)

		assert.Equal(t, 1, result.Duplicates)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "cat\t1")
	})

	t.Run("sample size bounds documents used", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpus(t, map[string]string{
			"a.xml": "<body>Een twee drie.</body>",
			"b.xml": "<body>Vier vijf zes.</body>",
			"c.xml": "<body>Zeven acht negen.</body>",
		})

		b := &build.Builder{
			Source:     fs.NewWalker(".xml"),
			Extractor:  tei.NewExtractor(lineTokenizer()),
			Writer:     fs.NewWriter(),
			SampleSize: 2,
			Seed:       4,
			OutputPath: filepath.Join(t.TempDir(), "bow.txt"),
		}

		result, err := b.Run(context.Background(), dir, nil)
		require.NoError(t, err)

		assert.Equal(t, 3, result.DocsFound)
		assert.Equal(t, 2, result.DocsUsed)
	})

	t.Run("table length bounds output rows", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpus(t, map[string]string{
			"a.xml": "<body>aap noot mies wim zus jet.</body>",
		})
		out := filepath.Join(t.TempDir(), "bow.txt")

		b := &build.Builder{
			Source:      fs.NewWalker(".xml"),
			Extractor:   tei.NewExtractor(lineTokenizer()),
			Writer:      fs.NewWriter(),
			TableLength: 3,
			Seed:        4,
			OutputPath:  out,
		}

		result, err := b.Run(context.Background(), dir, nil)
		require.NoError(t, err)

		assert.Equal(t, 6, result.UniqueWords)
		assert.Equal(t, 3, result.Written)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), 3)
	})

	t.Run("discovery failure is fatal", func(t *testing.T) {
		t.Parallel()

		b := &build.Builder{
			Source: &mock.CorpusSource{
				DiscoverFn: func(_ context.Context, root string) ([]string, error) {
					return nil, teibow.Errorf(teibow.ENOTFOUND, "corpus root %q: no such directory", root)
				},
			},
			Extractor:  &mock.Extractor{},
			Writer:     &mock.TableWriter{},
			OutputPath: "bow.txt",
		}

		_, err := b.Run(context.Background(), "/nope", nil)

		require.Error(t, err)
		assert.Equal(t, teibow.ENOTFOUND, teibow.ErrorCode(err))
	})

	t.Run("write failure is fatal and surfaces the path", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpus(t, map[string]string{
			"a.xml": "<body>The cat sat.</body>",
		})
		out := filepath.Join(t.TempDir(), "missing", "bow.txt")

		b := &build.Builder{
			Source:     fs.NewWalker(".xml"),
			Extractor:  tei.NewExtractor(lineTokenizer()),
			Writer:     fs.NewWriter(),
			Seed:       4,
			OutputPath: out,
		}

		_, err := b.Run(context.Background(), dir, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), out)
	})

	t.Run("records run history when services are wired", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpus(t, map[string]string{
			"a.xml": "<body>The cat sat.</body>",
		})
		out := filepath.Join(t.TempDir(), "bow.txt")

		var createdRun *teibow.Run
		var createdDocs []*teibow.Document

		runs := &mock.RunService{
			CreateRunFn: func(_ context.Context, run *teibow.Run) error {
				run.ID = "run-123"
				createdRun = run
				return nil
			},
		}
		documents := &mock.DocumentService{
			CreateDocumentFn: func(_ context.Context, doc *teibow.Document) error {
				createdDocs = append(createdDocs, doc)
				return nil
			},
		}

		b := &build.Builder{
			Source:     fs.NewWalker(".xml"),
			Extractor:  tei.NewExtractor(lineTokenizer()),
			Writer:     fs.NewWriter(),
			Runs:       runs,
			Documents:  documents,
			Seed:       4,
			OutputPath: out,
		}

		result, err := b.Run(context.Background(), dir, nil)
		require.NoError(t, err)

		assert.Equal(t, "run-123", result.RunID)
		require.NotNil(t, createdRun)
		assert.Equal(t, dir, createdRun.CorpusPath)
		assert.Equal(t, int64(4), createdRun.Seed)
		assert.Equal(t, 1, createdRun.DocsUsed)
		require.Len(t, createdDocs, 1)
		assert.Equal(t, "run-123", createdDocs[0].RunID)
		assert.Equal(t, filepath.Join(dir, "a.xml"), createdDocs[0].Path)
		assert.NotEmpty(t, createdDocs[0].ContentHash)
	})

	t.Run("persistence failure surfaces after write", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpus(t, map[string]string{
			"a.xml": "<body>The cat sat.</body>",
		})
		out := filepath.Join(t.TempDir(), "bow.txt")

		runs := &mock.RunService{
			CreateRunFn: func(_ context.Context, _ *teibow.Run) error {
				return errors.New("db closed")
			},
		}
		documents := &mock.DocumentService{
			CreateDocumentFn: func(_ context.Context, _ *teibow.Document) error {
				return nil
			},
		}

		b := &build.Builder{
			Source:     fs.NewWalker(".xml"),
			Extractor:  tei.NewExtractor(lineTokenizer()),
			Writer:     fs.NewWriter(),
			Runs:       runs,
			Documents:  documents,
			Seed:       4,
			OutputPath: out,
		}

		_, err := b.Run(context.Background(), dir, nil)

		require.Error(t, err)
		// The table itself was still written.
		_, statErr := os.Stat(out)
		assert.NoError(t, statErr)
	})

	t.Run("reports progress events in order", func(t *testing.T) {
		t.Parallel()

		dir := writeCorpus(t, map[string]string{
			"a.xml": "<body>The cat sat.</body>",
		})

		var types []teibow.ProgressType
		progress := func(ev teibow.ProgressEvent) {
			types = append(types, ev.Type)
		}

		b := &build.Builder{
			Source:     fs.NewWalker(".xml"),
			Extractor:  tei.NewExtractor(lineTokenizer()),
			Writer:     fs.NewWriter(),
			Seed:       4,
			OutputPath: filepath.Join(t.TempDir(), "bow.txt"),
		}

		_, err := b.Run(context.Background(), dir, progress)
		require.NoError(t, err)

		assert.Equal(t, []teibow.ProgressType{
			teibow.ProgressStarted,
			teibow.ProgressCompleted,
			teibow.ProgressFinished,
		}, types)
	})
}
