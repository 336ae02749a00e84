package fs

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/teibow"
)

// Ensure Writer implements teibow.TableWriter at compile time.
var _ teibow.TableWriter = (*Writer)(nil)

// Writer writes frequency tables as tab-separated text files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteTable writes entries to path, one "word<TAB>count" line per entry,
// no header. The file content is assembled in memory and written once, so
// a failure leaves no partial output at a pre-existing path untouched.
func (w *Writer) WriteTable(ctx context.Context, path string, entries []teibow.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Word)
		b.WriteByte('\t')
		b.WriteString(strconv.Itoa(e.Count))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write table %q: %w", path, err)
	}
	return nil
}
