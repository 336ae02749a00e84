package mock

import (
	"context"

	"github.com/fwojciec/teibow"
)

var _ teibow.TableWriter = (*TableWriter)(nil)

// TableWriter is a mock implementation of teibow.TableWriter.
type TableWriter struct {
	WriteTableFn func(ctx context.Context, path string, entries []teibow.Entry) error
}

func (w *TableWriter) WriteTable(ctx context.Context, path string, entries []teibow.Entry) error {
	return w.WriteTableFn(ctx, path, entries)
}
