package mock

import (
	"context"

	"github.com/fwojciec/teibow"
)

var _ teibow.CorpusSource = (*CorpusSource)(nil)

// CorpusSource is a mock implementation of teibow.CorpusSource.
type CorpusSource struct {
	DiscoverFn func(ctx context.Context, root string) ([]string, error)
}

func (s *CorpusSource) Discover(ctx context.Context, root string) ([]string, error) {
	return s.DiscoverFn(ctx, root)
}
