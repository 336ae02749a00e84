// Package slog provides logging decorators for teibow interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/teibow"
)

// Ensure LoggingSource implements teibow.CorpusSource.
var _ teibow.CorpusSource = (*LoggingSource)(nil)

// LoggingSource wraps a CorpusSource with discovery logging.
type LoggingSource struct {
	next   teibow.CorpusSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next teibow.CorpusSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Discover delegates to the wrapped source, logging the outcome.
func (s *LoggingSource) Discover(ctx context.Context, root string) ([]string, error) {
	begin := time.Now()
	paths, err := s.next.Discover(ctx, root)
	if err != nil {
		s.logger.Error("corpus discovery failed",
			"root", root,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	s.logger.Info("corpus discovery",
		"root", root,
		"files", len(paths),
		"duration", time.Since(begin),
	)
	return paths, nil
}
