package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/teibow"
)

// Ensure LoggingExtractor implements teibow.Extractor.
var _ teibow.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-document debug logging.
type LoggingExtractor struct {
	next   teibow.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next teibow.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor, logging timing and yield.
func (e *LoggingExtractor) Extract(content string) (*teibow.ExtractResult, error) {
	begin := time.Now()
	result, err := e.next.Extract(content)
	if err != nil {
		e.logger.Debug("extraction failed",
			"bytes", len(content),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Debug("extraction",
		"bytes", len(content),
		"sentences", len(result.Sentences),
		"duration", time.Since(begin),
	)
	return result, nil
}
