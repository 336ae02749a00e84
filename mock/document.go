package mock

import (
	"context"

	"github.com/fwojciec/teibow"
)

var _ teibow.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of teibow.DocumentService.
type DocumentService struct {
	CreateDocumentFn     func(ctx context.Context, doc *teibow.Document) error
	FindDocumentsByRunFn func(ctx context.Context, runID string) ([]*teibow.Document, error)
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *teibow.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentsByRun(ctx context.Context, runID string) ([]*teibow.Document, error) {
	return s.FindDocumentsByRunFn(ctx, runID)
}
