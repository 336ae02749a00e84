package mock

import "github.com/fwojciec/teibow"

var _ teibow.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of teibow.Extractor.
type Extractor struct {
	ExtractFn func(content string) (*teibow.ExtractResult, error)
}

func (e *Extractor) Extract(content string) (*teibow.ExtractResult, error) {
	return e.ExtractFn(content)
}
