package mock

import "github.com/fwojciec/teibow"

var _ teibow.SentenceTokenizer = (*SentenceTokenizer)(nil)

// SentenceTokenizer is a mock implementation of teibow.SentenceTokenizer.
type SentenceTokenizer struct {
	TokenizeFn func(text string) []string
}

func (t *SentenceTokenizer) Tokenize(text string) []string {
	return t.TokenizeFn(text)
}
