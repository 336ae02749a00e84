// Package sentences wraps the neurosnap/sentences punkt tokenizer, the Go
// port of the NLTK sentence-boundary tokenizer. The bundled English model
// is general-purpose rather than Dutch-specific; language-aware splitting
// would improve boundary accuracy on historical Dutch text but the counts
// are insensitive to where boundaries fall.
package sentences

import (
	"fmt"

	gosentences "github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/fwojciec/teibow"
)

// Ensure Tokenizer implements teibow.SentenceTokenizer at compile time.
var _ teibow.SentenceTokenizer = (*Tokenizer)(nil)

// Tokenizer splits running text into sentences using a punkt model.
type Tokenizer struct {
	tokenizer *gosentences.DefaultSentenceTokenizer
}

// NewTokenizer creates a Tokenizer with the bundled English punkt model.
func NewTokenizer() (*Tokenizer, error) {
	t, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &Tokenizer{tokenizer: t}, nil
}

// Tokenize splits text into sentences in original order.
func (t *Tokenizer) Tokenize(text string) []string {
	raw := t.tokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		out = append(out, s.Text)
	}
	return out
}
