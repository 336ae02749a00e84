// Package tei extracts narrative text from TEI-XML documents using
// lightweight string operations: split at the literal body marker, strip
// tag runs, clean per sentence. This mirrors how DBNL-style corpora were
// originally processed and tolerates documents that are not well-formed
// XML, as long as the body marker is present.
package tei

import (
	"regexp"
	"strings"

	"github.com/fwojciec/teibow"
)

// bodyMarker delimits the start of narrative content, after front matter.
const bodyMarker = "<body>"

// tagRe matches a markup tag: "<...>" with no nested "<".
var tagRe = regexp.MustCompile(`<[^<]+>`)

// Ensure Extractor implements teibow.Extractor at compile time.
var _ teibow.Extractor = (*Extractor)(nil)

// Extractor isolates body text by splitting at the literal body marker.
type Extractor struct {
	sentences teibow.SentenceTokenizer
}

// NewExtractor creates an Extractor using the given sentence tokenizer.
func NewExtractor(sentences teibow.SentenceTokenizer) *Extractor {
	return &Extractor{sentences: sentences}
}

// Extract takes everything after the first body marker, removes markup
// tags, lowercases, splits into sentences and cleans each one.
// Returns EMALFORMED if the document has no body marker.
func (e *Extractor) Extract(content string) (*teibow.ExtractResult, error) {
	_, body, found := strings.Cut(content, bodyMarker)
	if !found {
		return nil, teibow.Errorf(teibow.EMALFORMED, "document has no %s marker", bodyMarker)
	}

	body = strings.ReplaceAll(body, "\n", " ")
	text := strings.ToLower(tagRe.ReplaceAllString(body, ""))

	raw := e.sentences.Tokenize(text)
	cleaned := make([]string, 0, len(raw))
	for _, s := range raw {
		cleaned = append(cleaned, teibow.CleanSentence(s))
	}

	return &teibow.ExtractResult{Sentences: cleaned}, nil
}
