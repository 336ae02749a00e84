// Package etree provides a strict, XML-aware text extractor built on
// beevik/etree. Unlike the default marker-splitting extractor it rejects
// documents that are not well-formed XML, and it recovers the document
// title from the TEI header.
package etree

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/teibow"
)

// Ensure Extractor implements teibow.Extractor at compile time.
var _ teibow.Extractor = (*Extractor)(nil)

// Extractor parses TEI-XML and extracts text from the body element.
type Extractor struct {
	sentences teibow.SentenceTokenizer
}

// NewExtractor creates an Extractor using the given sentence tokenizer.
func NewExtractor(sentences teibow.SentenceTokenizer) *Extractor {
	return &Extractor{sentences: sentences}
}

// Extract parses the document, gathers all character data under the body
// element, lowercases it, and splits it into cleaned sentences.
// Returns EMALFORMED if the XML cannot be parsed or has no body element.
func (e *Extractor) Extract(content string) (*teibow.ExtractResult, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(content); err != nil {
		return nil, teibow.Errorf(teibow.EMALFORMED, "document is not well-formed XML: %v", err)
	}

	body := doc.FindElement("//body")
	if body == nil {
		return nil, teibow.Errorf(teibow.EMALFORMED, "document has no body element")
	}

	var b strings.Builder
	collectText(body, &b)
	text := strings.ToLower(b.String())

	raw := e.sentences.Tokenize(text)
	cleaned := make([]string, 0, len(raw))
	for _, s := range raw {
		cleaned = append(cleaned, teibow.CleanSentence(s))
	}

	result := &teibow.ExtractResult{Sentences: cleaned}
	if title := doc.FindElement("//teiHeader//title"); title != nil {
		result.Title = strings.TrimSpace(title.Text())
	}
	return result, nil
}

// collectText appends all character data under el in document order,
// separating adjacent nodes with spaces so element boundaries never glue
// words together.
func collectText(el *etree.Element, b *strings.Builder) {
	for _, child := range el.Child {
		switch c := child.(type) {
		case *etree.CharData:
			b.WriteString(c.Data)
			b.WriteByte(' ')
		case *etree.Element:
			collectText(c, b)
		}
	}
}
