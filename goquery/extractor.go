// Package goquery provides a lenient text extractor built on the HTML5
// parser via goquery. It tolerates unclosed tags, stray ampersands, and
// other markup damage common in scanned corpus files that the strict XML
// extractor rejects.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/teibow"
)

// Ensure Extractor implements teibow.Extractor at compile time.
var _ teibow.Extractor = (*Extractor)(nil)

// Extractor recovers narrative text from damaged TEI-XML documents.
type Extractor struct {
	sentences teibow.SentenceTokenizer
}

// NewExtractor creates an Extractor using the given sentence tokenizer.
func NewExtractor(sentences teibow.SentenceTokenizer) *Extractor {
	return &Extractor{sentences: sentences}
}

// Extract parses the document with the lenient HTML5 parser and takes the
// text of the TEI text element, which holds the narrative content. When no
// text element survives parsing, the whole document text is used instead,
// so even badly damaged files still contribute words.
func (e *Extractor) Extract(content string) (*teibow.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, teibow.Errorf(teibow.EMALFORMED, "failed to parse document: %v", err)
	}

	sel := doc.Find("text")
	var text string
	if sel.Length() > 0 {
		text = sel.First().Text()
	} else {
		text = doc.Text()
	}
	text = strings.ToLower(strings.ReplaceAll(text, "\n", " "))

	raw := e.sentences.Tokenize(text)
	cleaned := make([]string, 0, len(raw))
	for _, s := range raw {
		cleaned = append(cleaned, teibow.CleanSentence(s))
	}

	result := &teibow.ExtractResult{Sentences: cleaned}
	if title := doc.Find("teiheader title").First(); title.Length() > 0 {
		result.Title = strings.TrimSpace(title.Text())
	}
	return result, nil
}
