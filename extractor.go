package teibow

// ExtractResult holds the text extracted from one TEI-XML document.
type ExtractResult struct {
	// Title is the document title from the TEI header, when the
	// implementation recovers one. May be empty.
	Title string

	// Sentences are cleaned sentences from the document body, in original
	// order. Each sentence contains only lowercase word characters
	// separated by single spaces.
	Sentences []string
}

// Extractor isolates narrative text from raw TEI-XML document content.
// Implementations differ in strictness: the default splits on the literal
// body marker as the original pipeline did, stricter ones parse the XML.
type Extractor interface {
	// Extract processes raw document content and returns cleaned
	// sentences from the body region.
	// Returns EMALFORMED if the body cannot be located.
	Extract(content string) (*ExtractResult, error)
}

// SentenceTokenizer splits running text into sentences.
type SentenceTokenizer interface {
	Tokenize(text string) []string
}
