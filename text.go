package teibow

import (
	"regexp"
	"strings"
)

var (
	entityRe = regexp.MustCompile(`&(?:nbsp|amp);`)
	// Word characters are Unicode letters, digits and underscore. Go's \W
	// is ASCII-only and would split accented words apart.
	nonWordRe    = regexp.MustCompile(`[^\p{L}\p{N}_]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanSentence normalizes a raw sentence for counting: HTML entity
// residues (&nbsp;, &amp;) become spaces, every non-word character becomes
// a space, and runs of whitespace collapse to a single space.
func CleanSentence(s string) string {
	s = entityRe.ReplaceAllString(s, " ")
	s = nonWordRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Words splits a cleaned sentence into words. Cleaning leaves only word
// characters separated by single spaces, so whitespace splitting is exact.
func Words(sentence string) []string {
	return strings.Fields(sentence)
}
