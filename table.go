package teibow

import (
	"context"
	"sort"
	"unicode/utf8"
)

// minWordLen is the exclusive length threshold for counted words: only
// words strictly longer than this are kept.
const minWordLen = 2

// Entry is one (word, count) row of the output table.
type Entry struct {
	Word  string
	Count int
}

// Table is a bag-of-words: a mapping from word to occurrence count.
// Every stored count is >= 1 and every key is longer than two characters.
type Table map[string]int

// Add increments the count for word. Words of length <= 2 are discarded,
// neither counted nor stored. Length is measured in runes, not bytes, so
// accented two-letter words are still excluded.
func (t Table) Add(word string) {
	if utf8.RuneCountInString(word) > minWordLen {
		t[word]++
	}
}

// AddSentence tokenizes a cleaned sentence and counts its words.
// It returns the number of words kept.
func (t Table) AddSentence(sentence string) int {
	kept := 0
	for _, word := range Words(sentence) {
		if utf8.RuneCountInString(word) > minWordLen {
			t[word]++
			kept++
		}
	}
	return kept
}

// Entries returns the table as rows sorted by count descending. Ties are
// broken by word ascending so the order is deterministic and reproducible.
// The result is truncated to limit rows; limit <= 0 or limit exceeding the
// table size means all rows.
func (t Table) Entries(limit int) []Entry {
	entries := make([]Entry, 0, len(t))
	for word, count := range t {
		entries = append(entries, Entry{Word: word, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}
	return entries[:limit]
}

// TableWriter persists a sorted frequency table.
type TableWriter interface {
	// WriteTable writes entries to path as tab-separated "word<TAB>count"
	// lines. The write happens once; there is no partial output.
	WriteTable(ctx context.Context, path string, entries []Entry) error
}
