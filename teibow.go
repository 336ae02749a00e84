// Package teibow builds bag-of-words frequency tables from corpora of
// TEI-XML literary documents. It walks a directory of XML files, optionally
// samples a random subset, strips markup to recover sentence text, tokenizes
// into words, counts frequencies, and writes the top-N words with counts to
// a tab-separated file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., sqlite/, etree/, fs/).
package teibow
