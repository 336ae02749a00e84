package teibow

import (
	"context"
	"math/rand"
)

// CorpusSource enumerates candidate documents under a corpus root.
type CorpusSource interface {
	// Discover recursively collects paths of candidate documents under
	// root, in filesystem-traversal order (not sorted).
	// Returns ENOTFOUND if root does not exist or is unreadable.
	Discover(ctx context.Context, root string) ([]string, error)
}

// Sample returns a random subset of k paths, chosen by shuffling a copy of
// paths with a generator seeded by seed and taking the first k elements.
// If k <= 0 or k exceeds len(paths), the full (shuffled) list is returned.
// The input slice is never modified, and the result is deterministic for a
// fixed seed.
func Sample(paths []string, k int, seed int64) []string {
	if k <= 0 || k > len(paths) {
		k = len(paths)
	}

	shuffled := make([]string, len(paths))
	copy(shuffled, paths)

	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:k]
}
