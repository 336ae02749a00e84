// Package fs provides filesystem implementations: corpus discovery and
// frequency-table output.
package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/teibow"
)

// Ensure Walker implements teibow.CorpusSource at compile time.
var _ teibow.CorpusSource = (*Walker)(nil)

// Walker discovers corpus documents by recursively walking a directory.
type Walker struct {
	ext string
}

// NewWalker creates a Walker collecting files with the given extension.
// An empty extension defaults to ".xml".
func NewWalker(ext string) *Walker {
	if ext == "" {
		ext = ".xml"
	}
	return &Walker{ext: ext}
}

// Discover recursively collects files under root whose name ends with the
// configured extension, in traversal order. Unreadable subdirectories are
// skipped; an unusable root returns ENOTFOUND.
func (w *Walker) Discover(ctx context.Context, root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, teibow.Errorf(teibow.ENOTFOUND, "corpus root %q: %v", root, err)
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return teibow.Errorf(teibow.ENOTFOUND, "corpus root %q: %v", root, err)
			}
			// Unreadable entries below the root are skipped.
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), w.ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
