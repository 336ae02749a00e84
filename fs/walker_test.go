package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/teibow"
	"github.com/fwojciec/teibow/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalker_Discover(t *testing.T) {
	t.Parallel()

	t.Run("finds xml files recursively", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "one.xml"), []byte("<TEI/>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "two.xml"), []byte("<TEI/>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "b", "three.xml"), []byte("<TEI/>"), 0644))

		walker := fs.NewWalker(".xml")
		paths, err := walker.Discover(context.Background(), dir)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			filepath.Join(dir, "one.xml"),
			filepath.Join(dir, "a", "two.xml"),
			filepath.Join(dir, "a", "b", "three.xml"),
		}, paths)
	})

	t.Run("ignores other extensions", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.xml"), []byte("<TEI/>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html/>"), 0644))

		walker := fs.NewWalker(".xml")
		paths, err := walker.Discover(context.Background(), dir)

		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "doc.xml")}, paths)
	})

	t.Run("empty extension defaults to xml", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.xml"), []byte("<TEI/>"), 0644))

		walker := fs.NewWalker("")
		paths, err := walker.Discover(context.Background(), dir)

		require.NoError(t, err)
		assert.Len(t, paths, 1)
	})

	t.Run("missing root returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		walker := fs.NewWalker(".xml")
		_, err := walker.Discover(context.Background(), filepath.Join(t.TempDir(), "nope"))

		require.Error(t, err)
		assert.Equal(t, teibow.ENOTFOUND, teibow.ErrorCode(err))
	})

	t.Run("empty directory yields no paths", func(t *testing.T) {
		t.Parallel()

		walker := fs.NewWalker(".xml")
		paths, err := walker.Discover(context.Background(), t.TempDir())

		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.xml"), []byte("<TEI/>"), 0644))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		walker := fs.NewWalker(".xml")
		_, err := walker.Discover(ctx, dir)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
