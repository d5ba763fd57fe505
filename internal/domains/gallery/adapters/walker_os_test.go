package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSWalker_ListsAllDirsIncludingRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "X", "exp1"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "X", "exp2"), 0o755))
	writeFile(t, filepath.Join(root, "X", "exp1", "img.png"), "x")

	dirs, err := NewOSWalker().ListDirs(root)
	require.NoError(t, err)

	rootAbs, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		rootAbs,
		filepath.Join(rootAbs, "X"),
		filepath.Join(rootAbs, "X", "exp1"),
		filepath.Join(rootAbs, "X", "exp2"),
	}, dirs)
}

func TestOSWalker_SortsByFullPathNotTraversalOrder(t *testing.T) {
	root := t.TempDir()
	// "a-c" sorts between "a" and "a/b" by plain string comparison
	// ('-' < '/'), which differs from depth-first traversal order.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a-c"), 0o755))

	dirs, err := NewOSWalker().ListDirs(root)
	require.NoError(t, err)

	rootAbs, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		rootAbs,
		filepath.Join(rootAbs, "a"),
		filepath.Join(rootAbs, "a-c"),
		filepath.Join(rootAbs, "a", "b"),
	}, dirs)
}

func TestOSWalker_MissingRoot(t *testing.T) {
	_, err := NewOSWalker().ListDirs(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
