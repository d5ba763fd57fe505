package adapters

import (
	"io/fs"
	"path/filepath"
	"sort"
)

type OSWalker struct{}

func NewOSWalker() OSWalker {
	return OSWalker{}
}

// ListDirs collects every directory under root, root itself included, and
// returns absolute paths sorted lexicographically by full path string.
// Walk order is not relied on; the listing is sorted after collection so
// sibling/child ordering matches plain string sort.
func (OSWalker) ListDirs(root string) ([]string, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var dirs []string
	err = filepath.WalkDir(rootAbs, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(dirs)
	return dirs, nil
}
