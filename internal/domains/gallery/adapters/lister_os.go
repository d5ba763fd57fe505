package adapters

import (
	"os"
	"sort"

	"github.com/imgreport/imgreport/internal/domains/gallery/domain"
)

type OSLister struct{}

func NewOSLister() OSLister {
	return OSLister{}
}

// ListImages returns the image files directly inside folder, sorted by
// filename. Subdirectories are not entered; non-regular files are skipped.
func (OSLister) ListImages(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		if !domain.IsImageFilename(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}
