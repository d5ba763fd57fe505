package domain

import (
	"path/filepath"
	"strings"
)

// imageExts is the fixed allow-list of recognized image extensions.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// IsImageFilename reports whether name has a recognized image extension.
// The match is case-insensitive on the extension only.
func IsImageFilename(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return imageExts[ext]
}
