package paths

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/imgreport/imgreport/internal/platform/errors"
)

// ToPosixRel returns a clean, POSIX-style relative path from base to target.
// It is intended to keep generated links stable across OSes.
func ToPosixRel(baseDir string, targetPath string) (string, error) {
	if strings.TrimSpace(baseDir) == "" {
		return "", errors.NewInternal("baseDir is empty", nil)
	}
	if strings.TrimSpace(targetPath) == "" {
		return "", errors.NewInternal("targetPath is empty", nil)
	}

	rel, err := filepath.Rel(baseDir, targetPath)
	if err != nil {
		return "", errors.NewInternal("failed to compute relative path", err)
	}

	rel = filepath.Clean(rel)
	rel = filepath.ToSlash(rel)
	rel = strings.TrimPrefix(rel, "./")

	return rel, nil
}

// URLPath percent-encodes each part as a URL path segment and joins them
// with "/". A literal "/" inside a single part is encoded (%2F); separators
// only ever come from the join.
func URLPath(parts ...string) string {
	encoded := make([]string, 0, len(parts))
	for _, p := range parts {
		encoded = append(encoded, escapeSegment(p))
	}
	return strings.Join(encoded, "/")
}

// escapeSegment encodes everything outside the unreserved set, including
// "&", "+" and "/". url.PathEscape leaves RFC 3986 sub-delims alone, which
// is too loose for filenames embedded in href attributes, so we start from
// QueryEscape and restore the space encoding.
func escapeSegment(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
