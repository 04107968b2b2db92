package paths

import (
	"path/filepath"
	"strings"
)

// IsHiddenPath returns true if the basename of path starts with a dot.
func IsHiddenPath(path string) bool {
	base := filepath.Base(path)
	return len(base) > 1 && base[0] == '.' && base != ".."
}

// RelativeTo returns path relative to root when path lies at or under root.
// The second result is false when path escapes root.
func RelativeTo(root, path string) (string, bool) {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}
