package provision

import (
	"path/filepath"

	"github.com/arthur-debert/dotprov/pkg/errors"
	"github.com/arthur-debert/dotprov/pkg/paths"
)

// DestinationFor maps path, found while walking root, onto destination.
// The root itself maps to destination verbatim; anything below it keeps its
// position relative to root.
func DestinationFor(root, path, destination string) (string, error) {
	rel, ok := paths.RelativeTo(root, path)
	if !ok {
		return "", errors.Newf(errors.ErrPath, "%s is not under %s", path, root).
			WithDetail("root", root).
			WithDetail("path", path)
	}
	if rel == "." {
		return destination, nil
	}
	return filepath.Join(destination, rel), nil
}
