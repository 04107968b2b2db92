package filesystem

import (
	"github.com/spf13/afero"
)

// NewOS creates a filesystem backed by the host operating system
func NewOS() FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemory creates an in-memory filesystem. It has no symlink support and
// no file identity, so it only suits tests of copy and directory handling.
func NewMemory() FS {
	return NewAferoFS(afero.NewMemMapFs())
}
