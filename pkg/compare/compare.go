// Package compare decides whether a destination already matches its source,
// either by file identity (link mode) or by content (copy mode).
package compare

import (
	"bytes"
	"os"

	"github.com/arthur-debert/dotprov/pkg/filesystem"
)

// Linked reports whether destination resolves to the same file as source.
// Both paths are followed through symlinks, so a symlink or a hard link to
// source counts. A missing or dangling destination is not linked.
func Linked(fsys filesystem.FS, destination, source string) (bool, error) {
	if !fsys.Exists(destination) {
		return false, nil
	}

	destInfo, err := fsys.Stat(destination)
	if err != nil {
		return false, err
	}
	srcInfo, err := fsys.Stat(source)
	if err != nil {
		return false, err
	}

	// device and inode on unix, volume serial and file index on windows
	return os.SameFile(destInfo, srcInfo), nil
}

// ContentsMatch reports whether destination holds exactly the bytes of
// source. Both files are read whole; sizes are compared first.
func ContentsMatch(fsys filesystem.FS, source, destination string) (bool, error) {
	if !fsys.Exists(destination) {
		return false, nil
	}

	destInfo, err := fsys.Stat(destination)
	if err != nil {
		return false, err
	}
	if destInfo.IsDir() {
		return false, nil
	}

	srcInfo, err := fsys.Stat(source)
	if err != nil {
		return false, err
	}
	if srcInfo.Size() != destInfo.Size() {
		return false, nil
	}

	srcData, err := fsys.ReadFile(source)
	if err != nil {
		return false, err
	}
	destData, err := fsys.ReadFile(destination)
	if err != nil {
		return false, err
	}

	return bytes.Equal(srcData, destData), nil
}
