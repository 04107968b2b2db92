//go:build unix

package platform

import (
	"github.com/arthur-debert/dotprov/pkg/filesystem"
	"golang.org/x/sys/unix"
)

// unixPolicy normalizes permission bits; hidden files are purely a naming
// convention so there is no attribute to set.
type unixPolicy struct {
	fs filesystem.FS
}

func newPolicy(fsys filesystem.FS) Policy {
	return &unixPolicy{fs: fsys}
}

func (p *unixPolicy) NormalizeMode(path string, executable bool) (bool, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		return false, err
	}

	target := TargetMode(executable)
	if info.Mode().Perm() == target {
		return false, nil
	}

	if err := p.fs.Chmod(path, target); err != nil {
		return false, err
	}
	return true, nil
}

func (p *unixPolicy) ApplyHiddenConvention(path string) (bool, error) {
	return false, nil
}

func (p *unixPolicy) SystemOwned(path string) (bool, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false, err
	}
	return st.Uid == 0, nil
}

func (p *unixPolicy) Listable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
