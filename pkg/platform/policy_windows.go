//go:build windows

package platform

import (
	"github.com/arthur-debert/dotprov/pkg/filesystem"
	"github.com/arthur-debert/dotprov/pkg/paths"
	"golang.org/x/sys/windows"
)

// windowsPolicy leaves permission bits alone and hides dot-named paths
// through the FILE_ATTRIBUTE_HIDDEN attribute.
type windowsPolicy struct {
	fs filesystem.FS
}

func newPolicy(fsys filesystem.FS) Policy {
	return &windowsPolicy{fs: fsys}
}

func (p *windowsPolicy) NormalizeMode(path string, executable bool) (bool, error) {
	return false, nil
}

func (p *windowsPolicy) ApplyHiddenConvention(path string) (bool, error) {
	if !paths.IsHiddenPath(path) {
		return false, nil
	}

	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}

	attrs, err := windows.GetFileAttributes(name)
	if err != nil {
		return false, err
	}
	if attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0 {
		return false, nil
	}

	if err := windows.SetFileAttributes(name, attrs|windows.FILE_ATTRIBUTE_HIDDEN); err != nil {
		return false, err
	}
	return true, nil
}

func (p *windowsPolicy) SystemOwned(path string) (bool, error) {
	return false, nil
}

func (p *windowsPolicy) Listable(path string) bool {
	return true
}
