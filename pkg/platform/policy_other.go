//go:build !unix && !windows

package platform

import (
	"github.com/arthur-debert/dotprov/pkg/filesystem"
)

// noopPolicy serves platforms with neither permission bits nor attributes
type noopPolicy struct{}

func newPolicy(filesystem.FS) Policy {
	return noopPolicy{}
}

func (noopPolicy) NormalizeMode(string, bool) (bool, error) { return false, nil }
func (noopPolicy) ApplyHiddenConvention(string) (bool, error) { return false, nil }
func (noopPolicy) SystemOwned(string) (bool, error) { return false, nil }
func (noopPolicy) Listable(string) bool { return true }
