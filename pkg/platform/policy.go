// Package platform adapts permission and hidden-file conventions to the host
// operating system. The reconciler only talks to Policy; each platform family
// provides one implementation selected at build time.
package platform

import (
	"io/fs"

	"github.com/arthur-debert/dotprov/pkg/filesystem"
)

// Hardwired modes applied to provisioned paths.
const (
	// ModePrivateDir is applied to directories and executable files
	ModePrivateDir fs.FileMode = 0o700

	// ModePrivateFile is applied to non-executable files
	ModePrivateFile fs.FileMode = 0o600

	// ModeOwnerExec is the bit that marks a source file as executable
	ModeOwnerExec fs.FileMode = 0o100
)

// Policy normalizes platform specific attributes of provisioned paths.
// Every mutating method reports whether it changed anything.
type Policy interface {
	// NormalizeMode sets path to ModePrivateDir when executable is true,
	// ModePrivateFile otherwise, if its permission bits differ.
	NormalizeMode(path string, executable bool) (bool, error)

	// ApplyHiddenConvention marks a dot-named path hidden on platforms
	// where hidden is an attribute rather than a naming convention.
	ApplyHiddenConvention(path string) (bool, error)

	// SystemOwned reports whether path belongs to the privileged account.
	SystemOwned(path string) (bool, error)

	// Listable reports whether the current process may list directory path.
	Listable(path string) bool
}

// TargetMode returns the mode NormalizeMode applies
func TargetMode(executable bool) fs.FileMode {
	if executable {
		return ModePrivateDir
	}
	return ModePrivateFile
}

// IsExecutable reports whether info has the owner execute bit
func IsExecutable(info fs.FileInfo) bool {
	return info.Mode().Perm()&ModeOwnerExec != 0
}

// Default returns the policy for the platform this binary was built for
func Default(fsys filesystem.FS) Policy {
	return newPolicy(fsys)
}
