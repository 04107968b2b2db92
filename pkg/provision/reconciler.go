package provision

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/dotprov/pkg/compare"
	"github.com/arthur-debert/dotprov/pkg/errors"
	"github.com/arthur-debert/dotprov/pkg/filesystem"
	"github.com/arthur-debert/dotprov/pkg/logging"
	"github.com/arthur-debert/dotprov/pkg/paths"
	"github.com/arthur-debert/dotprov/pkg/platform"
	"github.com/arthur-debert/dotprov/pkg/types"
	"github.com/rs/zerolog"
)

const (
	actionCreate = "create"
	actionLink   = "link"

	// intermediate directories, tightened afterwards where required
	dirCreateMode = 0o755
)

// step performs one reconciliation step. changed must be true if anything
// was modified, even when err is also set.
type step func() (changed bool, err error)

// Reconciler brings a single destination path in line with its source
type Reconciler struct {
	fs     filesystem.FS
	policy platform.Policy
	logger zerolog.Logger
}

// NewReconciler creates a Reconciler
func NewReconciler(fsys filesystem.FS, policy platform.Policy) *Reconciler {
	return &Reconciler{
		fs:     fsys,
		policy: policy,
		logger: logging.GetLogger("reconciler"),
	}
}

// ReconcileEntry makes destination mirror source. Directories are created,
// files are symlinked when linkFiles is set and copied otherwise.
func (r *Reconciler) ReconcileEntry(source, destination string, linkFiles bool) types.Result {
	// follows symlinks; an unreadable source is treated as a file
	isDir := false
	if info, err := r.fs.Stat(source); err == nil {
		isDir = info.IsDir()
	}

	action := actionCreate
	if linkFiles && !isDir {
		action = actionLink
	}

	changed, err := run(
		func() (bool, error) { return r.ensureParent(destination) },
		func() (bool, error) {
			switch {
			case isDir:
				return r.ensureDirectory(destination)
			case linkFiles:
				return r.ensureLink(source, destination)
			default:
				return r.ensureCopy(source, destination)
			}
		},
		func() (bool, error) { return r.ensureHidden(destination) },
	)

	return r.finish(action, destination, changed, err)
}

// ReconcileDirectory makes sure destination is a private directory
func (r *Reconciler) ReconcileDirectory(destination string) types.Result {
	changed, err := run(func() (bool, error) { return r.ensureDirectory(destination) })
	return r.finish(actionCreate, destination, changed, err)
}

// run executes steps in order, stopping at the first error
func run(steps ...step) (bool, error) {
	changed := false
	for _, s := range steps {
		c, err := s()
		changed = changed || c
		if err != nil {
			return changed, err
		}
	}
	return changed, nil
}

func (r *Reconciler) finish(action, destination string, changed bool, err error) types.Result {
	result := types.Result{
		Status:      types.StatusSuccess,
		Changed:     changed,
		Description: action + " " + paths.DisplayWithTilde(destination),
	}

	if err != nil {
		result.Status = types.StatusFailed
		result.Output = errors.Diagnostic(err) + "\n"
		r.logger.Warn().
			Err(err).
			Str("destination", destination).
			Bool("changed", changed).
			Msg("Reconcile failed")
		return result
	}

	if changed {
		r.logger.Debug().Str("action", action).Str("destination", destination).Msg("Reconciled")
	} else {
		r.logger.Trace().Str("destination", destination).Msg("Already up to date")
	}
	return result
}

// ensureParent creates the parent of destination and makes it private,
// leaving directories owned by the system account alone.
func (r *Reconciler) ensureParent(destination string) (bool, error) {
	parent := filepath.Dir(destination)
	if parent == destination {
		return false, nil
	}

	changed := false
	if !r.fs.Exists(parent) {
		if err := r.fs.MkdirAll(parent, dirCreateMode); err != nil {
			return changed, errors.Wrapf(err, errors.ErrIO, "failed creating parent directory: %s", parent)
		}
		changed = true
	}

	owned, err := r.policy.SystemOwned(parent)
	if err != nil {
		return changed, errors.Wrapf(err, errors.ErrIO, "failed reading owner of parent: %s", parent)
	}
	if !owned {
		c, err := r.policy.NormalizeMode(parent, true)
		changed = changed || c
		if err != nil {
			return changed, errors.Wrapf(err, errors.ErrIO, "failed changing permissions of parent: %s", parent)
		}
	}

	c, err := r.policy.ApplyHiddenConvention(parent)
	changed = changed || c
	if err != nil {
		return changed, errors.Wrapf(err, errors.ErrIO, "failed changing attributes of parent: %s", parent)
	}

	return changed, nil
}

// ensureDirectory replaces a non-directory at destination with a directory
// and makes it private.
func (r *Reconciler) ensureDirectory(destination string) (bool, error) {
	changed := false

	if info, err := r.fs.Stat(destination); err != nil || !info.IsDir() {
		// lstat so a dangling symlink is cleared too
		if _, err := r.fs.Lstat(destination); err == nil {
			if err := r.fs.Remove(destination); err != nil {
				return changed, errors.Wrapf(err, errors.ErrIO, "failed deleting existing file: %s", destination)
			}
			changed = true
		}

		if err := r.fs.MkdirAll(destination, dirCreateMode); err != nil {
			return changed, errors.Wrapf(err, errors.ErrIO, "failed creating directory: %s", destination)
		}
		changed = true
	}

	c, err := r.policy.NormalizeMode(destination, true)
	changed = changed || c
	if err != nil {
		return changed, errors.Wrapf(err, errors.ErrIO, "failed changing permissions of directory: %s", destination)
	}

	return changed, nil
}

// ensureLink points destination at source unless it already resolves to the
// same file.
func (r *Reconciler) ensureLink(source, destination string) (bool, error) {
	linked, err := compare.Linked(r.fs, destination, source)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrIO, "failed checking link: %s", destination)
	}
	if linked {
		return false, nil
	}

	changed, err := r.clearForLink(destination)
	if err != nil {
		return changed, err
	}

	target, err := filepath.Abs(source)
	if err != nil {
		return changed, errors.Wrapf(err, errors.ErrPath, "failed resolving link target: %s", source)
	}
	if err := r.fs.Symlink(target, destination); err != nil {
		return changed, errors.Wrapf(err, errors.ErrIO, "failed linking file: %s", destination)
	}

	return true, nil
}

// clearForLink removes whatever occupies destination, including dangling
// symlinks.
func (r *Reconciler) clearForLink(destination string) (bool, error) {
	if info, err := r.fs.Stat(destination); err == nil && info.IsDir() {
		if err := r.fs.RemoveAll(destination); err != nil {
			return false, errors.Wrapf(err, errors.ErrIO, "failed deleting existing directory: %s", destination)
		}
		return true, nil
	}

	if _, err := r.fs.Lstat(destination); err == nil {
		if err := r.fs.Remove(destination); err != nil {
			return false, errors.Wrapf(err, errors.ErrIO, "failed deleting existing file: %s", destination)
		}
		return true, nil
	}

	return false, nil
}

// ensureCopy rewrites destination when its content differs from source and
// then applies the private mode matching the source's owner execute bit.
func (r *Reconciler) ensureCopy(source, destination string) (bool, error) {
	matches, err := compare.ContentsMatch(r.fs, source, destination)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrIO, "failed comparing file: %s", destination)
	}

	changed := false
	if !matches {
		c, err := r.clearForCopy(destination)
		changed = c
		if err != nil {
			return changed, err
		}

		if err := r.fs.CopyFile(source, destination); err != nil {
			return changed, errors.Wrapf(err, errors.ErrIO, "failed copying file: %s", destination)
		}
		changed = true
	}

	srcInfo, err := r.fs.Stat(source)
	if err != nil {
		return changed, errors.Wrapf(err, errors.ErrIO, "failed reading source: %s", source)
	}

	c, err := r.policy.NormalizeMode(destination, platform.IsExecutable(srcInfo))
	changed = changed || c
	if err != nil {
		return changed, errors.Wrapf(err, errors.ErrIO, "failed changing permissions of file: %s", destination)
	}

	return changed, nil
}

// clearForCopy removes a directory or symlink at destination. Regular files
// are left for the copy to truncate.
func (r *Reconciler) clearForCopy(destination string) (bool, error) {
	if info, err := r.fs.Stat(destination); err == nil && info.IsDir() {
		if err := r.fs.RemoveAll(destination); err != nil {
			return false, errors.Wrapf(err, errors.ErrIO, "failed deleting existing directory: %s", destination)
		}
		return true, nil
	}

	if info, err := r.fs.Lstat(destination); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		if err := r.fs.Remove(destination); err != nil {
			return false, errors.Wrapf(err, errors.ErrIO, "failed deleting existing symlink: %s", destination)
		}
		return true, nil
	}

	return false, nil
}

func (r *Reconciler) ensureHidden(destination string) (bool, error) {
	changed, err := r.policy.ApplyHiddenConvention(destination)
	if err != nil {
		return changed, errors.Wrapf(err, errors.ErrIO, "failed changing attributes of file: %s", destination)
	}
	return changed, nil
}
