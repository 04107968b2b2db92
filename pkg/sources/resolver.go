// Package sources locates a declared source under the configured source
// roots.
package sources

import (
	"path/filepath"

	"github.com/arthur-debert/dotprov/pkg/errors"
	"github.com/arthur-debert/dotprov/pkg/filesystem"
	"github.com/arthur-debert/dotprov/pkg/logging"
	"github.com/arthur-debert/dotprov/pkg/platform"
	"github.com/rs/zerolog"
)

// Resolver finds the existing candidates for a source path
type Resolver struct {
	fs     filesystem.FS
	policy platform.Policy
	logger zerolog.Logger
}

// NewResolver creates a Resolver
func NewResolver(fsys filesystem.FS, policy platform.Policy) *Resolver {
	return &Resolver{
		fs:     fsys,
		policy: policy,
		logger: logging.GetLogger("sources"),
	}
}

// Resolve joins source onto every root and returns the candidates that exist,
// in root order. It fails with ErrNotFound when no candidate exists and with
// ErrNotListable when an existing candidate directory cannot be listed.
func (r *Resolver) Resolve(roots []string, source string) ([]string, error) {
	var found []string
	for _, root := range roots {
		candidate := filepath.Join(root, source)
		if r.fs.Exists(candidate) {
			found = append(found, candidate)
		}
	}

	if len(found) == 0 {
		return nil, errors.Newf(errors.ErrNotFound, "%s: does not exist", source).
			WithDetail("source", source).
			WithDetail("roots", roots)
	}

	for _, candidate := range found {
		info, err := r.fs.Stat(candidate)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "failed reading %s", candidate)
		}
		if info.IsDir() && !r.policy.Listable(candidate) {
			return nil, errors.Newf(errors.ErrNotListable, "%s: is not listable", candidate).
				WithDetail("source", source)
		}
	}

	r.logger.Debug().Str("source", source).Strs("roots", found).Msg("Resolved source")
	return found, nil
}
