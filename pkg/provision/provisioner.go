package provision

import (
	"github.com/arthur-debert/dotprov/pkg/filesystem"
	"github.com/arthur-debert/dotprov/pkg/logging"
	"github.com/arthur-debert/dotprov/pkg/paths"
	"github.com/arthur-debert/dotprov/pkg/platform"
	"github.com/arthur-debert/dotprov/pkg/sources"
	"github.com/arthur-debert/dotprov/pkg/types"
	"github.com/arthur-debert/dotprov/pkg/walker"
	"github.com/rs/zerolog"
)

// Provisioner processes a list of declarations against a set of source roots
type Provisioner struct {
	resolver   *sources.Resolver
	walker     *walker.Walker
	reconciler *Reconciler
	logger     zerolog.Logger
}

// NewProvisioner wires a Provisioner on top of fsys and policy
func NewProvisioner(fsys filesystem.FS, policy platform.Policy) *Provisioner {
	return &Provisioner{
		resolver:   sources.NewResolver(fsys, policy),
		walker:     walker.New(fsys),
		reconciler: NewReconciler(fsys, policy),
		logger:     logging.GetLogger("provision"),
	}
}

// Run reconciles states in order and hands every result to emit as soon as
// it is known. A files declaration whose source cannot be resolved or walked
// produces one extra failed result describing its destination; results
// already emitted for it stand.
func (p *Provisioner) Run(info types.ProvisionInfo, states []types.State, emit func(types.Result)) {
	done := logging.LogOperationStart(p.logger, "provision")
	defer done()

	for _, state := range states {
		switch state.Declaration {
		case types.DeclarationFiles:
			if err := p.provisionFile(info.Sources, state.File, emit); err != nil {
				p.logger.Warn().Err(err).Str("source", state.File.Source).Msg("Files declaration aborted")
				emit(types.FailedResult(paths.DisplayWithTilde(state.File.Destination), err))
			}
		case types.DeclarationDirectories:
			emit(p.reconciler.ReconcileDirectory(state.Directory))
		default:
			p.logger.Error().Str("declaration", string(state.Declaration)).Msg("Unknown declaration skipped")
		}
	}
}

func (p *Provisioner) provisionFile(roots []string, state *types.FileState, emit func(types.Result)) error {
	resolved, err := p.resolver.Resolve(roots, state.Source)
	if err != nil {
		return err
	}

	// later roots overwrite what earlier roots placed
	for _, root := range resolved {
		for entry, err := range p.walker.Walk(root) {
			if err != nil {
				return err
			}

			destination, err := DestinationFor(root, entry.Path, state.Destination)
			if err != nil {
				return err
			}

			p.logger.Trace().
				Str("source", entry.Path).
				Str("kind", entry.Kind.String()).
				Str("destination", destination).
				Msg("Reconciling entry")
			emit(p.reconciler.ReconcileEntry(entry.Path, destination, state.LinkFiles))
		}
	}

	return nil
}
