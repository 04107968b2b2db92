package provision

import (
	stderrors "errors"

	"github.com/arthur-debert/dotprov/pkg/filesystem"
	"github.com/arthur-debert/dotprov/pkg/platform"
)

func newReconciler() *Reconciler {
	fsys := filesystem.NewOS()
	return NewReconciler(fsys, platform.Default(fsys))
}

// hiddenFailPolicy wraps the host policy and fails to set the hidden
// attribute on one path.
type hiddenFailPolicy struct {
	platform.Policy
	failOn string
}

func (p hiddenFailPolicy) ApplyHiddenConvention(path string) (bool, error) {
	if path == p.failOn {
		return false, stderrors.New("attribute denied")
	}
	return p.Policy.ApplyHiddenConvention(path)
}
