// Package walker enumerates a source tree lazily in a deterministic order.
package walker

import (
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/arthur-debert/dotprov/pkg/errors"
	"github.com/arthur-debert/dotprov/pkg/filesystem"
	"github.com/arthur-debert/dotprov/pkg/logging"
	"github.com/rs/zerolog"
)

// EntryKind classifies a walked path without following symlinks
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
	KindSymlink
)

func (k EntryKind) String() string {
	switch k {
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "file"
	}
}

// Entry is one path produced by a walk. Rel is relative to the walked root
// and is "." for the root itself.
type Entry struct {
	Path string
	Rel  string
	Kind EntryKind
}

// IsRoot reports whether the entry is the walked root
func (e Entry) IsRoot() bool {
	return e.Rel == "."
}

// Walker walks source trees through a filesystem port
type Walker struct {
	fs     filesystem.FS
	logger zerolog.Logger
}

// New creates a Walker
func New(fsys filesystem.FS) *Walker {
	return &Walker{
		fs:     fsys,
		logger: logging.GetLogger("walker"),
	}
}

// Walk yields root and everything below it, depth first, with the entries of
// each directory in ascending name order. A symlinked root is followed; any
// other symlink is yielded but not descended into. The first read error is
// yielded as an ErrWalk error and ends the sequence. Each call to the
// returned sequence starts a fresh traversal.
func (w *Walker) Walk(root string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		info, err := w.fs.Stat(root)
		if err != nil {
			yield(Entry{}, errors.Wrapf(err, errors.ErrWalk, "failed reading %s", root).
				WithDetail("root", root))
			return
		}

		stack := []Entry{{Path: root, Rel: ".", Kind: kindOf(info)}}
		for len(stack) > 0 {
			entry := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(entry, nil) {
				return
			}
			if entry.Kind != KindDir {
				continue
			}

			children, err := w.fs.ReadDir(entry.Path)
			if err != nil {
				yield(Entry{}, errors.Wrapf(err, errors.ErrWalk, "failed reading directory %s", entry.Path).
					WithDetail("root", root))
				return
			}
			w.logger.Trace().Str("dir", entry.Path).Int("entries", len(children)).Msg("Read directory")

			// push in reverse so the smallest name is visited first
			for i := len(children) - 1; i >= 0; i-- {
				name := children[i].Name()
				stack = append(stack, Entry{
					Path: filepath.Join(entry.Path, name),
					Rel:  filepath.Join(entry.Rel, name),
					Kind: kindOf(children[i]),
				})
			}
		}
	}
}

func kindOf(info fs.FileInfo) EntryKind {
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return KindSymlink
	case info.IsDir():
		return KindDir
	default:
		return KindFile
	}
}
