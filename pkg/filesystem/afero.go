package filesystem

import (
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// FS is the filesystem interface required for provisioning
type FS interface {
	// Inspection
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	Exists(name string) bool
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.FileInfo, error)

	// Mutation
	MkdirAll(path string, perm fs.FileMode) error
	Symlink(oldname, newname string) error
	Remove(name string) error
	RemoveAll(path string) error
	Chmod(name string, mode fs.FileMode) error
	CopyFile(src, dst string) error
}

// aferoFS implements FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) FS {
	return &aferoFS{fs: fs}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

// Lstat does not follow a final symlink when the underlying afero.Fs
// supports it. Filesystems without symlinks fall back to Stat.
func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

// Exists follows symlinks, so a dangling link does not exist.
func (a *aferoFS) Exists(name string) bool {
	_, err := a.fs.Stat(name)
	return err == nil
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

// ReadDir returns the entries of a directory sorted by name.
func (a *aferoFS) ReadDir(name string) ([]fs.FileInfo, error) {
	return afero.ReadDir(a.fs, name)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Symlink(oldname, newname string) error {
	if linker, ok := a.fs.(afero.Linker); ok {
		return linker.SymlinkIfPossible(oldname, newname)
	}
	return &os.LinkError{Op: "symlink", Old: oldname, New: newname, Err: afero.ErrNoSymlink}
}

func (a *aferoFS) Remove(name string) error {
	return a.fs.Remove(name)
}

func (a *aferoFS) RemoveAll(path string) error {
	return a.fs.RemoveAll(path)
}

func (a *aferoFS) Chmod(name string, mode fs.FileMode) error {
	return a.fs.Chmod(name, mode)
}

// CopyFile copies the full contents of src to dst, creating or truncating
// dst, and gives dst the permission bits of src.
func (a *aferoFS) CopyFile(src, dst string) error {
	in, err := a.fs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: fs.ErrInvalid}
	}

	out, err := a.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return a.fs.Chmod(dst, info.Mode().Perm())
}
