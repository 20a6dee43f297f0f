package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/idot/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS on top of an afero.Fs.
// Symlink support comes from afero's optional Symlinker interfaces; backends
// without it report afero.ErrNoSymlink / afero.ErrNoReadlink.
type aferoFS struct {
	fs afero.Fs

	// osBacked marks a backend that reads the real filesystem, whose links
	// are resolved with filepath.EvalSymlinks
	osBacked bool
}

// NewAferoFS wraps fs as a types.FS
func NewAferoFS(fs afero.Fs) types.FS {
	_, osBacked := fs.(*afero.OsFs)
	return &aferoFS{fs: fs, osBacked: osBacked}
}

// NewReadOnlyOS reads the real filesystem and rejects every mutation with
// EPERM. Simulated runs use it so a write can never reach the disk.
func NewReadOnlyOS() types.FS {
	return &aferoFS{fs: afero.NewReadOnlyFs(afero.NewOsFs()), osBacked: true}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) Lstat(name string) (fs.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return a.fs.Stat(name)
}

func (a *aferoFS) Readlink(name string) (string, error) {
	if reader, ok := a.fs.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	return "", &os.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
}

// EvalSymlinks defers to the OS when the backend reads the OS, and
// otherwise treats the backend as link-free.
func (a *aferoFS) EvalSymlinks(path string) (string, error) {
	if a.osBacked {
		return filepath.EvalSymlinks(path)
	}
	if _, err := a.fs.Stat(path); err != nil {
		return "", err
	}
	return filepath.Clean(path), nil
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
