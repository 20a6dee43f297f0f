package types

import (
	"io/fs"
)

// FS is the filesystem interface the reconciler works against.
// Every mutating method is a write site that simulate mode must gate.
type FS interface {
	// Queries
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	Readlink(name string) (string, error)

	// EvalSymlinks returns the path with all symbolic links resolved.
	// The path must exist.
	EvalSymlinks(path string) (string, error)

	// Mutations
	MkdirAll(path string, perm fs.FileMode) error
	Symlink(oldname, newname string) error
	Remove(name string) error
	RemoveAll(path string) error
}
