package paths

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/idot/pkg/types"
)

// ActuallyExists reports whether there is any entry at path. A symbolic link
// whose target is gone still counts.
func ActuallyExists(fsys types.FS, path string) bool {
	if _, err := fsys.Stat(path); err == nil {
		return true
	}
	_, err := fsys.Readlink(path)
	return err == nil
}

// IsSymbolic reports whether the entry at path is itself a symbolic link.
// A missing entry is not an error, just false.
func IsSymbolic(fsys types.FS, path string) bool {
	info, err := fsys.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// Canonicalize resolves symbolic links in the longest existing prefix of
// path and appends the remaining components unchanged. path must be absolute.
func Canonicalize(fsys types.FS, path string) (string, error) {
	path = filepath.Clean(path)

	cur := path
	var rest []string
	for {
		resolved, err := fsys.EvalSymlinks(cur)
		if err == nil {
			for i := len(rest) - 1; i >= 0; i-- {
				resolved = filepath.Join(resolved, rest[i])
			}
			return resolved, nil
		}
		if !missing(err) {
			return "", err
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return path, nil
		}
		rest = append(rest, filepath.Base(cur))
		cur = parent
	}
}

// CanonicalizeParent canonicalizes the directory part of path and keeps the
// final component as is, so a link is never followed through its own name.
func CanonicalizeParent(fsys types.FS, path string) (string, error) {
	path = filepath.Clean(path)
	dir, err := Canonicalize(fsys, filepath.Dir(path))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filepath.Base(path)), nil
}

// SameLocation reports whether a and b name the same entry, either
// lexically or once the symlinks in their parent directories are resolved.
func SameLocation(fsys types.FS, a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if a == b {
		return true
	}
	ca, err := CanonicalizeParent(fsys, a)
	if err != nil {
		return false
	}
	cb, err := CanonicalizeParent(fsys, b)
	if err != nil {
		return false
	}
	return ca == cb
}

// NearestExisting walks up from path and returns the first ancestor (or path
// itself) that has an entry, following no links in the final component.
func NearestExisting(fsys types.FS, path string) (string, fs.FileInfo, bool) {
	cur := filepath.Clean(path)
	for {
		if info, err := fsys.Lstat(cur); err == nil {
			return cur, info, true
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", nil, false
		}
		cur = parent
	}
}

func missing(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, syscall.ENOTDIR)
}
