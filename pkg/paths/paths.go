package paths

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/idot/pkg/errors"
)

// GetHomeDirectory returns the invoking user's home directory.
// It tries os.UserHomeDir first and falls back to the user database.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	current, lookupErr := user.Current()
	if lookupErr == nil && current.HomeDir != "" {
		return current.HomeDir, nil
	}

	return "", errors.New(errors.ErrInvalidPath, "unable to determine home directory")
}

// ExpandHome expands a leading ~ or ~user. Other paths are returned as is.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	name, rest, _ := strings.Cut(path[1:], string(filepath.Separator))

	var home string
	if name == "" {
		h, err := GetHomeDirectory()
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidPath, "cannot expand %s", path)
		}
		home = h
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidPath, "cannot expand %s", path)
		}
		home = u.HomeDir
	}

	return filepath.Join(home, rest), nil
}

// Absolutize expands the home marker and returns an absolute, clean path.
// The path does not need to exist.
func Absolutize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidPath, "empty path")
	}

	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidPath, "failed to get absolute path for %s", path)
	}
	return abs, nil
}

// RelativeTo returns path expressed relative to base. Both must be absolute.
// The second result is false when no relative form exists.
func RelativeTo(path, base string) (string, bool) {
	if !filepath.IsAbs(path) || !filepath.IsAbs(base) {
		return "", false
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", false
	}
	return rel, true
}

// IsWithin reports whether path equals root or lies below it, comparing
// whole components.
func IsWithin(path, root string) bool {
	rel, ok := RelativeTo(filepath.Clean(path), filepath.Clean(root))
	if !ok {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ResolveLinkContent turns the stored content of the link at linkPath into
// an absolute path. Relative content is joined to the link's parent.
func ResolveLinkContent(linkPath, content string) string {
	if filepath.IsAbs(content) {
		return filepath.Clean(content)
	}
	return filepath.Join(filepath.Dir(linkPath), content)
}
