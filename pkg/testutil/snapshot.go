package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Snapshot walks root without following links and returns one entry per
// path (relative to root): "dir", "file:<content>" or "link:<content>".
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	entries := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			content, err := os.Readlink(path)
			if err != nil {
				return err
			}
			entries[rel] = "link:" + content
		case d.IsDir():
			entries[rel] = "dir"
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			entries[rel] = "file:" + string(data)
		}
		return nil
	})
	require.NoError(t, err)

	return entries
}
