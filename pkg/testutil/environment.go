// pkg/testutil/environment.go
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Isolated workspace + home directories for reconciler tests

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/idot/pkg/filesystem"
	"github.com/arthur-debert/idot/pkg/types"
	"github.com/stretchr/testify/require"
)

// Environment is a temp directory holding a workspace and a home directory
type Environment struct {
	Root      string
	Workspace string
	Home      string
	FS        types.FS

	t *testing.T
}

// NewEnvironment creates the directories and points HOME at the new home.
// Root has its symlinks resolved, so paths compare equal to canonical ones.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	env := &Environment{
		Root:      root,
		Workspace: filepath.Join(root, "dotfiles"),
		Home:      filepath.Join(root, "home"),
		FS:        filesystem.NewOS(),
		t:         t,
	}

	require.NoError(t, os.MkdirAll(env.Workspace, 0755))
	require.NoError(t, os.MkdirAll(env.Home, 0755))

	t.Setenv("HOME", env.Home)
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	return env
}

// WorkspacePath joins rel onto the workspace
func (e *Environment) WorkspacePath(rel string) string {
	return filepath.Join(e.Workspace, rel)
}

// HomePath joins rel onto the home directory
func (e *Environment) HomePath(rel string) string {
	return filepath.Join(e.Home, rel)
}

// WriteFile writes content at path, creating parent directories
func (e *Environment) WriteFile(path, content string) string {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Mkdir creates the directory at path
func (e *Environment) Mkdir(path string) string {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(path, 0755))
	return path
}

// Symlink creates a link at path storing content, creating parent directories
func (e *Environment) Symlink(content, path string) string {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.Symlink(content, path))
	return path
}

// Readlink returns the stored content of the link at path
func (e *Environment) Readlink(path string) string {
	e.t.Helper()
	content, err := os.Readlink(path)
	require.NoError(e.t, err)
	return content
}

// Snapshot describes the tree under Root
func (e *Environment) Snapshot() map[string]string {
	e.t.Helper()
	return Snapshot(e.t, e.Root)
}
