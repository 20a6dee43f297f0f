// pkg/commands/commands_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (testutil.Environment)
// PURPOSE: Test the commands from a configuration file on disk

package commands

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/arthur-debert/idot/pkg/config"
	"github.com/arthur-debert/idot/pkg/errors"
	"github.com/arthur-debert/idot/pkg/testutil"
	"github.com/arthur-debert/idot/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vimConfig = `
[links."~/.vimrc"]
target = "vimrc"
`

func setupWorkspace(t *testing.T, cfg string) *testutil.Environment {
	t.Helper()
	env := testutil.NewEnvironment(t)
	env.WriteFile(env.WorkspacePath("idot.toml"), cfg)
	env.WriteFile(env.WorkspacePath("vimrc"), "set nu")
	return env
}

func TestCreateStatusDelete(t *testing.T) {
	env := setupWorkspace(t, vimConfig)

	created, err := Create(CreateOptions{Workspace: env.Workspace})
	require.NoError(t, err)
	require.Len(t, created.Outcomes, 1)
	assert.Equal(t, types.ActionCreated, created.Outcomes[0].Action)

	// relative is the default
	assert.Equal(t, filepath.Join("..", "dotfiles", "vimrc"), env.Readlink(env.HomePath(".vimrc")))

	status, err := Status(StatusOptions{Workspace: env.Workspace})
	require.NoError(t, err)
	assert.Equal(t, env.Workspace, status.Workspace)
	assert.Equal(t, 1, status.Active())

	deleted, err := Delete(DeleteOptions{Workspace: env.Workspace})
	require.NoError(t, err)
	assert.Equal(t, types.ActionDeleted, deleted.Outcomes[0].Action)

	_, err = os.Lstat(env.HomePath(".vimrc"))
	assert.True(t, os.IsNotExist(err))
}

func TestCreateForceFlagOverridesGroupDefault(t *testing.T) {
	env := setupWorkspace(t, `force = false
[links."~/.vimrc"]
target = "vimrc"

[links."~/.gvimrc"]
target = "vimrc"
force = false
`)
	env.WriteFile(env.HomePath(".vimrc"), "old")
	env.WriteFile(env.HomePath(".gvimrc"), "old")

	result, err := Create(CreateOptions{Workspace: env.Workspace, Force: true})
	require.NoError(t, err)

	byName := map[string]types.LinkOutcome{}
	for _, o := range result.Outcomes {
		byName[o.Name] = o
	}
	assert.Equal(t, types.ActionCreated, byName["~/.vimrc"].Action)
	assert.Equal(t, types.ActionFailed, byName["~/.gvimrc"].Action)
	assert.True(t, errors.IsErrorCode(byName["~/.gvimrc"].Err, errors.ErrLinkExists))
}

func TestSimulatedCreateLeavesTreeUntouched(t *testing.T) {
	env := setupWorkspace(t, vimConfig)
	before := env.Snapshot()

	result, err := Create(CreateOptions{Workspace: env.Workspace, Simulate: true})
	require.NoError(t, err)
	assert.True(t, result.Simulated)
	assert.Equal(t, types.ActionCreated, result.Outcomes[0].Action)
	assert.Equal(t, before, env.Snapshot())
}

func TestCommandLevelFailures(t *testing.T) {
	env := testutil.NewEnvironment(t)

	_, err := Status(StatusOptions{Workspace: env.Workspace})
	assert.Equal(t, errors.ErrConfigMissing, errors.GetErrorCode(err))

	_, err = Create(CreateOptions{Workspace: "~idot-no-such-user/dotfiles"})
	assert.Equal(t, errors.ErrInvalidPath, errors.GetErrorCode(err))

	env.WriteFile(env.WorkspacePath("idot.json"), `{"links": {"~/.vimrc": {}}}`)
	_, err = Delete(DeleteOptions{Workspace: env.Workspace})
	assert.Equal(t, errors.ErrConfigInvalid, errors.GetErrorCode(err))
}

func TestWorkspaceRelativeToCwd(t *testing.T) {
	env := setupWorkspace(t, vimConfig)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(env.Workspace))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	status, err := Status(StatusOptions{Workspace: "."})
	require.NoError(t, err)
	assert.Equal(t, env.Workspace, status.Workspace)
}

func TestInit(t *testing.T) {
	env := testutil.NewEnvironment(t)

	result, err := Init(InitOptions{Workspace: env.Workspace, Format: config.FormatYAML})
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.Contains(t, result.Content, "~/.vimrc")
	assert.NoFileExists(t, env.WorkspacePath("idot.yaml"))

	result, err = Init(InitOptions{Workspace: env.Workspace, Format: config.FormatYAML, Write: true})
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.Equal(t, env.WorkspacePath("idot.yaml"), result.Path)

	_, err = Init(InitOptions{Workspace: env.Workspace, Write: true})
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))

	status, err := Status(StatusOptions{Workspace: env.Workspace})
	require.NoError(t, err)
	assert.Len(t, status.Links, 2)
}

func TestSimulatedRunsUseReadOnlyBackend(t *testing.T) {
	env := setupWorkspace(t, vimConfig)
	link := env.HomePath(".vimrc")

	err := fileSystem(nil, true).Symlink(env.WorkspacePath("vimrc"), link)
	assert.True(t, stderrors.Is(err, syscall.EPERM))
	assert.NoFileExists(t, link)

	// A real run gets a writable backend, an injected one is kept
	require.NoError(t, fileSystem(nil, false).Symlink(env.WorkspacePath("vimrc"), link))
	assert.Equal(t, env.FS, fileSystem(env.FS, true))

	// Simulated delete reads the real link through the read-only backend
	result, err := Delete(DeleteOptions{Workspace: env.Workspace, Simulate: true})
	require.NoError(t, err)
	assert.Equal(t, types.ActionDeleted, result.Outcomes[0].Action)
	assert.Equal(t, []string{"remove " + link}, result.Outcomes[0].Steps)
	assert.Equal(t, env.WorkspacePath("vimrc"), env.Readlink(link))
}
