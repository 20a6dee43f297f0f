// Package commands provides high-level command implementations for idot.
//
// This package is the orchestration layer between the CLI and the linker.
// It resolves the workspace, loads its configuration and hands both to the
// linker. Failures here end the command; per-link failures do not.
package commands

import (
	"github.com/arthur-debert/idot/pkg/config"
	"github.com/arthur-debert/idot/pkg/errors"
	"github.com/arthur-debert/idot/pkg/filesystem"
	"github.com/arthur-debert/idot/pkg/linker"
	"github.com/arthur-debert/idot/pkg/logging"
	"github.com/arthur-debert/idot/pkg/paths"
	"github.com/arthur-debert/idot/pkg/types"
	"github.com/rs/zerolog"
)

// loadWorkspace absolutizes workspace and loads its configuration
func loadWorkspace(workspace string, logger zerolog.Logger) (string, *config.GroupConfig, error) {
	abs, err := paths.Absolutize(workspace)
	if err != nil {
		return "", nil, errors.Wrapf(err, errors.ErrInvalidPath, "cannot resolve workspace %q", workspace)
	}

	cfg, path, err := config.Load(abs)
	if err != nil {
		return abs, nil, err
	}

	logger.Debug().
		Str("workspace", abs).
		Str("config", path).
		Int("links", len(cfg.Links)).
		Msg("Workspace loaded")
	return abs, cfg, nil
}

func newLinker(fsys types.FS, simulate bool, logger zerolog.Logger) *linker.Linker {
	return linker.New(fileSystem(fsys, simulate), logger)
}

// fileSystem picks the backend of a run: fsys when given, otherwise the OS,
// read-only when simulating.
func fileSystem(fsys types.FS, simulate bool) types.FS {
	switch {
	case fsys != nil:
		return fsys
	case simulate:
		return filesystem.NewReadOnlyOS()
	default:
		return filesystem.NewOS()
	}
}

func logger(name string) zerolog.Logger {
	return logging.GetLogger("commands." + name)
}
