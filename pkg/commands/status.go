package commands

import (
	"github.com/arthur-debert/idot/pkg/linker"
	"github.com/arthur-debert/idot/pkg/types"
)

// StatusOptions contains options for the status command
type StatusOptions struct {
	// Workspace is the dotfiles directory holding the configuration
	Workspace string

	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS
}

// Status reports whether each configured link is active
func Status(opts StatusOptions) (*types.StatusResult, error) {
	log := logger("status")
	log.Debug().Str("workspace", opts.Workspace).Msg("Starting status command")

	workspace, cfg, err := loadWorkspace(opts.Workspace, log)
	if err != nil {
		return nil, err
	}

	return newLinker(opts.FileSystem, false, log).Status(linker.Options{
		Workspace: workspace,
		Config:    cfg,
	})
}
