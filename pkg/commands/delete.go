package commands

import (
	"github.com/arthur-debert/idot/pkg/linker"
	"github.com/arthur-debert/idot/pkg/types"
)

// DeleteOptions contains options for the delete command
type DeleteOptions struct {
	// Workspace is the dotfiles directory holding the configuration
	Workspace string

	// Simulate computes and logs every step without touching the filesystem
	Simulate bool

	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS
}

// Delete removes the active links owned by the workspace
func Delete(opts DeleteOptions) (*types.RunResult, error) {
	log := logger("delete")
	log.Debug().
		Str("workspace", opts.Workspace).
		Bool("simulate", opts.Simulate).
		Msg("Starting delete command")

	workspace, cfg, err := loadWorkspace(opts.Workspace, log)
	if err != nil {
		return nil, err
	}

	return newLinker(opts.FileSystem, opts.Simulate, log).Delete(linker.Options{
		Workspace: workspace,
		Config:    cfg,
		Simulate:  opts.Simulate,
	})
}
