package commands

import (
	"github.com/arthur-debert/idot/pkg/config"
	"github.com/arthur-debert/idot/pkg/linker"
	"github.com/arthur-debert/idot/pkg/types"
)

// CreateOptions contains options for the create command
type CreateOptions struct {
	// Workspace is the dotfiles directory holding the configuration
	Workspace string

	// Force overrides the group force default. Links that set their own
	// force flag keep it.
	Force bool

	// Simulate computes and logs every step without touching the filesystem
	Simulate bool

	// FileSystem to use (defaults to OS filesystem)
	FileSystem types.FS
}

// Create establishes the configured links
func Create(opts CreateOptions) (*types.RunResult, error) {
	log := logger("create")
	log.Debug().
		Str("workspace", opts.Workspace).
		Bool("force", opts.Force).
		Bool("simulate", opts.Simulate).
		Msg("Starting create command")

	workspace, cfg, err := loadWorkspace(opts.Workspace, log)
	if err != nil {
		return nil, err
	}
	if opts.Force {
		cfg.Force = config.Bool(true)
	}

	return newLinker(opts.FileSystem, opts.Simulate, log).Create(linker.Options{
		Workspace: workspace,
		Config:    cfg,
		Simulate:  opts.Simulate,
	})
}
