package commands

import (
	"github.com/arthur-debert/idot/pkg/config"
	"github.com/arthur-debert/idot/pkg/errors"
	"github.com/arthur-debert/idot/pkg/paths"
	"github.com/arthur-debert/idot/pkg/types"
)

// InitOptions holds options for the init command
type InitOptions struct {
	Workspace string
	Format    config.Format
	Write     bool
}

// Init renders the starter configuration, and writes it into the workspace
// when Write is set.
func Init(opts InitOptions) (*types.InitResult, error) {
	log := logger("init")

	if opts.Format == "" {
		opts.Format = config.FormatTOML
	}

	content, err := config.Generate(config.Starter(), opts.Format)
	if err != nil {
		return nil, err
	}

	result := &types.InitResult{
		Format:  string(opts.Format),
		Content: string(content),
	}

	if !opts.Write {
		log.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	workspace, err := paths.Absolutize(opts.Workspace)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPath, "cannot resolve workspace %q", opts.Workspace)
	}

	path, err := config.WriteStarter(workspace, opts.Format)
	if err != nil {
		return nil, err
	}
	result.Path = path
	result.Written = true
	return result, nil
}
