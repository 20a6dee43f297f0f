package linker

import (
	"path/filepath"

	"github.com/arthur-debert/idot/pkg/config"
	"github.com/arthur-debert/idot/pkg/errors"
	"github.com/arthur-debert/idot/pkg/paths"
	"github.com/arthur-debert/idot/pkg/types"
	"github.com/rs/zerolog"
)

// Linker applies a group configuration to a filesystem
type Linker struct {
	fs     types.FS
	logger zerolog.Logger
}

// Options selects the workspace and configuration of one run
type Options struct {
	// Workspace is the directory link targets are resolved against
	Workspace string

	// Config holds the desired links
	Config *config.GroupConfig

	// Simulate computes and logs every step without touching the filesystem
	Simulate bool
}

// New creates a Linker over fsys logging to logger
func New(fsys types.FS, logger zerolog.Logger) *Linker {
	return &Linker{
		fs:     fsys,
		logger: logger,
	}
}

// prepare validates the command-level preconditions and returns the
// absolute workspace path.
func (l *Linker) prepare(opts Options) (string, error) {
	if opts.Config == nil {
		return "", errors.New(errors.ErrInvalidInput, "no configuration given")
	}
	workspace, err := paths.Absolutize(opts.Workspace)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidPath, "cannot resolve workspace %q", opts.Workspace)
	}
	return workspace, nil
}

// resolve merges the link spec called name with the group defaults and
// makes both of its paths absolute.
func resolve(workspace string, cfg *config.GroupConfig, name string) (types.ResolvedLink, error) {
	spec := cfg.Links[name]
	r := types.ResolvedLink{
		Name:     name,
		Relative: cfg.EffectiveRelative(spec),
		Force:    cfg.EffectiveForce(spec),
	}

	link, err := paths.Absolutize(name)
	if err != nil {
		return r, errors.Wrapf(err, errors.ErrInvalidPath, "cannot resolve link path %q", name).
			WithDetail("link", name)
	}
	r.Link = link

	// Targets never get home expansion: "~notes" is a workspace file
	target := spec.Target
	if !filepath.IsAbs(target) {
		target = filepath.Join(workspace, target)
	}
	abs, err := paths.Absolutize(target)
	if err != nil {
		return r, errors.Wrapf(err, errors.ErrInvalidPath, "cannot resolve target %q", spec.Target).
			WithDetail("link", name)
	}
	r.Target = abs

	return r, nil
}

// linkLogger returns the run logger tagged with one link
func (l *Linker) linkLogger(r types.ResolvedLink, simulate bool) zerolog.Logger {
	return l.logger.With().
		Str("link", r.Link).
		Str("target", r.Target).
		Bool("simulate", simulate).
		Logger()
}

// step records a filesystem mutation on an outcome and performs it unless
// the run is simulated. All writes go through here.
type step struct {
	out      *types.LinkOutcome
	simulate bool
	logger   zerolog.Logger
}

func (s *step) do(description string, fn func() error) error {
	s.out.Steps = append(s.out.Steps, description)
	if s.simulate {
		s.logger.Debug().Str("step", description).Msg("Skipping step in simulate mode")
		return nil
	}
	s.logger.Trace().Str("step", description).Msg("Running step")
	return fn()
}
