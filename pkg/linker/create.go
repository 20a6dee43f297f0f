package linker

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/idot/pkg/errors"
	"github.com/arthur-debert/idot/pkg/logging"
	"github.com/arthur-debert/idot/pkg/paths"
	"github.com/arthur-debert/idot/pkg/types"
)

// Create establishes every configured link. A link that is already active
// is left alone unless its stored form differs from the configured one and
// force is set, in which case it is rewritten.
func (l *Linker) Create(opts Options) (*types.RunResult, error) {
	defer logging.LogOperationStart(l.logger, "create")()

	workspace, err := l.prepare(opts)
	if err != nil {
		return nil, err
	}

	result := &types.RunResult{Workspace: workspace, Simulated: opts.Simulate}
	for _, name := range opts.Config.LinkNames() {
		out := l.createOne(workspace, name, opts)
		result.Outcomes = append(result.Outcomes, out)
	}

	l.logger.Debug().
		Int("created", result.Count(types.ActionCreated)).
		Int("skipped", result.Count(types.ActionSkipped)).
		Int("failed", result.Failed()).
		Msg("Create finished")
	return result, nil
}

func (l *Linker) createOne(workspace, name string, opts Options) types.LinkOutcome {
	out := types.LinkOutcome{Name: name, Simulated: opts.Simulate}

	r, err := resolve(workspace, opts.Config, name)
	out.Link, out.Target = r.Link, r.Target
	if err != nil {
		l.logger.Error().Err(err).Str("link", name).Msg("Failed to create link")
		out.Fail(err)
		return out
	}

	logger := l.linkLogger(r, opts.Simulate)
	s := &step{out: &out, simulate: opts.Simulate, logger: logger}

	report := l.linkStatus(r)
	if report.IsActive() && (!report.StyleMismatch || !r.Force) {
		out.Action = types.ActionSkipped
		out.Content = report.Content
		if report.StyleMismatch {
			logger.Info().Str("content", report.Content).Msg("Link is active with a different style, use force to rewrite it")
		} else {
			logger.Debug().Msg("Link is already active")
		}
		return out
	}

	if err := l.ensureParent(workspace, r, s); err != nil {
		logger.Error().Err(err).Msg("Failed to create link")
		out.Fail(err)
		return out
	}

	content := l.linkContent(r)
	out.Content = content

	if paths.ActuallyExists(l.fs, r.Link) {
		if !r.Force {
			err := errors.Newf(errors.ErrLinkExists, "%s already exists", r.Link).
				WithDetail("link", r.Link).
				WithDetail("step", "create")
			logger.Error().Err(err).Msg("Failed to create link")
			out.Fail(err)
			return out
		}
		if err := l.removeExisting(workspace, r, s); err != nil {
			logger.Error().Err(err).Msg("Failed to create link")
			out.Fail(err)
			return out
		}
	}

	err = s.do(fmt.Sprintf("symlink %s -> %s", r.Link, content), func() error {
		return l.fs.Symlink(content, r.Link)
	})
	if err != nil {
		code := errors.ErrSymlinkCreate
		if stderrors.Is(err, fs.ErrExist) {
			code = errors.ErrLinkExists
		}
		err = errors.Wrapf(err, code, "failed to create link %s", r.Link).
			WithDetail("link", r.Link).
			WithDetail("step", "create")
		logger.Error().Err(err).Msg("Failed to create link")
		out.Fail(err)
		return out
	}

	out.Action = types.ActionCreated
	logger.Info().Str("content", content).Msgf("Created link %s -> %s", r.Link, content)
	return out
}

// ensureParent makes the directory of r.Link exist. The nearest existing
// ancestor must be a directory (or a link to one); anything else is a
// conflict that only force may clear.
func (l *Linker) ensureParent(workspace string, r types.ResolvedLink, s *step) error {
	parent := filepath.Dir(r.Link)

	existing, info, found := paths.NearestExisting(l.fs, parent)
	if found && !l.isDir(existing, info) {
		if !r.Force {
			return errors.Newf(errors.ErrParentPathConflict,
				"%s is in the way of %s and is not a directory", existing, r.Link).
				WithDetail("link", r.Link).
				WithDetail("conflict", existing).
				WithDetail("step", "parent")
		}
		if err := l.checkOverlap(workspace, r, existing); err != nil {
			return err
		}
		err := s.do("remove "+existing, func() error {
			return l.fs.Remove(existing)
		})
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", existing).
				WithDetail("link", r.Link).
				WithDetail("step", "parent")
		}
		s.logger.Info().Str("removed", existing).Msg("Removed file in the way of link parent")
	} else if found && existing == parent {
		return nil
	}

	err := s.do("mkdir "+parent, func() error {
		return l.fs.MkdirAll(parent, 0755)
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", parent).
			WithDetail("link", r.Link).
			WithDetail("step", "parent")
	}
	return nil
}

func (l *Linker) isDir(path string, info fs.FileInfo) bool {
	if info.IsDir() {
		return true
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	followed, err := l.fs.Stat(path)
	return err == nil && followed.IsDir()
}

// linkContent is the text stored in the new link: the absolute target, or
// the target relative to the canonical parent of the link.
func (l *Linker) linkContent(r types.ResolvedLink) string {
	if !r.Relative {
		return r.Target
	}
	parent, err := paths.Canonicalize(l.fs, filepath.Dir(r.Link))
	if err != nil {
		l.logger.Debug().Err(err).Str("link", r.Link).Msg("Cannot canonicalize link parent, using absolute target")
		return r.Target
	}
	rel, ok := paths.RelativeTo(r.Target, parent)
	if !ok {
		l.logger.Debug().Str("link", r.Link).Msg("No relative form for target, using absolute target")
		return r.Target
	}
	return rel
}

// removeExisting clears whatever occupies r.Link
func (l *Linker) removeExisting(workspace string, r types.ResolvedLink, s *step) error {
	if err := l.checkOverlap(workspace, r, r.Link); err != nil {
		return err
	}

	info, err := l.fs.Lstat(r.Link)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", r.Link).
			WithDetail("link", r.Link).
			WithDetail("step", "remove")
	}

	remove := l.fs.Remove
	if info.IsDir() {
		remove = l.fs.RemoveAll
	}
	err = s.do("remove "+r.Link, func() error {
		return remove(r.Link)
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRemove, "failed to remove %s", r.Link).
			WithDetail("link", r.Link).
			WithDetail("step", "remove")
	}
	s.logger.Info().Msgf("Removed existing %s", r.Link)
	return nil
}

// checkOverlap refuses to remove victim when it is the link's own target or
// holds the workspace.
func (l *Linker) checkOverlap(workspace string, r types.ResolvedLink, victim string) error {
	canonicalVictim, err := paths.CanonicalizeParent(l.fs, victim)
	if err != nil {
		canonicalVictim = victim
	}
	canonicalWorkspace, err := paths.Canonicalize(l.fs, workspace)
	if err != nil {
		canonicalWorkspace = workspace
	}

	if paths.SameLocation(l.fs, victim, r.Target) ||
		paths.IsWithin(canonicalWorkspace, canonicalVictim) ||
		paths.IsWithin(workspace, victim) {
		return errors.Newf(errors.ErrLinkOverlap,
			"refusing to remove %s: it holds the target or the workspace", victim).
			WithDetail("link", r.Link).
			WithDetail("victim", victim).
			WithDetail("step", "remove")
	}
	return nil
}
