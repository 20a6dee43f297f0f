package linker

import (
	"github.com/arthur-debert/idot/pkg/errors"
	"github.com/arthur-debert/idot/pkg/logging"
	"github.com/arthur-debert/idot/pkg/paths"
	"github.com/arthur-debert/idot/pkg/types"
)

// Delete removes every active link whose target lies inside the workspace.
// Inactive links are skipped untouched.
func (l *Linker) Delete(opts Options) (*types.RunResult, error) {
	defer logging.LogOperationStart(l.logger, "delete")()

	workspace, err := l.prepare(opts)
	if err != nil {
		return nil, err
	}

	canonicalWorkspace, err := paths.Canonicalize(l.fs, workspace)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidPath, "cannot canonicalize workspace %s", workspace)
	}

	result := &types.RunResult{Workspace: workspace, Simulated: opts.Simulate}
	for _, name := range opts.Config.LinkNames() {
		out := l.deleteOne(workspace, canonicalWorkspace, name, opts)
		result.Outcomes = append(result.Outcomes, out)
	}

	l.logger.Debug().
		Int("deleted", result.Count(types.ActionDeleted)).
		Int("skipped", result.Count(types.ActionSkipped)).
		Int("failed", result.Failed()).
		Msg("Delete finished")
	return result, nil
}

func (l *Linker) deleteOne(workspace, canonicalWorkspace, name string, opts Options) types.LinkOutcome {
	out := types.LinkOutcome{Name: name, Simulated: opts.Simulate}

	r, err := resolve(workspace, opts.Config, name)
	out.Link, out.Target = r.Link, r.Target
	if err != nil {
		l.logger.Error().Err(err).Str("link", name).Msg("Failed to delete link")
		out.Fail(err)
		return out
	}

	logger := l.linkLogger(r, opts.Simulate)
	s := &step{out: &out, simulate: opts.Simulate, logger: logger}

	report := l.linkStatus(r)
	if !report.IsActive() {
		out.Action = types.ActionSkipped
		logger.Debug().Str("reason", string(report.Reason)).Msg("Link is not active, nothing to delete")
		return out
	}

	if !paths.ActuallyExists(l.fs, r.Link) {
		err := errors.Newf(errors.ErrLinkNotFound, "%s not found", r.Link).
			WithDetail("link", r.Link).
			WithDetail("step", "delete")
		logger.Error().Err(err).Msg("Failed to delete link")
		out.Fail(err)
		return out
	}
	if !paths.IsSymbolic(l.fs, r.Link) {
		err := errors.Newf(errors.ErrNotASymlink, "%s is not a symbolic link", r.Link).
			WithDetail("link", r.Link).
			WithDetail("step", "delete")
		logger.Error().Err(err).Msg("Failed to delete link")
		out.Fail(err)
		return out
	}

	content, err := l.fs.Readlink(r.Link)
	if err != nil {
		err := errors.Wrapf(err, errors.ErrSymlinkRead, "failed to read link %s", r.Link).
			WithDetail("link", r.Link).
			WithDetail("step", "delete")
		logger.Error().Err(err).Msg("Failed to delete link")
		out.Fail(err)
		return out
	}
	out.Content = content

	pointsTo := l.resolveContent(r.Link, content)
	canonical, err := paths.CanonicalizeParent(l.fs, pointsTo)
	if err != nil {
		canonical = pointsTo
	}
	if !paths.IsWithin(canonical, canonicalWorkspace) {
		err := errors.Newf(errors.ErrOwnership,
			"%s points to %s, outside the workspace %s", r.Link, pointsTo, canonicalWorkspace).
			WithDetail("link", r.Link).
			WithDetail("points_to", pointsTo).
			WithDetail("step", "delete")
		logger.Error().Err(err).Msg("Failed to delete link")
		out.Fail(err)
		return out
	}

	err = s.do("remove "+r.Link, func() error {
		return l.fs.Remove(r.Link)
	})
	if err != nil {
		err = errors.Wrapf(err, errors.ErrFileRemove, "failed to remove link %s", r.Link).
			WithDetail("link", r.Link).
			WithDetail("step", "delete")
		logger.Error().Err(err).Msg("Failed to delete link")
		out.Fail(err)
		return out
	}

	out.Action = types.ActionDeleted
	logger.Info().Msgf("Deleted link %s", r.Link)
	return out
}
