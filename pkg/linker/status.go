package linker

import (
	"path/filepath"

	"github.com/arthur-debert/idot/pkg/logging"
	"github.com/arthur-debert/idot/pkg/paths"
	"github.com/arthur-debert/idot/pkg/types"
)

// Status classifies every configured link. It never writes to the
// filesystem, and a link whose paths cannot be resolved is reported as
// unresolved rather than failing the run.
func (l *Linker) Status(opts Options) (*types.StatusResult, error) {
	defer logging.LogOperationStart(l.logger, "status")()

	workspace, err := l.prepare(opts)
	if err != nil {
		return nil, err
	}

	result := &types.StatusResult{Workspace: workspace}
	for _, name := range opts.Config.LinkNames() {
		r, err := resolve(workspace, opts.Config, name)
		if err != nil {
			l.logger.Warn().Err(err).Str("link", name).Msg("Cannot resolve link, skipping")
			result.Links = append(result.Links, types.LinkReport{
				Name:   name,
				Link:   r.Link,
				Target: r.Target,
				Status: types.LinkInactive,
				Reason: types.ReasonUnresolved,
				Error:  err.Error(),
			})
			continue
		}

		report := l.linkStatus(r)
		logger := l.linkLogger(r, false)
		if report.IsActive() {
			logger.Debug().Msg("Link is active")
		} else {
			logger.Debug().Str("reason", string(report.Reason)).Msg("Link is inactive")
		}
		result.Links = append(result.Links, report)
	}

	return result, nil
}

// linkStatus compares the entry at r.Link with r.Target. The stored form of
// the link (relative or absolute) does not affect the result.
func (l *Linker) linkStatus(r types.ResolvedLink) types.LinkReport {
	report := types.LinkReport{
		Name:     r.Name,
		Link:     r.Link,
		Target:   r.Target,
		Status:   types.LinkInactive,
		Relative: r.Relative,
	}

	if !paths.ActuallyExists(l.fs, r.Link) {
		report.Reason = types.ReasonMissing
		return report
	}
	if !paths.IsSymbolic(l.fs, r.Link) {
		report.Reason = types.ReasonNotSymlink
		return report
	}

	content, err := l.fs.Readlink(r.Link)
	if err != nil {
		report.Reason = types.ReasonUnresolved
		report.Error = err.Error()
		return report
	}
	report.Content = content

	if !paths.SameLocation(l.fs, l.resolveContent(r.Link, content), r.Target) {
		report.Reason = types.ReasonWrongTarget
		return report
	}

	report.Status = types.LinkActive
	if filepath.IsAbs(content) == r.Relative {
		report.StyleMismatch = true
		logger := l.linkLogger(r, false)
		logger.Debug().
			Str("content", content).
			Bool("relative", r.Relative).
			Msg("Link is active but needs update to match its configured style")
	}
	return report
}

// resolveContent turns stored link content into an absolute path. Relative
// content is joined to the canonical parent of the link, which is where the
// kernel resolves it from.
func (l *Linker) resolveContent(link, content string) string {
	if filepath.IsAbs(content) {
		return filepath.Clean(content)
	}
	parent, err := paths.Canonicalize(l.fs, filepath.Dir(link))
	if err != nil {
		return paths.ResolveLinkContent(link, content)
	}
	return filepath.Join(parent, content)
}
