package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/idot/pkg/types"
)

// Markers shown before each link
const (
	ActiveMarker   = "✓"
	InactiveMarker = "✗"
)

// StatusLine renders one link report: the link path, styled by status, and
// the desired target.
func (s Styles) StatusLine(r types.LinkReport) string {
	marker, linkStyle := ActiveMarker, s.Active
	if !r.IsActive() {
		marker, linkStyle = InactiveMarker, s.Inactive
	}

	link := r.Link
	if link == "" {
		link = r.Name
	}

	line := fmt.Sprintf("%s %s -> %s",
		linkStyle.Render(marker),
		linkStyle.Render(link),
		s.Path.Render(r.Target))

	if note := reportNote(r); note != "" {
		line += " " + s.Muted.Render("("+note+")")
	}
	return line
}

func reportNote(r types.LinkReport) string {
	switch {
	case r.IsActive() && r.StyleMismatch:
		if r.Relative {
			return "stored absolute, configured relative"
		}
		return "stored relative, configured absolute"
	case r.Reason == types.ReasonWrongTarget:
		return "points to " + r.Content
	case r.Reason == types.ReasonUnresolved && r.Error != "":
		return r.Error
	case r.Reason != types.ReasonNone:
		return string(r.Reason)
	}
	return ""
}

// StatusSummary renders the closing line of a status report
func (s Styles) StatusSummary(res *types.StatusResult) string {
	return s.Muted.Render(fmt.Sprintf("%d of %d links active", res.Active(), len(res.Links)))
}

// OutcomeLine renders what a create or delete run did to one link
func (s Styles) OutcomeLine(o types.LinkOutcome) string {
	badge := fmt.Sprintf("%-7s", o.Action)
	switch o.Action {
	case types.ActionCreated, types.ActionDeleted:
		badge = s.Active.Render(badge)
	case types.ActionFailed:
		badge = s.Inactive.Render(badge)
	default:
		badge = s.Muted.Render(badge)
	}

	link := o.Link
	if link == "" {
		link = o.Name
	}

	line := badge + " " + link
	switch o.Action {
	case types.ActionCreated:
		line += " -> " + s.Path.Render(o.Content)
	case types.ActionFailed:
		line += ": " + s.Warning.Render(o.Error)
	}
	return line
}

// RunSummary renders the closing line of a create or delete run
func (s Styles) RunSummary(res *types.RunResult) string {
	var parts []string
	for _, action := range []types.Action{types.ActionCreated, types.ActionDeleted, types.ActionSkipped, types.ActionFailed} {
		if n := res.Count(action); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, action))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "no links")
	}

	summary := s.Muted.Render(strings.Join(parts, ", "))
	if res.Simulated {
		summary += "\n" + s.Warning.Render("SIMULATE - no changes were made")
	}
	return summary
}
