package style

import (
	"testing"

	"github.com/arthur-debert/idot/pkg/types"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestStatusLine(t *testing.T) {
	s := Plain()

	tests := []struct {
		name   string
		report types.LinkReport
		want   string
	}{
		{
			name:   "active",
			report: types.LinkReport{Link: "/h/.vimrc", Target: "/ws/vimrc", Status: types.LinkActive},
			want:   "✓ /h/.vimrc -> /ws/vimrc",
		},
		{
			name:   "missing",
			report: types.LinkReport{Link: "/h/.vimrc", Target: "/ws/vimrc", Status: types.LinkInactive, Reason: types.ReasonMissing},
			want:   "✗ /h/.vimrc -> /ws/vimrc (missing)",
		},
		{
			name: "wrong target",
			report: types.LinkReport{Link: "/h/.bashrc", Target: "/ws/bashrc", Status: types.LinkInactive,
				Reason: types.ReasonWrongTarget, Content: "/etc/bashrc"},
			want: "✗ /h/.bashrc -> /ws/bashrc (points to /etc/bashrc)",
		},
		{
			name: "style mismatch",
			report: types.LinkReport{Link: "/h/.vimrc", Target: "/ws/vimrc", Status: types.LinkActive,
				StyleMismatch: true, Relative: true},
			want: "✓ /h/.vimrc -> /ws/vimrc (stored absolute, configured relative)",
		},
		{
			name:   "unresolved falls back to the name",
			report: types.LinkReport{Name: "~nobody/.x", Status: types.LinkInactive, Reason: types.ReasonUnresolved, Error: "boom"},
			want:   "✗ ~nobody/.x ->  (boom)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.StatusLine(tt.report))
		})
	}
}

func TestOutcomeLineAndSummary(t *testing.T) {
	s := Plain()

	res := &types.RunResult{Simulated: true, Outcomes: []types.LinkOutcome{
		{Link: "/h/.vimrc", Content: "../ws/vimrc", Action: types.ActionCreated},
		{Link: "/h/.zshrc", Action: types.ActionFailed, Error: "[LINK_EXISTS] /h/.zshrc already exists"},
		{Link: "/h/.a", Action: types.ActionSkipped},
	}}

	assert.Equal(t, "created /h/.vimrc -> ../ws/vimrc", s.OutcomeLine(res.Outcomes[0]))
	assert.Equal(t, "failed  /h/.zshrc: [LINK_EXISTS] /h/.zshrc already exists", s.OutcomeLine(res.Outcomes[1]))
	assert.Equal(t, "skipped /h/.a", s.OutcomeLine(res.Outcomes[2]))

	assert.Equal(t, "1 created, 1 skipped, 1 failed\nSIMULATE - no changes were made", s.RunSummary(res))
	assert.Equal(t, "no links", s.RunSummary(&types.RunResult{}))
}

func TestStatusSummary(t *testing.T) {
	res := &types.StatusResult{Links: []types.LinkReport{
		{Status: types.LinkActive}, {Status: types.LinkInactive},
	}}
	assert.Equal(t, "1 of 2 links active", Plain().StatusSummary(res))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n\n  b", Indent("a\n\nb", 1))
	assert.Equal(t, "x", Indent("x", 0))
}

func TestActionStyle(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	assert.Equal(t, "created", ActionStyle(types.ActionCreated).Sprint("created"))
	assert.NotNil(t, ActionStyle(types.ActionSkipped))
}
