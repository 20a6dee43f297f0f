package style

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles of one output, bound to its renderer so
// color detection follows that output rather than stdout.
type Styles struct {
	Title    lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Warning  lipgloss.Style
	Muted    lipgloss.Style
	Path     lipgloss.Style
}

// New builds the styles for r
func New(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(HeadingColor).
			Bold(true),
		Active: r.NewStyle().
			Foreground(ActiveColor).
			Bold(true),
		Inactive: r.NewStyle().
			Foreground(InactiveColor).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(WarningColor),
		Muted: r.NewStyle().
			Foreground(MutedColor),
		Path: r.NewStyle().
			Foreground(PathColor),
	}
}

// Plain returns styles that render no escape sequences
func Plain() Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return New(r)
}

// Indent indents every line of s by level steps of two spaces
func Indent(s string, level int) string {
	prefix := strings.Repeat("  ", level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
