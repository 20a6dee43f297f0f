// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/idot/pkg/style"
	"github.com/arthur-debert/idot/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Renderer provides colored output for a terminal
type Renderer struct {
	output io.Writer
	styles style.Styles
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output: w,
		styles: style.New(lipgloss.NewRenderer(w)),
	}, nil
}

// RenderResult renders a command result
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.StatusResult:
		r.println(r.styles.Title.Render("Links of " + v.Workspace))
		for _, link := range v.Links {
			r.println(style.Indent(r.styles.StatusLine(link), 1))
		}
		r.println(r.styles.StatusSummary(v))
	case *types.RunResult:
		r.println(runBadge(v) + " " + r.styles.Title.Render(v.Workspace))
		for _, o := range v.Outcomes {
			r.println(r.styles.OutcomeLine(o))
		}
		r.println(r.styles.RunSummary(v))
	case *types.InitResult:
		if v.Written {
			pterm.Success.WithWriter(r.output).Printfln("Written %s config to %s", v.Format, v.Path)
			return nil
		}
		_, err := fmt.Fprint(r.output, v.Content)
		return err
	case *types.VersionResult:
		r.println(fmt.Sprintf("%s %s", pterm.Bold.Sprint("idot"), v.Version))
		r.println(r.styles.Muted.Render(fmt.Sprintf("  commit: %s\n  built:  %s", v.Commit, v.BuildDate)))
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
	return nil
}

// RenderError renders an error with the pterm error prefix
func (r *Renderer) RenderError(err error) error {
	pterm.Error.WithWriter(r.output).Println(err.Error())
	return nil
}

// RenderMessage renders a message with the pterm info prefix
func (r *Renderer) RenderMessage(msg string) error {
	pterm.Info.WithWriter(r.output).Println(msg)
	return nil
}

// runBadge sums up a run: FAILED if any link failed, OK otherwise
func runBadge(res *types.RunResult) string {
	if res.Failed() > 0 {
		return style.ActionStyle(types.ActionFailed).Sprint(" FAILED ")
	}
	return style.ActionStyle(types.ActionCreated).Sprint(" OK ")
}

func (r *Renderer) println(s string) {
	_, _ = fmt.Fprintln(r.output, s)
}
