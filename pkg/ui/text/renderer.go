// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/idot/pkg/style"
	"github.com/arthur-debert/idot/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
	styles style.Styles
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{
		output: output,
		styles: style.Plain(),
	}, nil
}

// RenderResult renders a command result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var err error
	switch v := result.(type) {
	case *types.StatusResult:
		for _, link := range v.Links {
			r.println(r.styles.StatusLine(link))
		}
		r.println(r.styles.StatusSummary(v))
	case *types.RunResult:
		for _, o := range v.Outcomes {
			r.println(r.styles.OutcomeLine(o))
		}
		r.println(r.styles.RunSummary(v))
	case *types.InitResult:
		if v.Written {
			r.println(fmt.Sprintf("Written %s config to %s", v.Format, v.Path))
			break
		}
		_, err = fmt.Fprint(r.output, v.Content)
	case *types.VersionResult:
		r.println(fmt.Sprintf("idot %s\n  commit: %s\n  built:  %s", v.Version, v.Commit, v.BuildDate))
	default:
		_, err = fmt.Fprintf(r.output, "%+v\n", result)
	}
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) println(s string) {
	_, _ = fmt.Fprintln(r.output, s)
}
