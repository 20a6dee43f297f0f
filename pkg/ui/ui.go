// Package ui writes command results for people and for scripts.
//
// Every command returns a result struct from pkg/types; a Renderer turns
// it into colored terminal lines, plain text or JSON. Which one is used
// comes from --format, with auto deciding per output stream.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/idot/pkg/errors"
	"github.com/arthur-debert/idot/pkg/ui/json"
	"github.com/arthur-debert/idot/pkg/ui/terminal"
	"github.com/arthur-debert/idot/pkg/ui/text"
)

// Renderer writes results, errors and messages to one output
type Renderer interface {
	// RenderResult writes a *types.StatusResult, *types.RunResult,
	// *types.InitResult or *types.VersionResult
	RenderResult(result interface{}) error

	RenderError(err error) error

	RenderMessage(msg string) error
}

// NewRenderer returns the renderer for format writing to output. Auto
// inspects output when it is a file and falls back to text otherwise, so
// buffers and pipes never receive escape codes.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = FormatText
		if file, ok := output.(*os.File); ok {
			format = DetectFormat(file)
		}
	}

	switch format {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrUnsupportedFormat, "unknown output format: %v", format)
	}
}
