package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/idot/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how link reports and run outcomes are written
type Format int

const (
	FormatAuto     Format = iota // term on a color terminal, text elsewhere
	FormatTerminal               // colored markers and badges
	FormatText                   // one plain line per link
	FormatJSON                   // the result structs, encoded
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

// String returns the --format value naming f
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat reads a --format value. "terminal" and "plain" are accepted
// as spellings of term and text.
func ParseFormat(s string) (Format, error) {
	switch name := strings.ToLower(s); name {
	case "", "auto":
		return FormatAuto, nil
	case "terminal":
		return FormatTerminal, nil
	case "plain":
		return FormatText, nil
	default:
		for f, n := range formatNames {
			if n == name {
				return f, nil
			}
		}
		return FormatAuto, errors.Newf(errors.ErrUnsupportedFormat, "unknown output format: %s", s)
	}
}

// DetectFormat resolves auto for output. NO_COLOR, a pipe or a terminal
// without color all get plain text.
func DetectFormat(output *os.File) Format {
	fd := output.Fd()
	switch {
	case os.Getenv("NO_COLOR") != "":
		return FormatText
	case !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd):
		return FormatText
	case termenv.NewOutput(output).ColorProfile() == termenv.Ascii:
		return FormatText
	}
	return FormatTerminal
}
