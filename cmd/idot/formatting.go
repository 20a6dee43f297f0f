package idot

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// helpFuncs are the extra functions msgs/usage-template.txt calls
var helpFuncs = template.FuncMap{
	"bold":      formatBold,
	"upper":     strings.ToUpper,
	"boldUpper": func(s string) string { return formatBold(strings.ToUpper(s)) },
}

// formatBold emboldens section headings, but only when help goes to a
// terminal; piped help and the man page stay plain.
func formatBold(s string) string {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func initTemplateFormatting() {
	cobra.AddTemplateFuncs(helpFuncs)
}
