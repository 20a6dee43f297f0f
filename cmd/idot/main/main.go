package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/idot/cmd/idot"
	"github.com/arthur-debert/idot/pkg/logging"
	"github.com/arthur-debert/idot/pkg/style"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	rootCmd := idot.NewRootCmd()
	err := rootCmd.Execute()
	_ = logging.CloseLogFile()
	if err != nil {
		styles := style.New(lipgloss.NewRenderer(os.Stderr))
		fmt.Fprintln(os.Stderr, styles.Inactive.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
