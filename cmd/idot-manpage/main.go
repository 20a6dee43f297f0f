package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/idot/cmd/idot"
	"github.com/arthur-debert/idot/internal/version"
)

func main() {
	rootCmd := idot.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "IDOT",
		Section: "1",
		Source:  "idot " + version.Version,
		Manual:  "idot manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
