package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/jonas-elhs/metemplate/internal/cli"
	"github.com/jonas-elhs/metemplate/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "METEMPLATE",
		Section: "1",
		Source:  "metemplate " + version.Version,
		Manual:  "metemplate manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
