package main

import (
	"fmt"
	"os"

	"github.com/jonas-elhs/metemplate/internal/cli"
	"github.com/jonas-elhs/metemplate/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := style.NewRenderer(style.DetectFormat(os.Stderr))
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		os.Exit(1)
	}
}
