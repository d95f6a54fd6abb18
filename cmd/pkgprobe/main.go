package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "pkgprobe",
	Short:   "Verify that required Python packages are importable",
	Long:    "pkgprobe imports a fixed list of Python packages and reports the version of each one, or why it could not be loaded.",
	Version: Version,
	RunE:    runProbe,
}
