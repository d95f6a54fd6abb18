package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertti/pkgprobe/pkg/check"
	"github.com/vertti/pkgprobe/pkg/manifest"
	"github.com/vertti/pkgprobe/pkg/output"
	"github.com/vertti/pkgprobe/pkg/pkgcheck"
	"github.com/vertti/pkgprobe/pkg/prober"
)

// newRunner is replaced in tests.
var newRunner = func() pkgcheck.Runner {
	return &pkgcheck.RealRunner{}
}

// runProbe checks every built-in dependency. Probe failures are only
// printed; the command itself succeeds regardless of how many fail.
func runProbe(cmd *cobra.Command, args []string) error {
	entries, err := manifest.Default()
	if err != nil {
		return fmt.Errorf("failed to load dependency list: %w", err)
	}

	runner := newRunner()
	checkers := make([]check.Checker, 0, len(entries))
	for _, e := range entries {
		checkers = append(checkers, e.Check(runner))
	}

	prober.Run(checkers, printerFor(cmd))
	return nil
}

func printerFor(cmd *cobra.Command) *output.Printer {
	w := cmd.OutOrStdout()
	if w == os.Stdout {
		return output.Stdout()
	}
	return output.NewPrinter(w, false)
}
