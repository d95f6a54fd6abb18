// Package prober runs dependency checks in order and reports each one.
package prober

import (
	"github.com/vertti/pkgprobe/pkg/check"
	"github.com/vertti/pkgprobe/pkg/output"
)

// Run executes every checker sequentially, prints one line per result
// followed by the closing line, and returns the results in order.
// A failed check never stops the run.
func Run(checkers []check.Checker, p *output.Printer) []check.Result {
	results := make([]check.Result, 0, len(checkers))
	for _, c := range checkers {
		result := c.Run()
		p.PrintResult(result)
		results = append(results, result)
	}
	p.PrintCompleted()
	return results
}
