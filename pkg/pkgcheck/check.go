package pkgcheck

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vertti/pkgprobe/pkg/check"
)

// DefaultInterpreter is resolved from PATH, so an activated virtualenv
// is the way to probe a different environment.
const DefaultInterpreter = "python3"

// Check verifies that a Python package can be imported and reads its version.
type Check struct {
	Label   string   // display name, defaults to Module
	Module  string   // module to import, e.g. "sklearn"
	Imports []string // extra modules imported alongside, e.g. "matplotlib.pyplot"
	Symbol  string   // name that must be importable from Module
	Runner  Runner   // injected for testing
}

// Run executes the package check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: c.label(),
	}

	path, err := c.Runner.LookPath(DefaultInterpreter)
	if err != nil {
		return result.Fail(unavailable(c.Module, err.Error()))
	}

	stdout, stderr, err := c.Runner.RunCommandContext(context.Background(), path, c.args()...)

	payload, found := resultLine(stdout)
	if !found {
		reason := lastLine(stderr)
		if reason == "" && err != nil {
			reason = err.Error()
		}
		if reason == "" {
			reason = "probe produced no result"
		}
		return result.Fail(unavailable(c.Module, reason))
	}

	res := gjson.Parse(payload)
	if !res.Get("ok").Bool() {
		return result.Fail(unavailable(c.Module, res.Get("error").String()))
	}

	return result.Pass(res.Get("version").String())
}

func (c *Check) label() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Module
}

func (c *Check) args() []string {
	args := make([]string, 0, 4+len(c.Imports))
	args = append(args, "-c", probeScript, c.Module, c.Symbol)
	return append(args, c.Imports...)
}

// resultLine returns the last stdout line holding a probe result.
// Packages may still write to stdout after it, e.g. from atexit handlers.
func resultLine(stdout string) (string, bool) {
	lines := strings.Split(stdout, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		l := strings.TrimSpace(lines[i])
		if gjson.Valid(l) && gjson.Get(l, "ok").Exists() {
			return l, true
		}
	}
	return "", false
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
