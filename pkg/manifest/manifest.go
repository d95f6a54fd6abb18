// Package manifest holds the fixed list of dependencies pkgprobe checks.
//
// The list is compiled into the binary; it is never read from disk at
// runtime. Entries are probed in the order they appear.
package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vertti/pkgprobe/pkg/pkgcheck"
)

//go:embed packages.yaml
var builtin []byte

// Entry describes one dependency.
type Entry struct {
	Label   string   `yaml:"label"`
	Module  string   `yaml:"module"`
	Imports []string `yaml:"imports,omitempty"`
	Symbol  string   `yaml:"symbol,omitempty"`
}

// Check builds the probe for this entry.
func (e Entry) Check(runner pkgcheck.Runner) *pkgcheck.Check {
	return &pkgcheck.Check{
		Label:   e.Label,
		Module:  e.Module,
		Imports: e.Imports,
		Symbol:  e.Symbol,
		Runner:  runner,
	}
}

// Default returns the built-in dependency list.
func Default() ([]Entry, error) {
	return Parse(builtin)
}

// Parse decodes and validates a YAML dependency list.
func Parse(data []byte) ([]Entry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var entries []Entry
	if err := dec.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		if e.Label == "" {
			return nil, fmt.Errorf("manifest entry %d: missing label", i+1)
		}
		if e.Module == "" {
			return nil, fmt.Errorf("manifest entry %d (%s): missing module", i+1, e.Label)
		}
		if seen[e.Label] {
			return nil, fmt.Errorf("manifest entry %d: duplicate label %q", i+1, e.Label)
		}
		seen[e.Label] = true
	}

	return entries, nil
}
