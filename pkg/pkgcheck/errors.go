package pkgcheck

import (
	"errors"
	"regexp"
	"strings"
)

// ErrUnavailable matches every failure to resolve a dependency.
var ErrUnavailable = errors.New("dependency unavailable")

// UnavailableError describes why a module could not be resolved.
// Its message is the reason alone so it can be printed as-is.
type UnavailableError struct {
	Module string
	Reason string
}

func (e *UnavailableError) Error() string {
	return e.Reason
}

// Is reports whether target is ErrUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

var lineBreaks = regexp.MustCompile(`\s*[\r\n]+\s*`)

// unavailable builds the error for module. Multi-line reasons are folded
// onto one line so each dependency prints exactly one line.
func unavailable(module, reason string) *UnavailableError {
	reason = lineBreaks.ReplaceAllString(strings.TrimSpace(reason), " ")
	if reason == "" {
		reason = ErrUnavailable.Error()
	}
	return &UnavailableError{Module: module, Reason: reason}
}
