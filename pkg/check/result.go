package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Fallback is reported as the version of a dependency that resolves
// but does not expose a version identifier.
const Fallback = "Available"

// Result holds the outcome of a single check.
type Result struct {
	Name    string // display label, e.g. "NumPy"
	Status  Status // OK or FAIL
	Version string // resolved version, set when Status is OK
	Err     error  // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Detail returns the text shown after the label: the version on success,
// the error description on failure.
func (r Result) Detail() string {
	if r.OK() {
		if r.Version == "" {
			return Fallback
		}
		return r.Version
	}
	if r.Err == nil {
		return "unknown error"
	}
	return r.Err.Error()
}
