package check

import "strings"

// Pass sets the result to OK with the given version.
// An empty or whitespace-only version is replaced with Fallback.
func (r *Result) Pass(version string) Result {
	version = strings.TrimSpace(version)
	if version == "" {
		version = Fallback
	}
	r.Status = StatusOK
	r.Version = version
	r.Err = nil
	return *r
}

// Fail sets the result to failed status with the given error.
func (r *Result) Fail(err error) Result {
	r.Status = StatusFail
	r.Version = ""
	r.Err = err
	return *r
}
