package check

// Checker is implemented by all probe types.
// Each check resolves a single dependency and returns a Result
// indicating whether it is available.
//
// Implementations:
//   - pkgcheck.Check: imports a Python package and reads its version
type Checker interface {
	Run() Result
}
