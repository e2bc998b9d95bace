// Package errutil collects small invariant-assertion helpers shared across
// the module, in the style of a debug-gated panic guard rather than a
// general error-handling framework: recoverable conditions are always
// returned as typed errors by the packages that can fail; this package is
// reserved for the "Unexpected" category of §7 — violations that should be
// unreachable in a well-formed store.
package errutil

import "fmt"

// debug gates the invariant checks in Bug/BugOn/BugOnNotEq. Disabled by
// default so a corrupted-but-tolerable store doesn't crash a caller that
// never asked for strict checking; enable during development.
const debug = false

// First returns the first non-nil error in errs, or nil if all are nil.
func First(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// FatalIf panics if err is non-nil. Reserved for invariants that can never
// fail given a correctly constructed caller (e.g. a fixed-size buffer write
// that was already capacity-checked).
func FatalIf(err error) {
	if err == nil {
		return
	}
	panic(fmt.Sprintf("doquedb: invariant violated: %v", err))
}

// Bug panics with the formatted message when debug checking is enabled.
func Bug(format string, args ...any) {
	if debug {
		panic(fmt.Sprintf(format, args...))
	}
}

// BugOn calls Bug if cond is true and debug checking is enabled.
func BugOn(cond bool, format string, args ...any) {
	if debug && cond {
		Bug(format, args...)
	}
}

// BugOnNotEq calls Bug if a != b and debug checking is enabled.
func BugOnNotEq(a, b any) {
	if debug && a != b {
		Bug("expected %v == %v", a, b)
	}
}
