// Package assert checks invariants that only a programming defect can break.
// Checks panic in builds tagged "debug" and are no-ops otherwise.
package assert

import "fmt"

// That panics with the formatted message when cond is false and checks are enabled.
func That(cond bool, format string, args ...any) {
	if !Enabled || cond {
		return
	}
	panic(fmt.Sprintf("invariant violation: "+format, args...))
}
