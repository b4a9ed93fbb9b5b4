//go:build debug

package assert

// Enabled reports whether invariant checks panic.
const Enabled = true
