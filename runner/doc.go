// Package runner executes external commands behind a mockable interface.
//
// ExecRunner runs real processes through os/exec. MockRunner records calls
// and returns canned responses so packaging steps can be tested without a
// Flutter toolchain.
package runner
