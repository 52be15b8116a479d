// SPDX-License-Identifier: MPL-2.0

package runtime

type (
	// Result is the outcome of one script execution.
	Result struct {
		// ExitCode is the process exit status.
		ExitCode ExitCode
		// Output is captured stdout (capture mode only).
		Output string
		// ErrOutput is captured stderr (capture mode only).
		ErrOutput string
		// Error is an infrastructure failure (spawn error, missing
		// interpreter), not a non-zero script exit.
		Error error
	}
)

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than infrastructure failures.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}
