// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"errors"
	"fmt"
)

var (
	// ErrEnvironmentNotFound is the sentinel wrapped by EnvironmentNotFoundError.
	ErrEnvironmentNotFound = errors.New("environment not found")
	// ErrInterpreterMissing is the sentinel wrapped by InterpreterMissingError.
	ErrInterpreterMissing = errors.New("interpreter missing")
	// ErrNoActiveEnvironment is returned by Deactivate when nothing is active.
	ErrNoActiveEnvironment = errors.New("no active environment")
	// ErrCreationFailed is the sentinel wrapped by CreationFailedError.
	ErrCreationFailed = errors.New("environment creation failed")
	// ErrPythonNotFound means no base interpreter was found on PATH.
	ErrPythonNotFound = errors.New("no python interpreter found on PATH")
)

type (
	// EnvironmentNotFoundError is returned when an environment cannot be
	// located after a cache miss and a full constrained search. The most
	// likely cause is that the directory was moved or deleted after
	// discovery.
	EnvironmentNotFoundError struct {
		// ID is the identity key of the environment that was searched for.
		ID string
		// LastKnownPath is the stale cached path, if any.
		LastKnownPath string
	}

	// InterpreterMissingError is returned when an environment directory
	// exists but lacks the expected Python executable.
	InterpreterMissingError struct {
		// ID is the identity key of the environment.
		ID string
		// WantPath is the interpreter path that was expected to exist.
		WantPath string
	}

	// CreationFailedError is returned when creating a new environment
	// fails. The filesystem is left as the creation subprocess left it;
	// partially created directories are not cleaned up.
	CreationFailedError struct {
		// Dir is the target environment directory.
		Dir string
		// Reason describes the failure cause.
		Reason string
		// Output is the captured subprocess output, if any.
		Output string
		// Cause is an optional sentinel identifying the failure class
		// (e.g. ErrPythonNotFound).
		Cause error
	}
)

// Error implements the error interface.
func (e *EnvironmentNotFoundError) Error() string {
	if e.LastKnownPath != "" {
		return fmt.Sprintf("environment %q not found (last known path %s; the directory was likely moved or deleted)", e.ID, e.LastKnownPath)
	}
	return fmt.Sprintf("environment %q not found in any configured search path", e.ID)
}

// Unwrap returns ErrEnvironmentNotFound for errors.Is compatibility.
func (e *EnvironmentNotFoundError) Unwrap() error { return ErrEnvironmentNotFound }

// Error implements the error interface.
func (e *InterpreterMissingError) Error() string {
	return fmt.Sprintf("environment %q has no Python interpreter at %s", e.ID, e.WantPath)
}

// Unwrap returns ErrInterpreterMissing for errors.Is compatibility.
func (e *InterpreterMissingError) Unwrap() error { return ErrInterpreterMissing }

// Error implements the error interface.
func (e *CreationFailedError) Error() string {
	msg := fmt.Sprintf("failed to create environment at %s: %s", e.Dir, e.Reason)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

// Unwrap returns ErrCreationFailed, plus the specific cause when one is
// recorded, for errors.Is compatibility.
func (e *CreationFailedError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrCreationFailed, e.Cause}
	}
	return []error{ErrCreationFailed}
}
