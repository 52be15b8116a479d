// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "load configuration"},
			want: "failed to load configuration",
		},
		{
			name: "with resource",
			err:  &ActionableError{Operation: "activate environment", Resource: "proj1/venv"},
			want: "failed to activate environment: proj1/venv",
		},
		{
			name: "with cause",
			err: &ActionableError{
				Operation: "activate environment",
				Resource:  "proj1/venv",
				Cause:     errors.New("directory gone"),
			},
			want: "failed to activate environment: proj1/venv: directory gone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableErrorUnwrap(t *testing.T) {
	sentinel := errors.New("root cause")
	err := NewErrorContext().
		WithOperation("resolve environment").
		Wrap(fmt.Errorf("wrapped: %w", sentinel)).
		BuildError()

	if !errors.Is(err, sentinel) {
		t.Errorf("errors.Is() = false through ActionableError")
	}
}

func TestActionableErrorFormat(t *testing.T) {
	err := NewErrorContext().
		WithOperation("activate environment").
		WithResource("proj1/venv").
		WithSuggestion("run 'venvkit list'").
		WithSuggestion("check the config").
		Wrap(fmt.Errorf("outer: %w", errors.New("inner"))).
		Build()

	concise := err.Format(false)
	if !strings.Contains(concise, "run 'venvkit list'") {
		t.Errorf("Format(false) missing suggestion: %q", concise)
	}
	if strings.Contains(concise, "Error chain") {
		t.Errorf("Format(false) includes the error chain: %q", concise)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") {
		t.Errorf("Format(true) missing error chain: %q", verbose)
	}
	if !strings.Contains(verbose, "inner") {
		t.Errorf("Format(true) missing unwrapped cause: %q", verbose)
	}
}

func TestBuildRequiresOperation(t *testing.T) {
	if err := NewErrorContext().WithResource("x").BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
}

func TestWrapWithOperation(t *testing.T) {
	if WrapWithOperation(nil, "anything") != nil {
		t.Error("WrapWithOperation(nil) != nil")
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "run script")
	if err.Operation != "run script" || !errors.Is(err, cause) {
		t.Errorf("WrapWithOperation() = %+v", err)
	}
}
