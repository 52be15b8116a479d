// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"venvkit/internal/testutil"
)

func TestCreateVenvExistingDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateVenv(context.Background(), dir, "")
	if !errors.Is(err, ErrCreationFailed) {
		t.Fatalf("CreateVenv() = %v, want ErrCreationFailed", err)
	}

	var failed *CreationFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("error %T is not a CreationFailedError", err)
	}
	if failed.Reason != "directory already exists" {
		t.Errorf("Reason = %q", failed.Reason)
	}
}

func TestCreateVenvNoInterpreterOnPath(t *testing.T) {
	// An empty PATH guarantees neither python3 nor python can be found.
	restore := testutil.MustSetenv(t, "PATH", t.TempDir())
	defer restore()

	target := filepath.Join(t.TempDir(), "venv")
	_, err := CreateVenv(context.Background(), target, "")
	if !errors.Is(err, ErrCreationFailed) {
		t.Fatalf("CreateVenv() = %v, want ErrCreationFailed", err)
	}
	if !errors.Is(err, ErrPythonNotFound) {
		t.Errorf("CreateVenv() = %v, want ErrPythonNotFound in the chain", err)
	}
}

func TestCreateVenvSubprocessFailure(t *testing.T) {
	target := filepath.Join(t.TempDir(), "venv")

	_, err := CreateVenv(context.Background(), target, filepath.Join(t.TempDir(), "no-such-python"))
	if !errors.Is(err, ErrCreationFailed) {
		t.Fatalf("CreateVenv() = %v, want ErrCreationFailed", err)
	}
}
