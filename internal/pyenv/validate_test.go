// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"path/filepath"
	"testing"

	"venvkit/internal/testutil"
)

func TestIsVenvDir(t *testing.T) {
	valid := filepath.Join(t.TempDir(), "venv")
	testutil.VenvLayout(t, valid)

	if !IsVenvDir(valid) {
		t.Errorf("IsVenvDir(%q) = false, want true", valid)
	}
	if IsVenvDir(t.TempDir()) {
		t.Error("IsVenvDir() = true for an empty directory")
	}
	if IsVenvDir(filepath.Join(t.TempDir(), "missing")) {
		t.Error("IsVenvDir() = true for a missing directory")
	}
}

func TestIsCondaEnvDir(t *testing.T) {
	valid := t.TempDir()
	testutil.MustMkdirAll(t, filepath.Join(valid, "bin"))

	if !IsCondaEnvDir(valid) {
		t.Errorf("IsCondaEnvDir(%q) = false, want true", valid)
	}
	if IsCondaEnvDir(t.TempDir()) {
		t.Error("IsCondaEnvDir() = true for an empty directory")
	}

	// A file where the executables directory should be does not count.
	fileNotDir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(fileNotDir, "bin"), "")
	if IsCondaEnvDir(fileNotDir) {
		t.Error("IsCondaEnvDir() = true when bin is a file")
	}
}

func TestInterpreterPathInsideBinDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "venv")
	testutil.VenvLayout(t, dir)

	interp := InterpreterPath(KindVenv, dir)
	if !fileExists(interp) {
		t.Errorf("InterpreterPath(%q) = %q, which does not exist in a valid layout", dir, interp)
	}
	if filepath.Dir(interp) != BinDir(KindVenv, dir) {
		t.Errorf("interpreter %q not inside BinDir %q", interp, BinDir(KindVenv, dir))
	}
}
