// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"os"
	"path/filepath"
	"runtime"

	"venvkit/pkg/platform"
)

// IsVenvDir reports whether dir is a valid virtual environment: it must
// contain an activation script at the conventional platform-specific
// location (bin/activate on POSIX layouts, Scripts\activate on Windows).
// Pure existence check, no side effects.
func IsVenvDir(dir string) bool {
	return fileExists(activateScriptPath(dir))
}

// IsCondaEnvDir reports whether dir looks like a conda environment: it must
// contain the platform's executable-holding subdirectory (bin/ on POSIX,
// Scripts\ on Windows). Pure existence check, no side effects.
func IsCondaEnvDir(dir string) bool {
	if runtime.GOOS == platform.Windows {
		return dirExists(filepath.Join(dir, "Scripts"))
	}
	return dirExists(filepath.Join(dir, "bin"))
}

// isValidFor applies the kind-appropriate validity predicate.
func isValidFor(kind Kind, dir string) bool {
	if kind == KindConda {
		return IsCondaEnvDir(dir)
	}
	return IsVenvDir(dir)
}

// BinDir returns the directory holding the environment's executables.
// This is the directory prepended to PATH on activation.
func BinDir(kind Kind, dir string) string {
	if runtime.GOOS == platform.Windows {
		if kind == KindConda {
			// Conda on Windows puts python.exe at the env root and the
			// rest of the tooling under Scripts.
			return dir
		}
		return filepath.Join(dir, "Scripts")
	}
	return filepath.Join(dir, "bin")
}

// InterpreterPath returns the expected Python executable inside the
// environment. Existence is not checked; callers stat the result.
func InterpreterPath(kind Kind, dir string) string {
	if runtime.GOOS == platform.Windows {
		return filepath.Join(BinDir(kind, dir), "python.exe")
	}
	return filepath.Join(dir, "bin", "python")
}

func activateScriptPath(dir string) string {
	if runtime.GOOS == platform.Windows {
		return filepath.Join(dir, "Scripts", "activate")
	}
	return filepath.Join(dir, "bin", "activate")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
