// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// CreateVenv creates a new virtual environment at dir using the given base
// interpreter ("" means the first of python3/python found on PATH). The
// target directory must not already exist. On subprocess failure the
// partially created directory is left in place; callers that care must
// remove it themselves.
func CreateVenv(ctx context.Context, dir, python string) (*Descriptor, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, &CreationFailedError{Dir: dir, Reason: err.Error()}
	}

	if _, err := os.Stat(absDir); err == nil {
		return nil, &CreationFailedError{Dir: absDir, Reason: "directory already exists"}
	}

	if python == "" {
		python = lookupBaseInterpreter()
		if python == "" {
			return nil, &CreationFailedError{Dir: absDir, Reason: ErrPythonNotFound.Error(), Cause: ErrPythonNotFound}
		}
	}

	log.Debug("creating venv", "dir", absDir, "python", python)
	out, err := exec.CommandContext(ctx, python, "-m", "venv", absDir).CombinedOutput()
	if err != nil {
		return nil, &CreationFailedError{Dir: absDir, Reason: err.Error(), Output: string(out)}
	}

	venvName := filepath.Base(absDir)
	projectDir := filepath.Dir(absDir)
	return &Descriptor{
		Kind:        KindVenv,
		VenvName:    venvName,
		ProjectName: filepath.Base(projectDir),
		Origin:      OriginCreated,
		DisplayName: displayProjectName(projectDir) + "/" + venvName,
		CachedPath:  absDir,
	}, nil
}

func lookupBaseInterpreter() string {
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}
