// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// pyprojectFile is the conventional Python project metadata file.
const pyprojectFile = "pyproject.toml"

// pyproject models the subset of pyproject.toml we care about.
type pyproject struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
}

// displayProjectName returns the name to show for a project directory.
// When the directory carries a pyproject.toml with a [project] name, that
// name wins; otherwise the directory base name is used. Read and parse
// errors fall back to the directory name, since this only affects labels,
// never identity.
func displayProjectName(projectDir string) string {
	fallback := filepath.Base(projectDir)

	data, err := os.ReadFile(filepath.Join(projectDir, pyprojectFile))
	if err != nil {
		return fallback
	}

	var meta pyproject
	if err := toml.Unmarshal(data, &meta); err != nil {
		return fallback
	}
	if meta.Project.Name == "" {
		return fallback
	}
	return meta.Project.Name
}
