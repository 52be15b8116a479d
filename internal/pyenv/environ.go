// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"os"
	"strings"
)

// Well-known process environment variables touched by activation.
const (
	// EnvPath is the executable search path variable.
	EnvPath = "PATH"
	// EnvPythonPath is Python's module search path variable.
	EnvPythonPath = "PYTHONPATH"
	// EnvVirtualEnv marks an active virtual environment root.
	EnvVirtualEnv = "VIRTUAL_ENV"
	// EnvCondaPrefix marks an active conda environment root.
	EnvCondaPrefix = "CONDA_PREFIX"
	// EnvCondaDefaultEnv carries the active conda environment name.
	EnvCondaDefaultEnv = "CONDA_DEFAULT_ENV"
)

type (
	// Environ abstracts process environment access so the activation state
	// machine can be tested against an in-memory double instead of the real
	// process environment.
	Environ interface {
		// Lookup returns the variable's value and whether it is set.
		Lookup(key string) (string, bool)
		// Set assigns the variable.
		Set(key, value string) error
		// Unset removes the variable.
		Unset(key string) error
	}

	// OSEnviron is the os-backed Environ used outside of tests.
	OSEnviron struct{}

	// MapEnviron is an in-memory Environ for tests.
	MapEnviron struct {
		Vars map[string]string
	}
)

// Lookup reads from the process environment.
func (OSEnviron) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// Set writes to the process environment.
func (OSEnviron) Set(key, value string) error { return os.Setenv(key, value) }

// Unset removes from the process environment.
func (OSEnviron) Unset(key string) error { return os.Unsetenv(key) }

// NewMapEnviron creates an empty in-memory environment.
func NewMapEnviron() *MapEnviron {
	return &MapEnviron{Vars: make(map[string]string)}
}

// Lookup reads from the map.
func (m *MapEnviron) Lookup(key string) (string, bool) {
	v, ok := m.Vars[key]
	return v, ok
}

// Set writes to the map.
func (m *MapEnviron) Set(key, value string) error {
	m.Vars[key] = value
	return nil
}

// Unset removes from the map.
func (m *MapEnviron) Unset(key string) error {
	delete(m.Vars, key)
	return nil
}

// StripBinDir removes every entry equal to bin from a PATH-style list.
// Used when undoing an overlay applied by an earlier process, where no
// pre-activation snapshot exists to restore.
func StripBinDir(pathList, bin string) string {
	var kept []string
	for _, entry := range strings.Split(pathList, string(os.PathListSeparator)) {
		if entry == bin {
			continue
		}
		kept = append(kept, entry)
	}
	return strings.Join(kept, string(os.PathListSeparator))
}
