// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
var ErrInvalidConfig = errors.New("invalid config")

type (
	// Config is the full venvkit configuration surface. The core consumes
	// this value; it is owned and loaded by this package.
	Config struct {
		// VenvPaths is the ordered list of search roots for virtual
		// environments. Each root is checked itself, then its immediate
		// subdirectories, then subdirectory/<pattern> combinations.
		VenvPaths []string `mapstructure:"venv_paths"`

		// CondaPaths is the ordered list of conda roots whose immediate
		// subdirectories are scanned for conda environments.
		CondaPaths []string `mapstructure:"conda_paths"`

		// VenvPatterns is the set of recognized venv directory names.
		VenvPatterns []string `mapstructure:"venv_patterns"`

		// ParentDepth is how many parent directories of the working
		// directory are checked for venv patterns. Zero checks only the
		// working directory itself.
		ParentDepth int `mapstructure:"parent_depth"`

		// CondaEnabled toggles conda discovery entirely.
		CondaEnabled bool `mapstructure:"conda_enabled"`

		// ExtraPythonPaths maps environment-name globs to additional
		// module search paths applied on activation.
		ExtraPythonPaths map[string]string `mapstructure:"extra_python_paths"`

		// UI holds presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables debug logging and full error chains.
		Verbose bool `mapstructure:"verbose"`
	}

	// InvalidConfigError is returned when a loaded configuration violates
	// constraints the CUE schema cannot express. It wraps ErrInvalidConfig
	// for errors.Is() compatibility.
	InvalidConfigError struct {
		Field  string
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidConfig for errors.Is compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the built-in defaults used when no config file
// exists. Conda roots cover the conventional miniconda/anaconda install
// locations under the user's home directory.
func DefaultConfig() *Config {
	return &Config{
		VenvPatterns: []string{"venv", ".venv", "env", ".env", "virtualenv"},
		ParentDepth:  3,
		CondaEnabled: true,
		CondaPaths:   defaultCondaPaths(),
	}
}

func defaultCondaPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, "miniconda3", "envs"),
		filepath.Join(home, "anaconda3", "envs"),
		filepath.Join(home, ".conda", "envs"),
	}
}

// Validate checks constraints the CUE schema cannot express: duplicate
// search roots and empty pattern entries.
func (c *Config) Validate() error {
	seen := make(map[string]int)
	for i, p := range c.VenvPaths {
		clean := filepath.Clean(p)
		if first, ok := seen[clean]; ok {
			return &InvalidConfigError{
				Field:  fmt.Sprintf("venv_paths[%d]", i),
				Reason: fmt.Sprintf("duplicate path %q (same as venv_paths[%d])", p, first),
			}
		}
		seen[clean] = i
	}

	for i, pattern := range c.VenvPatterns {
		if pattern == "" {
			return &InvalidConfigError{
				Field:  fmt.Sprintf("venv_patterns[%d]", i),
				Reason: "pattern must not be empty",
			}
		}
	}

	if c.ParentDepth < 0 {
		return &InvalidConfigError{Field: "parent_depth", Reason: "must be >= 0"}
	}

	return nil
}
