// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

type (
	// Hook is invoked synchronously after every activation state change,
	// in registration order. The descriptor is nil on deactivation.
	// Typical hooks restart a language server or refresh a status line.
	Hook func(*Descriptor)

	// State is the process-wide activation slot. At most one environment
	// is active at a time; activating a new environment first fully
	// deactivates the current one (restoring the saved search path) so
	// overlays never compound.
	//
	// All transitions go through Activate/Deactivate; the mutex preserves
	// the single-active invariant under concurrent callers.
	State struct {
		mu       sync.Mutex
		resolver *Resolver
		env      Environ

		// extraPythonPaths maps environment-name globs to additional
		// module search paths applied on activation.
		extraPythonPaths map[string]string

		hooks []Hook

		active      *Descriptor
		interpreter string

		savedPath         string
		savedPathOK       bool
		savedPythonPath   string
		savedPythonPathOK bool
		pathSnapshotted   bool
	}
)

// NewState creates an empty (Inactive) activation state. A nil env means
// the real process environment.
func NewState(resolver *Resolver, env Environ) *State {
	if env == nil {
		env = OSEnviron{}
	}
	return &State{resolver: resolver, env: env}
}

// SetExtraPythonPaths configures additional module search paths keyed by
// environment-name glob (e.g. "ml-*" -> "/opt/ml/lib"). Matching entries
// are appended to the PYTHONPATH overlay on activation.
func (s *State) SetExtraPythonPaths(paths map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.extraPythonPaths = paths
}

// OnChange registers a hook. Hooks run synchronously, in registration
// order, after the overlay has been applied or rolled back.
func (s *State) OnChange(h Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, h)
}

// Active returns the currently active descriptor, or nil.
func (s *State) Active() *Descriptor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Interpreter returns the active environment's Python executable path,
// or "" when nothing is active.
func (s *State) Interpreter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interpreter
}

// Activate resolves the descriptor and applies its overlay: the
// environment's executable directory is prepended to PATH, kind-specific
// marker variables are set, and any configured or conda-declared module
// search paths are appended to PYTHONPATH. A currently active environment
// is deactivated first. No state changes on failure.
func (s *State) Activate(desc *Descriptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	interp, err := s.resolver.ResolveInterpreter(desc)
	if err != nil {
		return err
	}
	path := desc.CachedPath

	if s.active != nil {
		s.deactivateLocked()
	}

	// Snapshot only when transitioning from Inactive; the overlay is
	// replaced wholesale on deactivation, never subtracted.
	if !s.pathSnapshotted {
		s.savedPath, s.savedPathOK = s.env.Lookup(EnvPath)
		s.savedPythonPath, s.savedPythonPathOK = s.env.Lookup(EnvPythonPath)
		s.pathSnapshotted = true
	}

	bin := BinDir(desc.Kind, path)
	searchPath := bin
	if cur, ok := s.env.Lookup(EnvPath); ok && cur != "" {
		searchPath = bin + string(os.PathListSeparator) + cur
	}
	if err := s.env.Set(EnvPath, searchPath); err != nil {
		return err
	}

	switch desc.Kind {
	case KindConda:
		if err := s.env.Set(EnvCondaPrefix, path); err != nil {
			return err
		}
		if err := s.env.Set(EnvCondaDefaultEnv, desc.VenvName); err != nil {
			return err
		}
	default:
		if err := s.env.Set(EnvVirtualEnv, path); err != nil {
			return err
		}
	}

	if extra := s.pythonPathOverlay(desc, path); len(extra) > 0 {
		joined := strings.Join(extra, string(os.PathListSeparator))
		if cur, ok := s.env.Lookup(EnvPythonPath); ok && cur != "" {
			joined = cur + string(os.PathListSeparator) + joined
		}
		if err := s.env.Set(EnvPythonPath, joined); err != nil {
			return err
		}
	}

	s.active = desc
	s.interpreter = interp
	log.Debug("environment activated", "id", desc.ID(), "path", path)

	for _, h := range s.hooks {
		h(desc)
	}
	return nil
}

// Deactivate restores the search path snapshotted at activation verbatim,
// clears all marker variables and the interpreter path, and resets the
// state to Inactive. Returns ErrNoActiveEnvironment when nothing is active.
func (s *State) Deactivate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return ErrNoActiveEnvironment
	}
	s.deactivateLocked()
	return nil
}

// deactivateLocked performs the restore. Callers hold s.mu.
func (s *State) deactivateLocked() {
	// Restore the snapshot verbatim rather than subtracting the overlay;
	// this stays correct even if PATH was mutated externally in between.
	if s.savedPathOK {
		_ = s.env.Set(EnvPath, s.savedPath)
	} else {
		_ = s.env.Unset(EnvPath)
	}
	if s.savedPythonPathOK {
		_ = s.env.Set(EnvPythonPath, s.savedPythonPath)
	} else {
		_ = s.env.Unset(EnvPythonPath)
	}

	_ = s.env.Unset(EnvVirtualEnv)
	_ = s.env.Unset(EnvCondaPrefix)
	_ = s.env.Unset(EnvCondaDefaultEnv)

	id := s.active.ID()
	s.active = nil
	s.interpreter = ""
	s.pathSnapshotted = false
	log.Debug("environment deactivated", "id", id)

	for _, h := range s.hooks {
		h(nil)
	}
}

// pythonPathOverlay collects extra module search paths for the environment:
// conda activation-hook exports (best effort) plus configured
// extra_python_paths entries whose glob matches the environment name.
func (s *State) pythonPathOverlay(desc *Descriptor, path string) []string {
	var extra []string

	if desc.Kind == KindConda {
		extra = append(extra, condaPythonPaths(path)...)
	}

	for pattern, p := range s.extraPythonPaths {
		ok, err := filepath.Match(pattern, desc.VenvName)
		if err != nil || !ok {
			continue
		}
		extra = append(extra, p)
	}

	return extra
}
