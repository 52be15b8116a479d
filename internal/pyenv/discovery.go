// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"os"
	"path/filepath"

	"venvkit/internal/config"

	"github.com/charmbracelet/log"
)

// Discovery finds Python environments across the configured search roots.
// Descriptors are created fresh on every scan; nothing persists across runs.
type Discovery struct {
	cfg *config.Config

	// workDir anchors the parent-directory walk. Empty means os.Getwd().
	workDir string
}

// NewDiscovery creates a Discovery over the given configuration.
func NewDiscovery(cfg *config.Config) *Discovery {
	return &Discovery{cfg: cfg}
}

// NewDiscoveryAt creates a Discovery whose parent-directory walk starts at
// workDir instead of the process working directory. Used by tests and by
// callers that operate on a project other than the cwd.
func NewDiscoveryAt(cfg *config.Config, workDir string) *Discovery {
	return &Discovery{cfg: cfg, workDir: workDir}
}

// All returns every discovered environment: venvs first, then conda
// environments (when conda discovery is enabled), deduplicated by ID across
// both sources. First discovery wins; later duplicates are dropped silently.
func (d *Discovery) All() []*Descriptor {
	descs := d.Venvs()
	seen := make(map[string]bool, len(descs))
	for _, desc := range descs {
		seen[desc.ID()] = true
	}
	for _, desc := range d.CondaEnvs() {
		if seen[desc.ID()] {
			continue
		}
		seen[desc.ID()] = true
		descs = append(descs, desc)
	}
	return descs
}

// Venvs returns all virtual environments found under the configured venv
// roots and the parent-directory walk, deduplicated by ID. Result order
// follows directory-listing order within each root; callers needing a
// stable order must sort explicitly.
func (d *Discovery) Venvs() []*Descriptor {
	var descs []*Descriptor
	seen := make(map[string]bool)

	d.walkVenvs(func(desc *Descriptor) bool {
		if seen[desc.ID()] {
			return true
		}
		seen[desc.ID()] = true
		descs = append(descs, desc)
		return true
	})

	log.Debug("venv discovery complete", "count", len(descs), "roots", len(d.cfg.VenvPaths))
	return descs
}

// CondaEnvs returns all conda environments found under the configured conda
// roots, deduplicated by ID. Returns nil when conda discovery is disabled.
func (d *Discovery) CondaEnvs() []*Descriptor {
	if !d.cfg.CondaEnabled {
		return nil
	}

	var descs []*Descriptor
	seen := make(map[string]bool)

	d.walkCondaEnvs(func(desc *Descriptor) bool {
		if seen[desc.ID()] {
			return true
		}
		seen[desc.ID()] = true
		descs = append(descs, desc)
		return true
	})

	log.Debug("conda discovery complete", "count", len(descs), "roots", len(d.cfg.CondaPaths))
	return descs
}

// walkVenvs visits every venv emission point in discovery order. The visit
// function returns false to stop the walk early; duplicates are NOT filtered
// here, so callers own deduplication. The resolver reuses this walk for
// constrained re-resolution.
func (d *Discovery) walkVenvs(visit func(*Descriptor) bool) {
	for _, root := range d.cfg.VenvPaths {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		if !dirExists(absRoot) {
			continue
		}
		if !d.walkVenvRoot(absRoot, visit) {
			return
		}
	}

	d.walkParents(visit)
}

// walkVenvRoot checks a single configured root: the root itself, each
// immediate subdirectory, and each subdirectory/<pattern> combination.
func (d *Discovery) walkVenvRoot(root string, visit func(*Descriptor) bool) bool {
	if IsVenvDir(root) {
		return visit(d.venvDescriptor(root, OriginConfiguredPath, false))
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return true
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sub := filepath.Join(root, entry.Name())

		if IsVenvDir(sub) {
			if !visit(d.venvDescriptor(sub, OriginConfiguredPath, false)) {
				return false
			}
			continue
		}

		for _, pattern := range d.cfg.VenvPatterns {
			candidate := filepath.Join(sub, pattern)
			if !IsVenvDir(candidate) {
				continue
			}
			if !visit(d.venvDescriptor(candidate, OriginConfiguredPath, true)) {
				return false
			}
		}
	}

	return true
}

// walkParents walks up to ParentDepth parent directories from the working
// directory, checking each recognized venv pattern directly under every
// level. The walk stops at the filesystem root (where Dir(p) == p).
func (d *Discovery) walkParents(visit func(*Descriptor) bool) {
	dir := d.workDir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return
		}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return
	}

	for depth := 0; depth <= d.cfg.ParentDepth; depth++ {
		for _, pattern := range d.cfg.VenvPatterns {
			candidate := filepath.Join(dir, pattern)
			if !IsVenvDir(candidate) {
				continue
			}
			if !visit(d.venvDescriptor(candidate, OriginParentDirectory, true)) {
				return
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// walkCondaEnvs visits each immediate subdirectory of every configured conda
// root that satisfies the conda validity predicate.
func (d *Discovery) walkCondaEnvs(visit func(*Descriptor) bool) {
	for _, root := range d.cfg.CondaPaths {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			continue
		}

		entries, err := os.ReadDir(absRoot)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			envPath := filepath.Join(absRoot, entry.Name())
			if !IsCondaEnvDir(envPath) {
				continue
			}

			name := entry.Name()
			if !visit(&Descriptor{
				Kind:        KindConda,
				VenvName:    name,
				ProjectName: name,
				Origin:      OriginCondaPath,
				DisplayName: "conda: " + name,
				CachedPath:  envPath,
			}) {
				return
			}
		}
	}
}

// venvDescriptor builds a venv descriptor for a validated environment
// directory. When disambiguate is set, the display name combines the owning
// project directory and the venv directory name.
func (d *Discovery) venvDescriptor(path string, origin Origin, disambiguate bool) *Descriptor {
	venvName := filepath.Base(path)
	projectDir := filepath.Dir(path)
	projectName := filepath.Base(projectDir)

	display := venvName
	if disambiguate {
		display = displayProjectName(projectDir) + "/" + venvName
	}

	return &Descriptor{
		Kind:        KindVenv,
		VenvName:    venvName,
		ProjectName: projectName,
		Origin:      origin,
		DisplayName: display,
		CachedPath:  path,
	}
}
