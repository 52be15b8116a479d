// SPDX-License-Identifier: MPL-2.0

package pyenv

import "github.com/charmbracelet/log"

// Resolver turns a previously-discovered descriptor back into a live
// filesystem path. The protocol is cache-then-search: a still-valid cached
// path is returned without touching the search roots; otherwise the
// discovery walk is re-run constrained to the descriptor's ID and the first
// match re-caches the location.
type Resolver struct {
	discovery *Discovery

	// search overrides the constrained discovery walk. Nil means the
	// default walk; tests substitute a counting double here.
	search func(desc *Descriptor) (string, bool)
}

// NewResolver creates a Resolver backed by the given Discovery.
func NewResolver(d *Discovery) *Resolver {
	return &Resolver{discovery: d}
}

// Resolve returns the environment's current path, updating
// desc.CachedPath as a side effect when a search was needed. Returns an
// EnvironmentNotFoundError when the cache is stale and no environment with
// the same ID exists under any configured root.
func (r *Resolver) Resolve(desc *Descriptor) (string, error) {
	if desc.CachedPath != "" && isValidFor(desc.Kind, desc.CachedPath) {
		return desc.CachedPath, nil
	}

	search := r.search
	if search == nil {
		search = r.searchByID
	}

	path, ok := search(desc)
	if !ok {
		return "", &EnvironmentNotFoundError{ID: desc.ID(), LastKnownPath: desc.CachedPath}
	}

	if desc.CachedPath != path {
		log.Debug("environment relocated", "id", desc.ID(), "old", desc.CachedPath, "new", path)
	}
	desc.CachedPath = path
	return path, nil
}

// ResolveInterpreter resolves the environment and returns its Python
// executable path, verifying the executable actually exists. Like Resolve,
// it re-caches the descriptor's location on a successful search.
func (r *Resolver) ResolveInterpreter(desc *Descriptor) (string, error) {
	path, err := r.Resolve(desc)
	if err != nil {
		return "", err
	}

	interp := InterpreterPath(desc.Kind, path)
	if !fileExists(interp) {
		return "", &InterpreterMissingError{ID: desc.ID(), WantPath: interp}
	}
	return interp, nil
}

// searchByID re-runs the kind-appropriate discovery walk, stopping at the
// first emission whose derived ID matches the target.
func (r *Resolver) searchByID(desc *Descriptor) (string, bool) {
	id := desc.ID()
	var found string

	visit := func(candidate *Descriptor) bool {
		if candidate.ID() != id {
			return true
		}
		found = candidate.CachedPath
		return false
	}

	if desc.Kind == KindConda {
		r.discovery.walkCondaEnvs(visit)
	} else {
		r.discovery.walkVenvs(visit)
	}

	return found, found != ""
}
