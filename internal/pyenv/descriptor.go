// SPDX-License-Identifier: MPL-2.0

package pyenv

type (
	// Kind distinguishes plain virtual environments from conda environments.
	Kind int

	// Origin records where a descriptor came from. Informational only;
	// it never participates in identity or resolution.
	Origin int

	// Descriptor identifies and locates one Python environment.
	//
	// Identity (Kind, VenvName, ProjectName) is immutable once created.
	// CachedPath is a mutable location hint: the resolver updates it as a
	// side effect of successful lookups and never trusts it without
	// re-validation, since environment directories may be moved or renamed
	// between discovery and use.
	Descriptor struct {
		// Kind is the environment flavor (venv or conda).
		Kind Kind
		// VenvName is the base name of the environment directory
		// (e.g. "venv", ".venv") or the conda environment name.
		VenvName string
		// ProjectName is the name of the owning project directory.
		// For conda environments it equals VenvName.
		ProjectName string
		// Origin records how this descriptor was discovered.
		Origin Origin
		// DisplayName is the human-facing label, possibly disambiguated
		// with the project name.
		DisplayName string
		// CachedPath is the last known absolute path of the environment
		// directory. It is a hint, not a guarantee.
		CachedPath string
	}
)

const (
	// KindVenv is a standard virtual environment (venv/virtualenv layout).
	KindVenv Kind = iota
	// KindConda is a conda-managed environment.
	KindConda
)

const (
	// OriginConfiguredPath means the environment was found under a
	// configured venv search root.
	OriginConfiguredPath Origin = iota
	// OriginParentDirectory means the environment was found during the
	// parent-directory walk from the working directory.
	OriginParentDirectory
	// OriginCondaPath means the environment was found under a configured
	// conda root.
	OriginCondaPath
	// OriginActiveDetected means the environment was inferred from marker
	// variables set by an external activation (e.g. a login shell).
	OriginActiveDetected
	// OriginCreated means the environment was just created by this process.
	OriginCreated
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindVenv:
		return "venv"
	case KindConda:
		return "conda"
	default:
		return "unknown"
	}
}

// String returns a human-readable origin name.
func (o Origin) String() string {
	switch o {
	case OriginConfiguredPath:
		return "configured search path"
	case OriginParentDirectory:
		return "parent directory"
	case OriginCondaPath:
		return "conda root"
	case OriginActiveDetected:
		return "externally activated"
	case OriginCreated:
		return "created"
	default:
		return "unknown"
	}
}

// MakeID derives the stable deduplication key for a (kind, project, name)
// tuple. Two descriptors with equal IDs refer to the same logical environment
// regardless of their current filesystem paths. Two projects that share both
// their directory name and their venv name collapse into one identity; no
// stronger disambiguator exists without full paths.
func MakeID(kind Kind, venvName, projectName string) string {
	if kind == KindConda {
		return "conda/" + venvName
	}
	return projectName + "/" + venvName
}

// ID returns the descriptor's stable identity key.
func (d *Descriptor) ID() string {
	return MakeID(d.Kind, d.VenvName, d.ProjectName)
}
