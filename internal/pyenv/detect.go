// SPDX-License-Identifier: MPL-2.0

package pyenv

import "path/filepath"

// DetectActive inspects externally-set marker variables and reconstructs a
// descriptor for an environment that was activated before this process
// started (e.g. by the user's shell). Returns nil when no marker is set or
// the marked directory no longer validates.
func DetectActive(env Environ) *Descriptor {
	if env == nil {
		env = OSEnviron{}
	}

	if path, ok := env.Lookup(EnvVirtualEnv); ok && path != "" && IsVenvDir(path) {
		venvName := filepath.Base(path)
		return &Descriptor{
			Kind:        KindVenv,
			VenvName:    venvName,
			ProjectName: filepath.Base(filepath.Dir(path)),
			Origin:      OriginActiveDetected,
			DisplayName: venvName,
			CachedPath:  path,
		}
	}

	if path, ok := env.Lookup(EnvCondaPrefix); ok && path != "" && IsCondaEnvDir(path) {
		name, _ := env.Lookup(EnvCondaDefaultEnv)
		if name == "" {
			name = filepath.Base(path)
		}
		return &Descriptor{
			Kind:        KindConda,
			VenvName:    name,
			ProjectName: name,
			Origin:      OriginActiveDetected,
			DisplayName: "conda: " + name,
			CachedPath:  path,
		}
	}

	return nil
}
