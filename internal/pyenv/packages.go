// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ListPackages returns the packages installed in the environment, one line
// per package. This is a read-only, best-effort preview: every failure mode
// (unresolvable environment, missing package manager, non-zero exit) is
// reported as diagnostic lines in the returned slice rather than an error,
// so callers can render the result unconditionally.
func ListPackages(ctx context.Context, r *Resolver, desc *Descriptor) []string {
	path, err := r.Resolve(desc)
	if err != nil {
		return []string{
			fmt.Sprintf("environment %q could not be located (%v)", desc.ID(), err),
			"its directory may have been moved or deleted; re-run discovery and pick it again",
		}
	}

	name, args := packageListCommand(desc, path)
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		lines := []string{
			fmt.Sprintf("package listing for %q failed: %v", desc.ID(), err),
		}
		return append(lines, splitLines(string(out))...)
	}

	return splitLines(string(out))
}

// packageListCommand picks the environment's package manager invocation.
// Conda environments prefer the conda CLI when it is on PATH; everything
// else goes through the environment's own pip.
func packageListCommand(desc *Descriptor, path string) (string, []string) {
	if desc.Kind == KindConda {
		if conda, err := exec.LookPath("conda"); err == nil {
			return conda, []string{"list", "--prefix", path}
		}
	}
	return InterpreterPath(desc.Kind, path), []string{"-m", "pip", "list", "--format=freeze"}
}

// splitLines splits combined process output into trimmed non-empty lines.
func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
