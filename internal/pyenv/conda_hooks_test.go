// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"path/filepath"
	"testing"

	"venvkit/internal/testutil"
)

func writeActivateHook(t *testing.T, envPath, name, content string) {
	t.Helper()
	hookDir := filepath.Join(envPath, "etc", "conda", "activate.d")
	testutil.MustMkdirAll(t, hookDir)
	testutil.MustWriteFile(t, filepath.Join(hookDir, name), content)
}

func TestCondaPythonPaths(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{
			name:   "plain export",
			script: `export PYTHONPATH=/opt/libs`,
			want:   []string{"/opt/libs"},
		},
		{
			name:   "quoted with self reference",
			script: `export PYTHONPATH="/opt/libs:/opt/more:$PYTHONPATH"`,
			want:   []string{"/opt/libs", "/opt/more"},
		},
		{
			name:   "single quoted",
			script: `PYTHONPATH='/opt/libs'`,
			want:   []string{"/opt/libs"},
		},
		{
			name: "other assignments ignored",
			script: `export LD_LIBRARY_PATH=/opt/cuda
export PYTHONPATH=/opt/libs`,
			want: []string{"/opt/libs"},
		},
		{
			name:   "fully dynamic value yields nothing",
			script: `export PYTHONPATH="$CONDA_PREFIX/lib"`,
			want:   nil,
		},
		{
			name:   "no pythonpath at all",
			script: `echo activating`,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envPath := t.TempDir()
			writeActivateHook(t, envPath, "env_vars.sh", tt.script)

			got := condaPythonPaths(envPath)
			if len(got) != len(tt.want) {
				t.Fatalf("condaPythonPaths() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("path %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCondaPythonPathsNoHookDir(t *testing.T) {
	if got := condaPythonPaths(t.TempDir()); got != nil {
		t.Errorf("condaPythonPaths() = %v for an env without hooks, want nil", got)
	}
}

func TestCondaPythonPathsGarbledScriptIsIgnored(t *testing.T) {
	envPath := t.TempDir()
	writeActivateHook(t, envPath, "broken.sh", `if [ -z "$x" ; then export PYTHONPATH=/never`)
	writeActivateHook(t, envPath, "good.sh", `export PYTHONPATH=/opt/libs`)

	got := condaPythonPaths(envPath)
	if len(got) != 1 || got[0] != "/opt/libs" {
		t.Errorf("condaPythonPaths() = %v, want [/opt/libs]", got)
	}
}

func TestCondaPythonPathsSkipsNonShellFiles(t *testing.T) {
	envPath := t.TempDir()
	writeActivateHook(t, envPath, "env_vars.fish", `set -x PYTHONPATH /opt/fish`)
	writeActivateHook(t, envPath, "notes.txt", `export PYTHONPATH=/opt/text`)

	if got := condaPythonPaths(envPath); got != nil {
		t.Errorf("condaPythonPaths() = %v, want nil", got)
	}
}
