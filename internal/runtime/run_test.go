// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"testing"

	"venvkit/internal/config"
	"venvkit/internal/pyenv"
	"venvkit/internal/testutil"
)

// newActivatedRunner builds a ScriptRunner over a State with a fake
// activated environment whose "interpreter" is a shell stub.
func newActivatedRunner(t *testing.T, interpreterScript string) *ScriptRunner {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("shell stub interpreters are POSIX-only")
	}

	root := t.TempDir()
	envDir := filepath.Join(root, "proj1", "venv")
	testutil.MustMkdirAll(t, filepath.Join(envDir, "bin"))
	testutil.MustWriteFile(t, filepath.Join(envDir, "bin", "activate"), "")

	interp := filepath.Join(envDir, "bin", "python")
	testutil.MustWriteFile(t, interp, "#!/bin/sh\n"+interpreterScript)
	if err := os.Chmod(interp, 0o755); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	cfg := &config.Config{
		VenvPaths:    []string{root},
		VenvPatterns: []string{"venv"},
	}
	state := pyenv.NewState(pyenv.NewResolver(pyenv.NewDiscoveryAt(cfg, t.TempDir())), pyenv.NewMapEnviron())
	desc := &pyenv.Descriptor{
		Kind:        pyenv.KindVenv,
		VenvName:    "venv",
		ProjectName: "proj1",
		CachedPath:  envDir,
	}
	if err := state.Activate(desc); err != nil {
		t.Fatalf("Activate() error: %v", err)
	}
	return NewScriptRunner(state)
}

func TestRunCaptureSuccess(t *testing.T) {
	r := newActivatedRunner(t, `echo "running $1"`)

	result := r.RunCapture(context.Background(), RunOptions{Script: "train.py"})
	if result.Error != nil {
		t.Fatalf("RunCapture() error: %v", result.Error)
	}
	if !result.ExitCode.IsSuccess() {
		t.Errorf("ExitCode = %v, want success", result.ExitCode)
	}
	if !strings.Contains(result.Output, "running train.py") {
		t.Errorf("Output = %q", result.Output)
	}
}

func TestRunCaptureNonZeroExit(t *testing.T) {
	r := newActivatedRunner(t, "exit 7")

	result := r.RunCapture(context.Background(), RunOptions{Script: "fail.py"})
	if result.Error != nil {
		t.Fatalf("non-zero exit reported as error: %v", result.Error)
	}
	if result.ExitCode != 7 {
		t.Errorf("ExitCode = %v, want 7", result.ExitCode)
	}
}

func TestRunCaptureEnvVarOverride(t *testing.T) {
	r := newActivatedRunner(t, `echo "MODE=$MODE"`)

	result := r.RunCapture(context.Background(), RunOptions{
		Script:  "show.py",
		EnvVars: map[string]string{"MODE": "training"},
	})
	if result.Error != nil {
		t.Fatalf("RunCapture() error: %v", result.Error)
	}
	if !strings.Contains(result.Output, "MODE=training") {
		t.Errorf("Output = %q", result.Output)
	}
}

func TestRunAsyncReportsResult(t *testing.T) {
	r := newActivatedRunner(t, "exit 3")

	done := make(chan *Result, 1)
	r.RunAsync(context.Background(), RunOptions{Script: "bg.py"}, func(res *Result) {
		done <- res
	})

	result := <-done
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %v, want 3", result.ExitCode)
	}
}

func TestRunWithoutActiveEnvironment(t *testing.T) {
	cfg := &config.Config{VenvPatterns: []string{"venv"}}
	state := pyenv.NewState(pyenv.NewResolver(pyenv.NewDiscoveryAt(cfg, t.TempDir())), pyenv.NewMapEnviron())
	r := NewScriptRunner(state)

	result := r.RunCapture(context.Background(), RunOptions{Script: "any.py"})
	if result.Error == nil {
		t.Fatal("RunCapture() succeeded with no active environment")
	}
	if !errors.Is(result.Error, pyenv.ErrNoActiveEnvironment) {
		t.Errorf("Error = %v, want ErrNoActiveEnvironment", result.Error)
	}
}

func TestRunInvalidWorkDir(t *testing.T) {
	r := newActivatedRunner(t, "exit 0")

	result := r.RunCapture(context.Background(), RunOptions{
		Script:  "any.py",
		WorkDir: filepath.Join(t.TempDir(), "missing"),
	})
	if result.Error == nil || !strings.Contains(result.Error.Error(), "does not exist") {
		t.Errorf("Error = %v, want a missing-directory message", result.Error)
	}
}

func TestValidateWorkDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	testutil.MustWriteFile(t, file, "")

	tests := []struct {
		name    string
		dir     string
		wantErr string
	}{
		{name: "empty is allowed", dir: ""},
		{name: "existing directory", dir: t.TempDir()},
		{name: "missing directory", dir: filepath.Join(t.TempDir(), "nope"), wantErr: "does not exist"},
		{name: "file not directory", dir: file, wantErr: "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWorkDir(tt.dir)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validateWorkDir() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validateWorkDir() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuildRunEnvLayering(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, ".env"), "FROM_FILE=file\nSHARED=file")

	env, err := buildRunEnv(RunOptions{
		WorkDir:  dir,
		EnvFiles: []string{".env"},
		EnvVars:  map[string]string{"SHARED": "explicit", "EXTRA": "yes"},
	})
	if err != nil {
		t.Fatalf("buildRunEnv() error: %v", err)
	}

	got := make(map[string]string)
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok {
			got[k] = v
		}
	}

	if got["FROM_FILE"] != "file" {
		t.Errorf("FROM_FILE = %q, want %q", got["FROM_FILE"], "file")
	}
	// Explicit vars win over dotenv files.
	if got["SHARED"] != "explicit" {
		t.Errorf("SHARED = %q, want %q", got["SHARED"], "explicit")
	}
	if got["EXTRA"] != "yes" {
		t.Errorf("EXTRA = %q, want %q", got["EXTRA"], "yes")
	}
}
