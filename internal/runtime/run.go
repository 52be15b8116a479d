// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"

	"venvkit/internal/pyenv"
)

type (
	// RunOptions configures one script execution.
	RunOptions struct {
		// Script is the path to the Python script to run.
		Script string
		// Args are passed to the script after its path.
		Args []string
		// WorkDir is the working directory ("" keeps the caller's).
		WorkDir string
		// EnvFiles are dotenv files merged into the environment, in
		// order. A '?' suffix marks a file as optional.
		EnvFiles []string
		// EnvVars are explicit overrides applied last.
		EnvVars map[string]string

		// Stdout, Stderr, Stdin wire the process I/O in streaming mode.
		// Nil values default to the venvkit process's own streams.
		Stdout io.Writer
		Stderr io.Writer
		Stdin  io.Reader
	}

	// ScriptRunner executes Python scripts with the interpreter of the
	// currently active environment. The runner reads activation state but
	// never mutates it; a completed run only reports its Result.
	ScriptRunner struct {
		state *pyenv.State
	}
)

// NewScriptRunner creates a ScriptRunner over the given activation state.
func NewScriptRunner(state *pyenv.State) *ScriptRunner {
	return &ScriptRunner{state: state}
}

// Run executes the script, streaming its I/O. Cancellation of ctx
// terminates the spawned process. A non-zero script exit is reported in
// the Result's ExitCode, not as an error.
func (r *ScriptRunner) Run(ctx context.Context, opts RunOptions) *Result {
	cmd, err := r.command(ctx, opts)
	if err != nil {
		return NewErrorResult(1, err)
	}

	cmd.Stdout = opts.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.Stdin = opts.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}

	return runAndWait(cmd)
}

// RunCapture executes the script with stdout and stderr captured into the
// Result.
func (r *ScriptRunner) RunCapture(ctx context.Context, opts RunOptions) *Result {
	cmd, err := r.command(ctx, opts)
	if err != nil {
		return NewErrorResult(1, err)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := runAndWait(cmd)
	result.Output = stdout.String()
	result.ErrOutput = stderr.String()
	return result
}

// RunAsync dispatches the script as a background process and invokes done
// with the Result when it finishes. The callback only reports status; it
// runs on a separate goroutine and must not touch activation state.
func (r *ScriptRunner) RunAsync(ctx context.Context, opts RunOptions, done func(*Result)) {
	go func() {
		done(r.RunCapture(ctx, opts))
	}()
}

// command assembles the exec.Cmd for a run.
func (r *ScriptRunner) command(ctx context.Context, opts RunOptions) (*exec.Cmd, error) {
	interp := r.state.Interpreter()
	if interp == "" {
		return nil, fmt.Errorf("cannot run %s: %w", opts.Script, pyenv.ErrNoActiveEnvironment)
	}

	if err := validateWorkDir(opts.WorkDir); err != nil {
		return nil, err
	}

	env, err := buildRunEnv(opts)
	if err != nil {
		return nil, err
	}

	args := append([]string{opts.Script}, opts.Args...)
	cmd := exec.CommandContext(ctx, interp, args...)
	cmd.Dir = opts.WorkDir
	cmd.Env = env
	return cmd, nil
}

// buildRunEnv layers the environment for a run: the process environment
// (which already carries the activation overlay), then dotenv files in
// order, then explicit vars.
func buildRunEnv(opts RunOptions) ([]string, error) {
	env := make(map[string]string)

	for _, file := range opts.EnvFiles {
		if err := LoadEnvFile(env, file, opts.WorkDir); err != nil {
			return nil, err
		}
	}
	for k, v := range opts.EnvVars {
		env[k] = v
	}

	merged := os.Environ()
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, k+"="+env[k])
	}
	return merged, nil
}

func runAndWait(cmd *exec.Cmd) *Result {
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return NewExitCodeResult(ExitCode(exitErr.ExitCode()))
		}
		return NewErrorResult(1, fmt.Errorf("failed to execute script: %w", err))
	}
	return NewSuccessResult()
}

// validateWorkDir validates that a working directory exists and is
// accessible. This gives a better error message than letting exec fail
// with a cryptic one.
func validateWorkDir(dir string) error {
	if dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
		if os.IsPermission(err) {
			return fmt.Errorf("permission denied: %s", dir)
		}
		return fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}
	return nil
}
