// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"venvkit/internal/issue"
	"venvkit/internal/pyenv"

	"github.com/spf13/cobra"
)

var (
	activateCmd = &cobra.Command{
		Use:   "activate <id>",
		Short: "Emit shell commands to activate an environment",
		Long: `Resolve the environment by its identifier, apply the activation
overlay, and print the resulting export statements on stdout.

The output is meant to be evaluated by the calling shell:

  eval "$(venvkit activate proj1/venv)"

Activating while another environment is active replaces it; the overlay
never stacks.`,
		Args: cobra.ExactArgs(1),
		RunE: runActivate,
	}

	deactivateCmd = &cobra.Command{
		Use:   "deactivate",
		Short: "Emit shell commands to deactivate the active environment",
		Long: `Print the unset/export statements that undo the active environment's
overlay, for evaluation by the calling shell:

  eval "$(venvkit deactivate)"`,
		RunE: runDeactivate,
	}
)

// activationVars are the variables an activation overlay may touch, in
// emission order.
var activationVars = []string{
	pyenv.EnvPath,
	pyenv.EnvVirtualEnv,
	pyenv.EnvCondaPrefix,
	pyenv.EnvCondaDefaultEnv,
	pyenv.EnvPythonPath,
}

func runActivate(cmd *cobra.Command, args []string) error {
	cfg, discovery, resolver, err := loadEngine()
	if err != nil {
		return err
	}

	desc, err := findDescriptor(discovery, args[0])
	if err != nil {
		return err
	}

	// Run the state machine against an in-memory copy of the relevant
	// variables; the diff against the real environment becomes the shell
	// output. The venvkit process itself stays unmodified.
	env := pyenv.NewMapEnviron()
	osEnv := pyenv.OSEnviron{}
	for _, key := range activationVars {
		if v, ok := osEnv.Lookup(key); ok {
			env.Vars[key] = v
		}
	}

	state := pyenv.NewState(resolver, env)
	state.SetExtraPythonPaths(cfg.ExtraPythonPaths)
	if err := state.Activate(desc); err != nil {
		if errors.Is(err, pyenv.ErrInterpreterMissing) {
			printIssue(issue.InterpreterMissingId)
		} else {
			printIssue(issue.EnvironmentNotFoundId)
		}
		return issue.NewErrorContext().
			WithOperation("activate environment").
			WithResource(desc.ID()).
			WithSuggestion("run 'venvkit list' to re-discover environments").
			Wrap(err).
			BuildError()
	}

	for _, key := range activationVars {
		if v, ok := env.Lookup(key); ok {
			cmd.Printf("export %s=%q\n", key, v)
		}
	}
	return nil
}

func runDeactivate(cmd *cobra.Command, args []string) error {
	desc := pyenv.DetectActive(nil)
	if desc == nil {
		printIssue(issue.NoActiveEnvironmentId)
		return issue.NewErrorContext().
			WithOperation("deactivate environment").
			WithSuggestion("run 'venvkit current' to check the activation state").
			Wrap(pyenv.ErrNoActiveEnvironment).
			BuildError()
	}

	if path, ok := (pyenv.OSEnviron{}).Lookup(pyenv.EnvPath); ok {
		restored := pyenv.StripBinDir(path, pyenv.BinDir(desc.Kind, desc.CachedPath))
		cmd.Printf("export %s=%q\n", pyenv.EnvPath, restored)
	}

	markers := []string{
		pyenv.EnvVirtualEnv,
		pyenv.EnvCondaPrefix,
		pyenv.EnvCondaDefaultEnv,
		pyenv.EnvPythonPath,
	}
	for _, key := range markers {
		cmd.Printf("unset %s\n", key)
	}
	return nil
}
