// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"venvkit/internal/issue"
	"venvkit/internal/pyenv"
	"venvkit/internal/runtime"

	"github.com/spf13/cobra"
)

var (
	runWorkDir  string
	runEnvFiles []string
	runEnvVars  map[string]string

	runCmd = &cobra.Command{
		Use:   "run <id> <script> [args...]",
		Short: "Run a Python script with an environment's interpreter",
		Long: `Activate the environment in-process and execute the script with its
interpreter, streaming the script's I/O. The script's exit code becomes
venvkit's exit code.

Examples:
  venvkit run proj1/venv train.py --epochs 10
  venvkit run conda/ml eval.py --env-file .env --env-file secrets.env?`,
		Args: cobra.MinimumNArgs(2),
		RunE: runRun,
	}
)

func init() {
	runCmd.Flags().StringVarP(&runWorkDir, "workdir", "w", "", "working directory for the script")
	runCmd.Flags().StringArrayVar(&runEnvFiles, "env-file", nil, "dotenv file to load (repeatable; '?' suffix marks optional)")
	runCmd.Flags().StringToStringVarP(&runEnvVars, "env", "e", nil, "environment variable override (KEY=VALUE, repeatable)")
	runCmd.Flags().SetInterspersed(false)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, discovery, resolver, err := loadEngine()
	if err != nil {
		return err
	}

	desc, err := findDescriptor(discovery, args[0])
	if err != nil {
		return err
	}

	state := pyenv.NewState(resolver, nil)
	state.SetExtraPythonPaths(cfg.ExtraPythonPaths)
	if err := state.Activate(desc); err != nil {
		return issue.NewErrorContext().
			WithOperation("activate environment").
			WithResource(desc.ID()).
			WithSuggestion("run 'venvkit list' to re-discover environments").
			Wrap(err).
			BuildError()
	}
	defer func() { _ = state.Deactivate() }()

	runner := runtime.NewScriptRunner(state)
	result := runner.Run(cmd.Context(), runtime.RunOptions{
		Script:   args[1],
		Args:     args[2:],
		WorkDir:  runWorkDir,
		EnvFiles: runEnvFiles,
		EnvVars:  runEnvVars,
	})

	if result.Error != nil {
		return issue.NewErrorContext().
			WithOperation("run script").
			WithResource(args[1]).
			Wrap(result.Error).
			BuildError()
	}
	if !result.ExitCode.IsSuccess() {
		// Propagate the script's exit code without an extra error message.
		cmd.SilenceErrors = true
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}
