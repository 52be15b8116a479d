// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"

	"venvkit/internal/issue"
	"venvkit/internal/pyenv"

	"github.com/spf13/cobra"
)

var (
	createPython string

	createCmd = &cobra.Command{
		Use:   "create <dir>",
		Short: "Create a new virtual environment",
		Long: `Create a virtual environment at the given directory using the base
interpreter's venv module. The directory must not already exist.

Examples:
  venvkit create .venv
  venvkit create ~/projects/api/venv --python python3.12`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}
)

func init() {
	createCmd.Flags().StringVar(&createPython, "python", "", "base interpreter to create with (default: python3 or python from PATH)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	desc, err := pyenv.CreateVenv(cmd.Context(), args[0], createPython)
	if err != nil {
		if errors.Is(err, pyenv.ErrPythonNotFound) {
			printIssue(issue.PythonNotFoundId)
		} else {
			printIssue(issue.CreationFailedId)
		}
		return issue.NewErrorContext().
			WithOperation("create virtual environment").
			WithResource(args[0]).
			WithSuggestion("check that the base interpreter is installed and on PATH").
			WithSuggestion("pick a directory that does not exist yet").
			Wrap(err).
			BuildError()
	}

	cmd.Println(SuccessStyle.Render("Created ") + IdStyle.Render(desc.ID()))
	cmd.Printf("  location:    %s\n", desc.CachedPath)
	cmd.Printf("  interpreter: %s\n", pyenv.InterpreterPath(desc.Kind, desc.CachedPath))
	cmd.Printf("\nActivate it with: eval \"$(venvkit activate %s)\"\n", desc.ID())
	return nil
}
