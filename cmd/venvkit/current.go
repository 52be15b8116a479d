// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"venvkit/internal/pyenv"

	"github.com/spf13/cobra"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active Python environment",
	Long: `Show the environment marked active in the calling shell, detected
from the VIRTUAL_ENV and CONDA_PREFIX marker variables.`,
	RunE: runCurrent,
}

func runCurrent(cmd *cobra.Command, args []string) error {
	desc := pyenv.DetectActive(nil)
	if desc == nil {
		cmd.Println(SubtitleStyle.Render("No environment is active."))
		return nil
	}

	cmd.Printf("%s %s\n", TitleStyle.Render("Active:"), IdStyle.Render(desc.ID()))
	cmd.Printf("  kind:        %s\n", desc.Kind)
	cmd.Printf("  location:    %s\n", desc.CachedPath)
	cmd.Printf("  interpreter: %s\n", pyenv.InterpreterPath(desc.Kind, desc.CachedPath))
	return nil
}
