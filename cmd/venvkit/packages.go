// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"venvkit/internal/pyenv"

	"github.com/spf13/cobra"
)

var packagesCmd = &cobra.Command{
	Use:   "packages <id>",
	Short: "Preview the packages installed in an environment",
	Long: `Query the environment's package manager (pip, or conda for conda
environments) and print one package per line.

This is a best-effort preview: when the environment cannot be located or
its package manager fails, the diagnostic is printed in place of the
listing and the command still exits zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runPackages,
}

func runPackages(cmd *cobra.Command, args []string) error {
	_, discovery, resolver, err := loadEngine()
	if err != nil {
		return err
	}

	desc, err := findDescriptor(discovery, args[0])
	if err != nil {
		return err
	}

	for _, line := range pyenv.ListPackages(cmd.Context(), resolver, desc) {
		cmd.Println(line)
	}
	return nil
}
