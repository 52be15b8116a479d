// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"

	"venvkit/internal/config"
	"venvkit/internal/issue"

	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage venvkit configuration",
		Long: `Inspect and initialize the venvkit configuration file.

The configuration lives in a CUE file under the platform config
directory and controls the search roots, recognized venv directory
names, parent-walk depth, and conda discovery.`,
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		RunE:  runConfigInit,
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE:  runConfigPath,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		printIssue(issue.ConfigLoadFailedId)
		return issue.NewErrorContext().
			WithOperation("load configuration").
			WithSuggestion("run 'venvkit config init' to create a default config file").
			Wrap(err).
			BuildError()
	}

	cmd.Println(TitleStyle.Render("Effective configuration:"))
	cmd.Println(config.GenerateCUE(cfg))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.CreateDefaultConfig(); err != nil {
		return issue.NewErrorContext().
			WithOperation("create default configuration").
			WithSuggestion("check write permissions on the config directory").
			Wrap(err).
			BuildError()
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)
	cmd.Println(SuccessStyle.Render("Created ") + path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	dir, err := config.ConfigDir()
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("locate configuration directory").
			Wrap(err).
			BuildError()
	}
	cmd.Println(filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
