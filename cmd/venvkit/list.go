// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"venvkit/internal/pyenv"

	"github.com/spf13/cobra"
)

var (
	listVenvsOnly bool
	listCondaOnly bool
	listJSON      bool

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List discovered Python environments",
		Long: `List every Python environment found across the configured search
paths, the parent-directory walk, and the conda environment roots.

Each line shows the stable identifier used by the other commands, the
environment kind, and the current location.`,
		RunE: runList,
	}
)

func init() {
	listCmd.Flags().BoolVar(&listVenvsOnly, "venvs", false, "show only virtual environments")
	listCmd.Flags().BoolVar(&listCondaOnly, "conda", false, "show only conda environments")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	listCmd.MarkFlagsMutuallyExclusive("venvs", "conda")
}

// listEntry is the JSON shape of one discovered environment.
type listEntry struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	DisplayName string `json:"display_name"`
	Path        string `json:"path"`
}

func runList(cmd *cobra.Command, args []string) error {
	_, discovery, _, err := loadEngine()
	if err != nil {
		return err
	}

	var descs []*pyenv.Descriptor
	switch {
	case listVenvsOnly:
		descs = discovery.Venvs()
	case listCondaOnly:
		descs = discovery.CondaEnvs()
	default:
		descs = discovery.All()
	}

	sort.Slice(descs, func(i, j int) bool { return descs[i].ID() < descs[j].ID() })

	if listJSON {
		entries := make([]listEntry, 0, len(descs))
		for _, desc := range descs {
			entries = append(entries, listEntry{
				ID:          desc.ID(),
				Kind:        desc.Kind.String(),
				DisplayName: desc.DisplayName,
				Path:        desc.CachedPath,
			})
		}
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(out))
		return nil
	}

	if len(descs) == 0 {
		cmd.Println(SubtitleStyle.Render("No environments found."))
		cmd.Println("Check venv_paths and conda_paths in your config ('venvkit config show').")
		return nil
	}

	active := pyenv.DetectActive(nil)
	cmd.Println(TitleStyle.Render(fmt.Sprintf("Environments (%d):", len(descs))))
	for _, desc := range descs {
		marker := "  "
		if active != nil && active.ID() == desc.ID() {
			marker = SuccessStyle.Render("* ")
		}
		cmd.Printf("%s%s  %s  %s\n",
			marker,
			IdStyle.Render(desc.ID()),
			SubtitleStyle.Render(desc.Kind.String()),
			desc.CachedPath,
		)
	}
	return nil
}
