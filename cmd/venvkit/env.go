// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"venvkit/internal/config"
	"venvkit/internal/issue"
	"venvkit/internal/pyenv"
)

// printIssue renders the matching issue page to stderr so the returned
// error stays concise.
func printIssue(id issue.Id) {
	rendered, _ := issue.Get(id).Render("dark")
	fmt.Fprint(os.Stderr, rendered)
}

// loadEngine builds the discovery/resolver pair from the loaded
// configuration. Every environment-touching subcommand goes through here.
func loadEngine() (*config.Config, *pyenv.Discovery, *pyenv.Resolver, error) {
	cfg, err := config.Load()
	if err != nil {
		printIssue(issue.ConfigLoadFailedId)
		return nil, nil, nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithSuggestion("run 'venvkit config init' to create a default config file").
			WithSuggestion("check the config file for syntax errors with 'venvkit config show'").
			Wrap(err).
			BuildError()
	}

	discovery := pyenv.NewDiscovery(cfg)
	return cfg, discovery, pyenv.NewResolver(discovery), nil
}

// findDescriptor locates a discovered environment by its stable identifier.
// Unknown identifiers produce an actionable error listing what IS available.
func findDescriptor(discovery *pyenv.Discovery, id string) (*pyenv.Descriptor, error) {
	all := discovery.All()
	for _, desc := range all {
		if desc.ID() == id {
			return desc, nil
		}
	}

	printIssue(issue.EnvironmentNotFoundId)
	ctx := issue.NewErrorContext().
		WithOperation("look up environment").
		WithResource(id).
		Wrap(&pyenv.EnvironmentNotFoundError{ID: id})
	if len(all) == 0 {
		ctx.WithSuggestion("no environments were discovered; check venv_paths in your config")
	} else {
		ctx.WithSuggestion("run 'venvkit list' to see available environment identifiers")
	}
	return nil, ctx.BuildError()
}
