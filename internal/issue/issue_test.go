// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestRegistryCompleteness(t *testing.T) {
	ids := []Id{
		EnvironmentNotFoundId,
		InterpreterMissingId,
		NoActiveEnvironmentId,
		PackageQueryFailedId,
		CreationFailedId,
		ConfigLoadFailedId,
		PythonNotFoundId,
	}

	if len(Values()) != len(ids) {
		t.Errorf("registry has %d issues, want %d", len(Values()), len(ids))
	}

	for _, id := range ids {
		iss := Get(id)
		if iss == nil {
			t.Errorf("Get(%d) = nil", id)
			continue
		}
		if iss.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, iss.Id())
		}
		if iss.MarkdownMsg() == "" {
			t.Errorf("issue %d has an empty message", id)
		}
	}
}

func TestGetUnknownId(t *testing.T) {
	if iss := Get(Id(9999)); iss != nil {
		t.Errorf("Get(unknown) = %v, want nil", iss)
	}
}

func TestRenderIncludesLinks(t *testing.T) {
	orig := render
	render = func(in string, _ string) (string, error) { return in, nil }
	defer func() { render = orig }()

	iss := &Issue{
		id:       Id(100),
		mdMsg:    "# Test issue",
		extLinks: []HttpLink{"https://example.com/docs"},
	}

	out, err := iss.Render("dark")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "See also") {
		t.Errorf("Render() missing links section: %q", out)
	}
	if !strings.Contains(out, "https://example.com/docs") {
		t.Errorf("Render() missing link: %q", out)
	}
}

func TestExtLinksReturnsCopy(t *testing.T) {
	iss := &Issue{
		id:       Id(101),
		mdMsg:    "m",
		extLinks: []HttpLink{"https://example.com"},
	}

	links := iss.ExtLinks()
	links[0] = "https://mutated.example.com"

	if iss.ExtLinks()[0] != "https://example.com" {
		t.Error("ExtLinks() exposes internal slice")
	}
}
