// SPDX-License-Identifier: MPL-2.0

package pyenv

import "testing"

func TestMakeID(t *testing.T) {
	tests := []struct {
		name        string
		kind        Kind
		venvName    string
		projectName string
		want        string
	}{
		{
			name:        "venv uses project and name",
			kind:        KindVenv,
			venvName:    "venv",
			projectName: "proj1",
			want:        "proj1/venv",
		},
		{
			name:        "hidden venv name",
			kind:        KindVenv,
			venvName:    ".venv",
			projectName: "api",
			want:        "api/.venv",
		},
		{
			name:        "conda ignores project",
			kind:        KindConda,
			venvName:    "ml",
			projectName: "ml",
			want:        "conda/ml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeID(tt.kind, tt.venvName, tt.projectName)
			if got != tt.want {
				t.Errorf("MakeID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescriptorIDStableAcrossPathChanges(t *testing.T) {
	desc := &Descriptor{
		Kind:        KindVenv,
		VenvName:    "venv",
		ProjectName: "proj1",
		CachedPath:  "/old/location/proj1/venv",
	}
	before := desc.ID()

	desc.CachedPath = "/new/location/proj1/venv"
	if got := desc.ID(); got != before {
		t.Errorf("ID changed after path update: %q -> %q", before, got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindVenv, "venv"},
		{KindConda, "conda"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestOriginString(t *testing.T) {
	tests := []struct {
		origin Origin
		want   string
	}{
		{OriginConfiguredPath, "configured search path"},
		{OriginParentDirectory, "parent directory"},
		{OriginCondaPath, "conda root"},
		{OriginActiveDetected, "externally activated"},
		{OriginCreated, "created"},
		{Origin(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.origin.String(); got != tt.want {
			t.Errorf("Origin(%d).String() = %q, want %q", tt.origin, got, tt.want)
		}
	}
}
