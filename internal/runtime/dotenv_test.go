// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"path/filepath"
	"strings"
	"testing"

	"venvkit/internal/testutil"
)

func TestParseEnvFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
		wantErr string
	}{
		{
			name:    "basic assignments",
			content: "FOO=bar\nBAZ=qux",
			want:    map[string]string{"FOO": "bar", "BAZ": "qux"},
		},
		{
			name:    "comments and blank lines",
			content: "# leading comment\n\nFOO=bar\n\n# trailing comment",
			want:    map[string]string{"FOO": "bar"},
		},
		{
			name:    "export prefix stripped",
			content: "export FOO=bar",
			want:    map[string]string{"FOO": "bar"},
		},
		{
			name:    "double quoted with escapes",
			content: `FOO="line1\nline2\t\"quoted\""`,
			want:    map[string]string{"FOO": "line1\nline2\t\"quoted\""},
		},
		{
			name:    "single quoted is literal",
			content: `FOO='a\nb'`,
			want:    map[string]string{"FOO": `a\nb`},
		},
		{
			name:    "empty value",
			content: "FOO=",
			want:    map[string]string{"FOO": ""},
		},
		{
			name:    "inline comment on unquoted value",
			content: "FOO=bar # not part of the value",
			want:    map[string]string{"FOO": "bar"},
		},
		{
			name:    "missing equals",
			content: "JUSTAWORD",
			wantErr: "missing '='",
		},
		{
			name:    "empty key",
			content: "=value",
			wantErr: "empty variable name",
		},
		{
			name:    "unterminated double quote",
			content: `FOO="oops`,
			wantErr: "unterminated double quote",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := make(map[string]string)
			err := ParseEnvFile(env, []byte(tt.content), ".env")

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseEnvFile() = %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEnvFile() error: %v", err)
			}
			for k, v := range tt.want {
				if env[k] != v {
					t.Errorf("env[%q] = %q, want %q", k, env[k], v)
				}
			}
			if len(env) != len(tt.want) {
				t.Errorf("env = %v, want %v", env, tt.want)
			}
		})
	}
}

func TestParseEnvFileErrorNamesLine(t *testing.T) {
	err := ParseEnvFile(make(map[string]string), []byte("FOO=bar\nBROKEN"), "secrets.env")
	if err == nil {
		t.Fatal("ParseEnvFile() succeeded with a malformed line")
	}
	if !strings.Contains(err.Error(), "secrets.env:2") {
		t.Errorf("error %q does not name file and line", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, ".env"), "FOO=bar")

	env := make(map[string]string)
	if err := LoadEnvFile(env, ".env", dir); err != nil {
		t.Fatalf("LoadEnvFile() error: %v", err)
	}
	if env["FOO"] != "bar" {
		t.Errorf("env = %v", env)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	dir := t.TempDir()

	env := make(map[string]string)
	if err := LoadEnvFile(env, "absent.env", dir); err == nil {
		t.Error("LoadEnvFile() succeeded for a missing required file")
	}

	// The '?' suffix makes the same file optional.
	if err := LoadEnvFile(env, "absent.env?", dir); err != nil {
		t.Errorf("LoadEnvFile() error for optional missing file: %v", err)
	}
	if len(env) != 0 {
		t.Errorf("env = %v, want empty", env)
	}
}

func TestLoadEnvFileLaterOverridesEarlier(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "base.env"), "FOO=base\nKEEP=yes")
	testutil.MustWriteFile(t, filepath.Join(dir, "override.env"), "FOO=override")

	env := make(map[string]string)
	if err := LoadEnvFile(env, "base.env", dir); err != nil {
		t.Fatalf("LoadEnvFile(base) error: %v", err)
	}
	if err := LoadEnvFile(env, "override.env", dir); err != nil {
		t.Fatalf("LoadEnvFile(override) error: %v", err)
	}

	if env["FOO"] != "override" {
		t.Errorf("FOO = %q, want %q", env["FOO"], "override")
	}
	if env["KEEP"] != "yes" {
		t.Errorf("KEEP = %q, want %q", env["KEEP"], "yes")
	}
}
