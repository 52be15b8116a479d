// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// condaPythonPaths probes the environment's activation-hook directory
// (etc/conda/activate.d) for shell scripts that export PYTHONPATH and
// returns the literal path fragments they declare. This is best-effort
// augmentation of the activation overlay: a missing directory, unreadable
// file, or unparsable script is a no-op, never an error. Fragments that
// reference other variables (e.g. "$PYTHONPATH") are skipped.
func condaPythonPaths(envPath string) []string {
	hookDir := filepath.Join(envPath, "etc", "conda", "activate.d")
	entries, err := os.ReadDir(hookDir)
	if err != nil {
		return nil
	}

	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	var paths []string

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sh") {
			continue
		}

		f, err := os.Open(filepath.Join(hookDir, entry.Name()))
		if err != nil {
			continue
		}
		file, err := parser.Parse(f, entry.Name())
		_ = f.Close()
		if err != nil {
			continue
		}

		syntax.Walk(file, func(node syntax.Node) bool {
			assign, ok := node.(*syntax.Assign)
			if !ok || assign.Name == nil || assign.Name.Value != EnvPythonPath || assign.Value == nil {
				return true
			}
			for _, part := range strings.Split(wordLiteral(assign.Value), ":") {
				part = strings.TrimSpace(part)
				if part == "" || strings.ContainsRune(part, '$') {
					continue
				}
				paths = append(paths, part)
			}
			return true
		})
	}

	return paths
}

// wordLiteral flattens a shell word into its literal text. Parameter
// expansions and other dynamic parts are rendered as "$" so callers can
// recognize and discard them.
func wordLiteral(word *syntax.Word) string {
	var sb strings.Builder
	for _, part := range word.Parts {
		writeWordPart(&sb, part)
	}
	return sb.String()
}

func writeWordPart(sb *strings.Builder, part syntax.WordPart) {
	switch p := part.(type) {
	case *syntax.Lit:
		sb.WriteString(p.Value)
	case *syntax.SglQuoted:
		sb.WriteString(p.Value)
	case *syntax.DblQuoted:
		for _, inner := range p.Parts {
			writeWordPart(sb, inner)
		}
	default:
		sb.WriteString("$")
	}
}
