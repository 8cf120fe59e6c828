// Package textdiff renders the difference between two serializations of a
// document.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Changed reports whether from and to differ at all.
func Changed(from, to string) bool {
	return from != to
}

// Diff computes a line-based diff between two texts.
func Diff(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

// Unified renders a line-based diff with -/+ prefixes, the way review
// tools print it.
func Unified(from, to string) string {
	var sb strings.Builder
	for _, d := range Diff(from, to) {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range splitLines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(ln)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Pretty renders a colorized character diff for terminals.
func Pretty(from, to string) string {
	dmp := diffpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(from, to, false))
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
