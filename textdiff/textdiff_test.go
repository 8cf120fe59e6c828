package textdiff

import (
	"strings"
	"testing"
)

func TestChanged(t *testing.T) {
	if Changed("same", "same") {
		t.Error("identical texts must not report a change")
	}
	if !Changed("a", "b") {
		t.Error("different texts must report a change")
	}
}

func TestUnified(t *testing.T) {
	from := "a: 1\nb: 2\nc: 3\n"
	to := "a: 1\nb: 9\nc: 3\n"
	out := Unified(from, to)
	for _, want := range []string{"  a: 1\n", "- b: 2\n", "+ b: 9\n", "  c: 3\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestUnifiedIdentical(t *testing.T) {
	out := Unified("x\ny\n", "x\ny\n")
	if strings.Contains(out, "- ") || strings.Contains(out, "+ ") {
		t.Errorf("identical texts produced edits:\n%s", out)
	}
}

func TestPretty(t *testing.T) {
	out := Pretty("hello world", "hello there")
	if !strings.Contains(out, "hello ") {
		t.Errorf("common prefix missing: %q", out)
	}
}
