package handler_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hierdoc/go-hierdoc/docmodel"
	"github.com/hierdoc/go-hierdoc/handler"
)

func TestResolve(t *testing.T) {
	reg := docmodel.DefaultRegistry()
	for _, name := range []string{handler.JSON, handler.XML, handler.YAML, handler.Markdown} {
		h, err := reg.Resolve(name)
		if err != nil {
			t.Errorf("resolve %q: %v", name, err)
			continue
		}
		if h == nil {
			t.Errorf("resolve %q: nil handler", name)
		}
	}
	if _, err := reg.Resolve("toml"); !errors.Is(err, handler.ErrUnknownFormat) {
		t.Errorf("got %v, want ErrUnknownFormat", err)
	}
}

func TestFormats(t *testing.T) {
	reg := docmodel.DefaultRegistry()
	want := []string{handler.JSON, handler.XML, handler.YAML, handler.Markdown}
	if diff := cmp.Diff(want, reg.Formats()); diff != "" {
		t.Errorf("formats (-want +got):\n%s", diff)
	}
}

func TestDetectFormat(t *testing.T) {
	reg := docmodel.DefaultRegistry()
	for _, tc := range []struct {
		text string
		want string
	}{
		{`{"a": 1}`, handler.JSON},
		{`[1, 2, 3]`, handler.JSON},
		{"<root><a>1</a></root>", handler.XML},
		{"a: 1\nb: 2", handler.YAML},
		{"# Title\n\ntext", handler.Markdown},
		// A JSON-bracketed YAML-ish text: JSON wins by precedence.
		{`{"a": "b: c"}`, handler.JSON},
		// Nothing matches: JSON is the default.
		{"plain prose", handler.JSON},
		// Markdown heading containing a colon still sniffs YAML first;
		// the ordering is part of the contract.
		{"note: see #4", handler.YAML},
	} {
		if got := reg.DetectFormat(tc.text); got != tc.want {
			t.Errorf("DetectFormat(%q): got %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestReregisterKeepsOrder(t *testing.T) {
	reg := docmodel.DefaultRegistry()
	reg.Register(handler.XML, func() handler.Handler { return nil })
	want := []string{handler.JSON, handler.XML, handler.YAML, handler.Markdown}
	if diff := cmp.Diff(want, reg.Formats()); diff != "" {
		t.Errorf("formats (-want +got):\n%s", diff)
	}
}

func TestTrimBounds(t *testing.T) {
	if !handler.TrimBounds("  {\"a\": 1}\n", "{", "}") {
		t.Error("bounds with surrounding whitespace must match")
	}
	if handler.TrimBounds("{\"a\": 1", "{", "}") {
		t.Error("unterminated text must not match")
	}
}
