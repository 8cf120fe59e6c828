package expansion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hierdoc/go-hierdoc/ir"
)

// root -> server{host, port}, items[0, 1]
func buildTree() *ir.Node {
	root := ir.NewObject("")
	server := ir.NewObject("server")
	server.Append(ir.NewScalar("host", ir.String("localhost")))
	server.Append(ir.NewScalar("port", ir.Int(8080)))
	root.Append(server)
	items := ir.NewArray("items")
	items.Append(ir.NewScalar("", ir.String("a")))
	items.Append(ir.NewScalar("", ir.String("b")))
	root.Append(items)
	return root
}

func TestDefaults(t *testing.T) {
	s := New()
	if s.IsExpanded("anything") {
		t.Error("collapsed default: untouched path must be collapsed")
	}
	s = New(DefaultExpanded(true))
	if !s.IsExpanded("anything") {
		t.Error("expanded default: untouched path must be expanded")
	}
}

func TestToggle(t *testing.T) {
	s := New()
	s.Expand("server")
	if !s.IsExpanded("server") {
		t.Error("expand did not take")
	}
	s.Collapse("server")
	if s.IsExpanded("server") {
		t.Error("collapse did not take")
	}
	// With an expanded default the toggle set works in reverse.
	s = New(DefaultExpanded(true))
	s.Collapse("server")
	if s.IsExpanded("server") {
		t.Error("collapse under expanded default did not take")
	}
	s.Expand("server")
	if !s.IsExpanded("server") {
		t.Error("re-expand under expanded default did not take")
	}
}

func TestEvents(t *testing.T) {
	s := New()
	var got []Event
	s.Subscribe(func(e Event) { got = append(got, e) })

	s.Expand("a")
	s.Expand("a") // no transition, no event
	s.Collapse("a")
	s.Collapse("a")

	want := []Event{
		{Kind: Expanded, Path: "a"},
		{Kind: Changed, Path: "a"},
		{Kind: Collapsed, Path: "a"},
		{Kind: Changed, Path: "a"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestExpandAll(t *testing.T) {
	s := New()
	s.ExpandAll(buildTree())
	for _, p := range []string{"", "server", "items"} {
		if !s.IsExpanded(p) {
			t.Errorf("%q must be expanded", p)
		}
	}
	// Leaves are never toggled.
	if s.IsExpanded("server.host") {
		t.Error("leaf path must stay collapsed")
	}
}

func TestCollapseAllInvertsExpandAll(t *testing.T) {
	root := buildTree()
	s := New(DefaultExpanded(true))
	s.ExpandAll(root)
	s.CollapseAll()
	for _, p := range []string{"", "server", "items", "server.host", "untouched"} {
		if s.IsExpanded(p) {
			t.Errorf("%q expanded after CollapseAll", p)
		}
	}
	// The cycle is repeatable.
	s.ExpandAll(root)
	if !s.IsExpanded("server") {
		t.Error("re-expand after CollapseAll failed")
	}
}

func TestExpandToDepth(t *testing.T) {
	s := New()
	s.ExpandToDepth(buildTree(), 0)
	if !s.IsExpanded("") {
		t.Error("root must be expanded at depth 0")
	}
	if s.IsExpanded("server") {
		t.Error("depth 1 node expanded beyond the bound")
	}
	s.ExpandToDepth(buildTree(), 1)
	if !s.IsExpanded("server") || !s.IsExpanded("items") {
		t.Error("depth 1 nodes must be expanded")
	}
}

func TestExpandPath(t *testing.T) {
	s := New()
	s.ExpandPath("a.b.c")
	for _, p := range []string{"", "a", "a.b", "a.b.c"} {
		if !s.IsExpanded(p) {
			t.Errorf("%q must be expanded", p)
		}
	}
	if s.IsExpanded("a.b.other") {
		t.Error("sibling must stay collapsed")
	}
}

func TestRevealAll(t *testing.T) {
	s := New()
	s.RevealAll([]string{"a.b", "x.y"})
	for _, p := range []string{"a", "a.b", "x", "x.y"} {
		if !s.IsExpanded(p) {
			t.Errorf("%q must be expanded", p)
		}
	}
}

func TestSaveRestore(t *testing.T) {
	s := New()
	s.Expand("server")
	s.Expand("items")
	snap := s.SaveState()
	if diff := cmp.Diff([]string{"items", "server"}, snap.Expanded); diff != "" {
		t.Fatalf("snapshot (-want +got):\n%s", diff)
	}

	restored := New(DefaultExpanded(true))
	restored.RestoreState(snap)
	if !restored.IsExpanded("server") || !restored.IsExpanded("items") {
		t.Error("restored paths must be expanded")
	}
	if restored.IsExpanded("other") {
		t.Error("restore must run over a collapsed baseline")
	}
}

func TestFileStore(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	snap := Snapshot{Expanded: []string{"a", "a.b"}}
	if err := fs.Save("doc", snap); err != nil {
		t.Fatal(err)
	}
	got, err := fs.Load("doc")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(snap, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
	// Missing keys load empty.
	got, err = fs.Load("never-saved")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Expanded) != 0 {
		t.Errorf("missing key: %+v", got)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Load("bad"); err == nil {
		t.Error("corrupt snapshot must fail to load")
	}
}
