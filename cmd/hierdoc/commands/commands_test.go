package commands

import "testing"

// Building the command tree walks every config struct's cli tags; a bad
// tag panics at construction time rather than at flag-parse time.
func TestRootConstructs(t *testing.T) {
	root := Root()
	if root.Name != "hierdoc" {
		t.Fatalf("root name: %q", root.Name)
	}
	want := []string{
		"detect", "convert", "fmt", "print", "get", "set",
		"rm", "mv", "add", "diff", "patch", "query",
	}
	if len(root.Children) != len(want) {
		t.Fatalf("subcommands: got %d, want %d", len(root.Children), len(want))
	}
	for i, name := range want {
		if root.Children[i].Name != name {
			t.Errorf("sub %d: got %q, want %q", i, root.Children[i].Name, name)
		}
	}
}
