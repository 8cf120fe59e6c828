package ir

import "testing"

func buildTree() (*Node, *Node, *Node, *Node) {
	root := NewObject("")
	a := NewObject("a")
	b := NewArray("b")
	x := NewScalar("", String("x"))
	root.Append(a)
	a.Append(b)
	b.Append(x)
	return root, a, b, x
}

func TestIndexPath(t *testing.T) {
	root, a, b, x := buildTree()
	idx := BuildIndex(root)
	for _, tc := range []struct {
		n    *Node
		want string
	}{
		{root, ""},
		{a, "a"},
		{b, "a.b"},
		{x, "a.b.0"},
	} {
		if got := idx.Path(tc.n); got != tc.want {
			t.Errorf("Path(%s): got %q, want %q", tc.n.Kind, got, tc.want)
		}
	}
}

func TestIndexIsAncestor(t *testing.T) {
	root, a, _, x := buildTree()
	idx := BuildIndex(root)
	if !idx.IsAncestor(root, x) {
		t.Errorf("root should be ancestor of x")
	}
	if !idx.IsAncestor(a, a) {
		t.Errorf("a should be ancestor of itself")
	}
	if idx.IsAncestor(x, a) {
		t.Errorf("x is not an ancestor of a")
	}
}

func TestIndexRemoveSubtree(t *testing.T) {
	root, a, b, x := buildTree()
	idx := BuildIndex(root)
	if len(idx) != 4 {
		t.Fatalf("got %d entries, want 4", len(idx))
	}
	idx.RemoveSubtree(a)
	if len(idx) != 1 {
		t.Fatalf("got %d entries after remove, want 1", len(idx))
	}
	if _, ok := idx[b.ID]; ok {
		t.Errorf("b still indexed")
	}
	if _, ok := idx[x.ID]; ok {
		t.Errorf("x still indexed")
	}
}

func TestIndexDepth(t *testing.T) {
	root, _, _, x := buildTree()
	idx := BuildIndex(root)
	if d := idx.Depth(root); d != 0 {
		t.Errorf("root depth: got %d, want 0", d)
	}
	if d := idx.Depth(x); d != 3 {
		t.Errorf("x depth: got %d, want 3", d)
	}
}
