package ir

import (
	"github.com/hierdoc/go-hierdoc/ir/dpath"
)

// Index is the id-keyed arena resolving node IDs to nodes. The document
// model owns one Index per tree; parent back-references resolve through it.
type Index map[string]*Node

// BuildIndex indexes the whole subtree rooted at root.
func BuildIndex(root *Node) Index {
	idx := Index{}
	idx.AddSubtree(root)
	return idx
}

// AddSubtree registers n and all of its descendants.
func (idx Index) AddSubtree(n *Node) {
	n.Visit(func(c *Node, isPost bool) (bool, error) {
		if !isPost {
			idx[c.ID] = c
		}
		return true, nil
	})
}

// RemoveSubtree forgets n and all of its descendants.
func (idx Index) RemoveSubtree(n *Node) {
	n.Visit(func(c *Node, isPost bool) (bool, error) {
		if !isPost {
			delete(idx, c.ID)
		}
		return true, nil
	})
}

// ParentOf resolves n's parent back-reference, nil at the root.
func (idx Index) ParentOf(n *Node) *Node {
	if n.Parent == "" {
		return nil
	}
	return idx[n.Parent]
}

// IsAncestor reports whether a is on the parent chain of n (or is n
// itself). The chain is bounded by the arena size, so a corrupted chain
// terminates rather than looping.
func (idx Index) IsAncestor(a, n *Node) bool {
	steps := len(idx) + 1
	for cur := n; cur != nil && steps > 0; steps-- {
		if cur.ID == a.ID {
			return true
		}
		cur = idx.ParentOf(cur)
	}
	return false
}

// Path returns the dot-joined path of n from its root, "" for the root
// itself. Path segments are node names, which for array children are the
// decimal positions.
func (idx Index) Path(n *Node) string {
	var segs []string
	steps := len(idx) + 1
	for cur := n; cur != nil && steps > 0; steps-- {
		p := idx.ParentOf(cur)
		if p == nil {
			break
		}
		segs = append(segs, cur.Name)
		cur = p
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return dpath.Join(segs)
}

// Depth returns the number of edges between n and its root.
func (idx Index) Depth(n *Node) int {
	d := 0
	steps := len(idx) + 1
	for cur := idx.ParentOf(n); cur != nil && steps > 0; steps-- {
		d++
		cur = idx.ParentOf(cur)
	}
	return d
}
