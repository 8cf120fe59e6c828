package docmodel

import (
	"fmt"

	"github.com/hierdoc/go-hierdoc/ir"
)

// UpdateValue replaces the scalar payload of the referenced node.
func (m *Model) UpdateValue(ref string, v ir.Value) error {
	n, ok := m.Find(ref)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	if !n.Kind.HasValue() {
		return fmt.Errorf("%s node %q carries no value", n.Kind, ref)
	}
	n.Value = v
	return m.resync()
}

// Rename changes the referenced node's name (object key, element tag or
// heading text). Array children keep their positional names.
func (m *Model) Rename(ref, name string) error {
	n, ok := m.Find(ref)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	p := m.index.ParentOf(n)
	if p != nil && p.Kind == ir.ArrayKind {
		return fmt.Errorf("cannot rename array element %q", ref)
	}
	if p != nil && p.Kind == ir.ObjectKind {
		if sib := p.ChildByName(name); sib != nil && sib.ID != n.ID {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
	}
	n.Name = name
	return m.resync()
}

// AddChild attaches child under the referenced parent. A child without an
// ID gets a fresh one; object parents require a unique child name.
func (m *Model) AddChild(parentRef string, child *ir.Node) error {
	p, ok := m.Find(parentRef)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, parentRef)
	}
	if !p.Kind.Container() {
		return fmt.Errorf("%s node %q cannot hold children", p.Kind, parentRef)
	}
	if child.ID == "" {
		child.ID = ir.NewID()
	}
	if _, exists := m.index[child.ID]; exists {
		return fmt.Errorf("node id %q already in tree", child.ID)
	}
	if p.Kind == ir.ObjectKind && p.ChildByName(child.Name) != nil {
		return fmt.Errorf("%w: %q", ErrDuplicateName, child.Name)
	}
	p.Append(child)
	m.index.AddSubtree(child)
	return m.resync()
}

// Remove detaches the referenced node and its subtree. Removing from an
// array parent renumbers the remaining siblings.
func (m *Model) Remove(ref string) error {
	n, ok := m.Find(ref)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	p := m.index.ParentOf(n)
	if p == nil {
		return ErrRootImmutable
	}
	p.RemoveChild(n.ID)
	m.index.RemoveSubtree(n)
	return m.resync()
}

// Move re-attaches the referenced node under a new parent at the given
// position. Moving a node into its own descendant fails with
// ErrCircularMove before any mutation; the tree is left untouched on every
// error path.
func (m *Model) Move(ref, newParentRef string, at int) error {
	n, ok := m.Find(ref)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	np, ok := m.Find(newParentRef)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, newParentRef)
	}
	op := m.index.ParentOf(n)
	if op == nil {
		return ErrRootImmutable
	}
	if !np.Kind.Container() {
		return fmt.Errorf("%s node %q cannot hold children", np.Kind, newParentRef)
	}
	if m.index.IsAncestor(n, np) {
		return fmt.Errorf("%w: %q into %q", ErrCircularMove, ref, newParentRef)
	}
	if np.Kind == ir.ObjectKind && np.ID != op.ID {
		if sib := np.ChildByName(n.Name); sib != nil {
			return fmt.Errorf("%w: %q", ErrDuplicateName, n.Name)
		}
	}
	op.RemoveChild(n.ID)
	np.Insert(n, at)
	return m.resync()
}
