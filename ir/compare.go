package ir

import "maps"

// Equal reports structural equality of two subtrees: kind, name, value,
// attributes, heading levels and children, in order. Identity (IDs,
// parent links) and formatting metadata are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Name != b.Name {
		return false
	}
	if !a.Value.Equal(b.Value) {
		return false
	}
	if !maps.Equal(a.Attrs, b.Attrs) {
		return false
	}
	if a.Kind == HeadingKind && a.Meta.Level != b.Meta.Level {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
