package ir

import (
	"maps"
	"strconv"

	"github.com/google/uuid"
)

// Meta carries kind-specific extras a handler needs for symmetric
// re-serialization. Fields are meaningful only for the kinds noted.
type Meta struct {
	// Heading level (1..6), HeadingKind.
	Level int
	// Content classifier tag: "paragraph", "code", "blockquote" or "list",
	// ContentKind.
	ContentTag string
	// Fence language of a code content section, ContentKind.
	Lang string
	// Detected indentation of the source document, set on the root by the
	// YAML handler.
	IndentWidth int
	IndentChar  string
	// Collection was written in flow style ([...], {...}), YAML.
	Flow bool
	// Whitespace flags for XML text nodes.
	WhitespaceOnly bool
	Significant    bool
}

// Node is a single entry in the unified document tree. Kind selects which
// fields are meaningful; see the package documentation for the variant map.
type Node struct {
	ID   string
	Kind Kind

	// Name is the object key, array position ("0", "1", ...), element tag
	// or heading text, depending on Kind.
	Name string

	// Value is present only on value-bearing kinds (Kind.HasValue).
	Value Value

	// Attrs is present only on ElementKind. Key order is not significant.
	Attrs map[string]string

	// Children are owned by this node; order is significant.
	Children []*Node

	Meta Meta

	// Parent is the owning node's ID, empty at the root. It is a non-owning
	// back-reference resolved through an Index.
	Parent string
}

// NewID returns a fresh node ID.
func NewID() string { return uuid.NewString() }

func New(kind Kind, name string) *Node {
	return &Node{ID: NewID(), Kind: kind, Name: name}
}

func NewObject(name string) *Node { return New(ObjectKind, name) }
func NewArray(name string) *Node { return New(ArrayKind, name) }
func NewDocument() *Node { return New(DocumentKind, "") }

func NewScalar(name string, v Value) *Node {
	n := New(ScalarKind, name)
	n.Value = v
	return n
}

func NewElement(tag string, attrs map[string]string) *Node {
	n := New(ElementKind, tag)
	if len(attrs) > 0 {
		n.Attrs = maps.Clone(attrs)
	}
	return n
}

func NewText(v string) *Node {
	n := New(TextKind, "")
	n.Value = String(v)
	return n
}

func NewHeading(text string, level int) *Node {
	n := New(HeadingKind, text)
	n.Meta.Level = level
	return n
}

func NewContent(text string) *Node {
	n := New(ContentKind, "")
	n.Value = String(text)
	return n
}

// Append attaches child at the end of n's children, fixing the parent link
// and, for array parents, the positional name.
func (n *Node) Append(child *Node) *Node {
	child.Parent = n.ID
	if n.Kind == ArrayKind {
		child.Name = strconv.Itoa(len(n.Children))
	}
	n.Children = append(n.Children, child)
	return n
}

// Insert attaches child at position at, clamped to [0, len(children)].
// Array parents are renumbered afterwards.
func (n *Node) Insert(child *Node, at int) {
	if at < 0 || at > len(n.Children) {
		at = len(n.Children)
	}
	child.Parent = n.ID
	n.Children = append(n.Children, nil)
	copy(n.Children[at+1:], n.Children[at:])
	n.Children[at] = child
	if n.Kind == ArrayKind {
		n.Renumber()
	}
}

// RemoveChild detaches the child with the given ID and returns it, or nil
// if absent. Array parents are renumbered to keep positions contiguous.
func (n *Node) RemoveChild(id string) *Node {
	i := n.ChildIndex(id)
	if i < 0 {
		return nil
	}
	c := n.Children[i]
	n.Children = append(n.Children[:i], n.Children[i+1:]...)
	c.Parent = ""
	if n.Kind == ArrayKind {
		n.Renumber()
	}
	return c
}

// Renumber rewrites array children names to their decimal positions.
func (n *Node) Renumber() {
	if n.Kind != ArrayKind {
		return
	}
	for i, c := range n.Children {
		c.Name = strconv.Itoa(i)
	}
}

// ChildByName returns the first child whose Name matches, or nil.
func (n *Node) ChildByName(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildIndex returns the position of the child with the given ID, or -1.
func (n *Node) ChildIndex(id string) int {
	for i, c := range n.Children {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Clone deep-copies the subtree rooted at n. Cloned nodes get fresh IDs so
// the copy can be attached into the same tree without violating ID
// uniqueness.
func (n *Node) Clone() *Node {
	res := &Node{
		ID:    NewID(),
		Kind:  n.Kind,
		Name:  n.Name,
		Value: n.Value,
		Meta:  n.Meta,
	}
	if n.Attrs != nil {
		res.Attrs = maps.Clone(n.Attrs)
	}
	res.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		cc := c.Clone()
		cc.Parent = res.ID
		res.Children[i] = cc
	}
	return res
}

// Visit walks the subtree rooted at n. f is called before descending
// (isPost false) and after (isPost true); returning false from the pre call
// skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

// Walk is the depth-bounded pre-order traversal used on untrusted trees.
// It fails with ErrMaxDepth past maxDepth levels and with ErrCycle on a
// repeated ID.
func (n *Node) Walk(maxDepth int, f func(n *Node, depth int) error) error {
	seen := map[string]bool{}
	return walk(n, 0, maxDepth, seen, f)
}

func walk(n *Node, depth, maxDepth int, seen map[string]bool, f func(n *Node, depth int) error) error {
	if maxDepth > 0 && depth > maxDepth {
		return ErrMaxDepth
	}
	if seen[n.ID] {
		return ErrCycle
	}
	seen[n.ID] = true
	if err := f(n, depth); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := walk(c, depth+1, maxDepth, seen, f); err != nil {
			return err
		}
	}
	return nil
}
