package docmodel

import (
	"strconv"

	"github.com/hierdoc/go-hierdoc/handler"
	"github.com/hierdoc/go-hierdoc/handler/jsonfmt"
	"github.com/hierdoc/go-hierdoc/handler/mdfmt"
	"github.com/hierdoc/go-hierdoc/handler/xmlfmt"
	"github.com/hierdoc/go-hierdoc/handler/yamlfmt"
	"github.com/hierdoc/go-hierdoc/ir"
	"github.com/hierdoc/go-hierdoc/ir/dpath"
)

// Model owns one document tree and its serialized form. It is not safe for
// concurrent mutation.
type Model struct {
	reg    *handler.Registry
	root   *ir.Node
	index  ir.Index
	format string
	source string
	dirty  bool
}

// DefaultRegistry returns a registry with all four built-in formats.
func DefaultRegistry() *handler.Registry {
	reg := handler.NewRegistry()
	reg.Register(handler.JSON, func() handler.Handler { return jsonfmt.New() })
	reg.Register(handler.XML, func() handler.Handler { return xmlfmt.New() })
	reg.Register(handler.YAML, func() handler.Handler { return yamlfmt.New() })
	reg.Register(handler.Markdown, func() handler.Handler { return mdfmt.New() })
	return reg
}

func New(reg *handler.Registry) *Model {
	return &Model{reg: reg}
}

// Load parses text in the given format and replaces the model's tree.
// With an empty format the registry's sniffing precedence decides. The
// dirty flag is cleared.
func (m *Model) Load(text, format string) error {
	if format == "" {
		format = m.reg.DetectFormat(text)
	}
	h, err := m.reg.Resolve(format)
	if err != nil {
		return err
	}
	root, err := h.Parse(text)
	if err != nil {
		return err
	}
	m.root = root
	m.index = ir.BuildIndex(root)
	m.format = format
	m.source = text
	m.dirty = false
	return nil
}

// Loaded reports whether a document has been loaded.
func (m *Model) Loaded() bool { return m.root != nil }

func (m *Model) Root() *ir.Node { return m.root }
func (m *Model) Format() string { return m.format }
func (m *Model) Source() string { return m.source }
func (m *Model) Dirty() bool { return m.dirty }

// Path returns n's dot-joined path from the root.
func (m *Model) Path(n *ir.Node) string { return m.index.Path(n) }

// Find resolves a node reference: a node ID, or a dot-joined path walked
// from the root by name (array positions are their decimal names).
// "" and "." denote the root.
func (m *Model) Find(ref string) (*ir.Node, bool) {
	if m.root == nil {
		return nil, false
	}
	if n, ok := m.index[ref]; ok {
		return n, true
	}
	if dpath.IsRoot(ref) {
		return m.root, true
	}
	cur := m.root
	for _, seg := range dpath.Split(ref) {
		next := cur.ChildByName(seg)
		if next == nil {
			// Positional fallback for unnamed children (XML, Markdown).
			if i, err := strconv.Atoi(seg); err == nil && i >= 0 && i < len(cur.Children) {
				next = cur.Children[i]
			}
		}
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Serialize renders the current tree through the active handler.
func (m *Model) Serialize(opts ...handler.Option) (string, error) {
	if m.root == nil {
		return "", ErrNotLoaded
	}
	h, err := m.reg.Resolve(m.format)
	if err != nil {
		return "", err
	}
	return h.Serialize(m.root, opts...)
}

// resync re-serializes source text after a mutation and marks the model
// dirty. Mutations call it last, after the tree change succeeded.
func (m *Model) resync() error {
	text, err := m.Serialize()
	if err != nil {
		return err
	}
	m.source = text
	m.dirty = true
	return nil
}
