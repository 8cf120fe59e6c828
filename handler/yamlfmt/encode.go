package yamlfmt

import (
	"strings"

	"github.com/hierdoc/go-hierdoc/handler"
	"github.com/hierdoc/go-hierdoc/ir"
)

type encState struct {
	sb     strings.Builder
	indent string
	opts   *handler.Opts
	onPath map[string]bool
}

func (h *Handler) Serialize(root *ir.Node, opts ...handler.Option) (string, error) {
	es := &encState{
		opts:   handler.BuildOpts(opts...),
		onPath: map[string]bool{},
	}
	// Indent priority: explicit option, then the style detected at parse
	// time, then two spaces.
	switch {
	case es.opts.Indent != "":
		es.indent = es.opts.Indent
	case root.Meta.IndentWidth > 0 && root.Meta.IndentChar != "":
		es.indent = strings.Repeat(root.Meta.IndentChar, root.Meta.IndentWidth)
	default:
		es.indent = "  "
	}
	if err := es.encode(root, 0); err != nil {
		return "", err
	}
	out := es.sb.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

// encode writes the node at the given depth, starting at column 0.
func (es *encState) encode(n *ir.Node, depth int) error {
	if err := es.enter(n, depth); err != nil {
		return err
	}
	defer delete(es.onPath, n.ID)

	switch n.Kind {
	case ir.ScalarKind:
		es.scalar(n.Value)
		return nil
	case ir.ObjectKind, ir.DocumentKind:
		if n.Meta.Flow {
			return es.flowMapping(n)
		}
		if len(n.Children) == 0 {
			es.sb.WriteString("{}")
			return nil
		}
		for i, c := range n.Children {
			if i > 0 {
				es.newline(depth)
			}
			es.colored(handler.KeyColor, keyString(c.Name))
			es.sb.WriteString(":")
			if err := es.value(c, depth); err != nil {
				return err
			}
		}
		return nil
	case ir.ArrayKind:
		if n.Meta.Flow {
			return es.flowSequence(n)
		}
		if len(n.Children) == 0 {
			es.sb.WriteString("[]")
			return nil
		}
		for i, c := range n.Children {
			if i > 0 {
				es.newline(depth)
			}
			es.sb.WriteString("- ")
			if err := es.item(c, depth); err != nil {
				return err
			}
		}
		return nil
	}
	return handler.Serializef(handler.YAML, "cannot encode %s node", n.Kind)
}

// value writes a mapping value after its "key:" prefix.
func (es *encState) value(c *ir.Node, depth int) error {
	if inline(c) {
		es.sb.WriteString(" ")
		if err := es.enter(c, depth+1); err != nil {
			return err
		}
		defer delete(es.onPath, c.ID)
		switch {
		case c.Kind == ir.ScalarKind:
			es.scalar(c.Value)
			return nil
		case c.Meta.Flow && c.Kind == ir.ArrayKind:
			return es.flowSequence(c)
		case c.Meta.Flow:
			return es.flowMapping(c)
		case c.Kind == ir.ArrayKind:
			es.sb.WriteString("[]")
			return nil
		default:
			es.sb.WriteString("{}")
			return nil
		}
	}
	es.newline(depth + 1)
	return es.encode(c, depth+1)
}

// item writes a sequence item after its "- " prefix. Nested collections
// hang off the item marker's column.
func (es *encState) item(c *ir.Node, depth int) error {
	if inline(c) {
		if err := es.enter(c, depth+1); err != nil {
			return err
		}
		defer delete(es.onPath, c.ID)
		switch {
		case c.Kind == ir.ScalarKind:
			es.scalar(c.Value)
			return nil
		case c.Meta.Flow && c.Kind == ir.ArrayKind:
			return es.flowSequence(c)
		case c.Meta.Flow:
			return es.flowMapping(c)
		case c.Kind == ir.ArrayKind:
			es.sb.WriteString("[]")
			return nil
		default:
			es.sb.WriteString("{}")
			return nil
		}
	}
	return es.encode(c, depth+1)
}

func inline(c *ir.Node) bool {
	if c.Kind == ir.ScalarKind {
		return true
	}
	if c.Meta.Flow {
		return true
	}
	return (c.Kind == ir.ArrayKind || c.Kind == ir.ObjectKind) && len(c.Children) == 0
}

func (es *encState) flowSequence(n *ir.Node) error {
	es.sb.WriteString("[")
	for i, c := range n.Children {
		if i > 0 {
			es.sb.WriteString(", ")
		}
		if c.Kind != ir.ScalarKind {
			return handler.Serializef(handler.YAML, "flow sequence holds %s node", c.Kind)
		}
		es.scalar(c.Value)
	}
	es.sb.WriteString("]")
	return nil
}

func (es *encState) flowMapping(n *ir.Node) error {
	es.sb.WriteString("{")
	for i, c := range n.Children {
		if i > 0 {
			es.sb.WriteString(", ")
		}
		if c.Kind != ir.ScalarKind {
			return handler.Serializef(handler.YAML, "flow mapping holds %s node", c.Kind)
		}
		es.colored(handler.KeyColor, keyString(c.Name))
		es.sb.WriteString(": ")
		es.scalar(c.Value)
	}
	es.sb.WriteString("}")
	return nil
}

func (es *encState) enter(n *ir.Node, depth int) error {
	if depth > es.opts.MaxDepth {
		return handler.Serializef(handler.YAML, "max depth %d exceeded", es.opts.MaxDepth)
	}
	if es.onPath[n.ID] {
		return handler.Serializef(handler.YAML, "cycle at node %s", n.ID)
	}
	es.onPath[n.ID] = true
	return nil
}

func (es *encState) scalar(v ir.Value) {
	attr := handler.StringColor
	switch v.Kind {
	case ir.NullValue:
		attr = handler.NullColor
	case ir.BoolValue:
		attr = handler.BoolColor
	case ir.IntValue, ir.FloatValue:
		attr = handler.NumberColor
	}
	es.colored(attr, FormatScalar(v))
}

func (es *encState) colored(attr handler.ColorAttr, v string) {
	if es.opts.Colors != nil {
		v = es.opts.Colors.Color(attr, v)
	}
	es.sb.WriteString(v)
}

func (es *encState) newline(depth int) {
	es.sb.WriteString("\n")
	for range depth {
		es.sb.WriteString(es.indent)
	}
}

func keyString(key string) string {
	if needsQuote(key) {
		return quote(key)
	}
	return key
}
