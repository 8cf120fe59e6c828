package xmlfmt

import (
	"regexp"
	"sort"
	"strings"

	"github.com/hierdoc/go-hierdoc/handler"
	"github.com/hierdoc/go-hierdoc/ir"
)

var nameRx = regexp.MustCompile(`^[a-zA-Z_:][-a-zA-Z0-9_:.]*$`)

// ValidName reports whether v is a legal element or attribute name.
func ValidName(v string) bool {
	return nameRx.MatchString(v)
}

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
	es.indent = es.opts.Indent
	if err := es.encode(root, 0); err != nil {
		return "", err
	}
	return es.sb.String(), nil
}

func (es *encState) encode(n *ir.Node, depth int) error {
	if depth > es.opts.MaxDepth {
		return handler.Serializef(handler.XML, "max depth %d exceeded", es.opts.MaxDepth)
	}
	if es.onPath[n.ID] {
		return handler.Serializef(handler.XML, "cycle at node %s", n.ID)
	}
	es.onPath[n.ID] = true
	defer delete(es.onPath, n.ID)

	switch n.Kind {
	case ir.DocumentKind:
		for i, c := range n.Children {
			if i > 0 && es.indent != "" {
				es.sb.WriteString("\n")
			}
			if err := es.encode(c, depth); err != nil {
				return err
			}
		}
		return nil
	case ir.ElementKind:
		return es.element(n, depth)
	case ir.TextKind:
		es.sb.WriteString(Escape(n.Value.Str))
		return nil
	case ir.CDataKind:
		es.sb.WriteString("<![CDATA[")
		es.sb.WriteString(n.Value.Str)
		es.sb.WriteString("]]>")
		return nil
	case ir.CommentKind:
		es.sb.WriteString("<!--")
		es.sb.WriteString(n.Value.Str)
		es.sb.WriteString("-->")
		return nil
	case ir.ProcInstKind:
		es.sb.WriteString("<?")
		es.sb.WriteString(n.Name)
		if n.Value.Str != "" {
			es.sb.WriteString(" ")
			es.sb.WriteString(n.Value.Str)
		}
		es.sb.WriteString("?>")
		return nil
	}
	return handler.Serializef(handler.XML, "cannot encode %s node", n.Kind)
}

func (es *encState) element(n *ir.Node, depth int) error {
	if !ValidName(n.Name) {
		return handler.Serializef(handler.XML, "invalid element name %q", n.Name)
	}
	es.sb.WriteString("<")
	es.sb.WriteString(n.Name)
	for _, k := range sortedKeys(n.Attrs) {
		es.sb.WriteString(" ")
		es.sb.WriteString(k)
		es.sb.WriteString(`="`)
		es.sb.WriteString(Escape(n.Attrs[k]))
		es.sb.WriteString(`"`)
	}
	if len(n.Children) == 0 {
		// An element carrying its own scalar value inlines it; an empty
		// element self-closes.
		if !n.Value.IsNull() {
			es.sb.WriteString(">")
			es.sb.WriteString(Escape(n.Value.Text()))
			es.sb.WriteString("</")
			es.sb.WriteString(n.Name)
			es.sb.WriteString(">")
			return nil
		}
		es.sb.WriteString(" />")
		return nil
	}
	es.sb.WriteString(">")
	for _, c := range n.Children {
		if err := es.encode(c, depth+1); err != nil {
			return err
		}
	}
	es.sb.WriteString("</")
	es.sb.WriteString(n.Name)
	es.sb.WriteString(">")
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
