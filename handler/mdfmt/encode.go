package mdfmt

import (
	"strings"

	"github.com/hierdoc/go-hierdoc/handler"
	"github.com/hierdoc/go-hierdoc/ir"
)

type encState struct {
	parts  []string
	opts   *handler.Opts
	onPath map[string]bool
}

func (h *Handler) Serialize(root *ir.Node, opts ...handler.Option) (string, error) {
	es := &encState{
		opts:   handler.BuildOpts(opts...),
		onPath: map[string]bool{},
	}
	if err := es.encode(root, 0); err != nil {
		return "", err
	}
	out := strings.Join(es.parts, "\n\n")
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

func (es *encState) encode(n *ir.Node, depth int) error {
	if depth > es.opts.MaxDepth {
		return handler.Serializef(handler.Markdown, "max depth %d exceeded", es.opts.MaxDepth)
	}
	if es.onPath[n.ID] {
		return handler.Serializef(handler.Markdown, "cycle at node %s", n.ID)
	}
	es.onPath[n.ID] = true
	defer delete(es.onPath, n.ID)

	switch n.Kind {
	case ir.DocumentKind:
		for _, c := range n.Children {
			if err := es.encode(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	case ir.HeadingKind:
		level := n.Meta.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		es.part(es.colored(handler.MarkupColor, strings.Repeat("#", level)) + " " + n.Name)
		for _, c := range n.Children {
			if err := es.encode(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	case ir.ContentKind:
		es.part(es.colorContent(n))
		return nil
	}
	return handler.Serializef(handler.Markdown, "cannot encode %s node", n.Kind)
}

func (es *encState) part(v string) {
	es.parts = append(es.parts, v)
}

func (es *encState) colored(attr handler.ColorAttr, v string) string {
	if es.opts.Colors != nil {
		return es.opts.Colors.Color(attr, v)
	}
	return v
}

func (es *encState) colorContent(n *ir.Node) string {
	v := n.Value.Str
	if es.opts.Colors == nil {
		return v
	}
	switch n.Meta.ContentTag {
	case "code":
		return es.opts.Colors.Color(handler.StringColor, v)
	case "blockquote":
		return es.opts.Colors.Color(handler.CommentColor, v)
	}
	return v
}
