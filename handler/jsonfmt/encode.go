package jsonfmt

import (
	"encoding/json"
	"sort"
	"strconv"
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
		indent: "  ",
		opts:   handler.BuildOpts(opts...),
		onPath: map[string]bool{},
	}
	if es.opts.Indent != "" {
		es.indent = es.opts.Indent
	}
	if err := es.encode(root, 0); err != nil {
		return "", err
	}
	return es.sb.String(), nil
}

func (es *encState) encode(n *ir.Node, depth int) error {
	if depth > es.opts.MaxDepth {
		return handler.Serializef(handler.JSON, "max depth %d exceeded", es.opts.MaxDepth)
	}
	if es.onPath[n.ID] {
		return handler.Serializef(handler.JSON, "cycle at node %s", n.ID)
	}
	es.onPath[n.ID] = true
	defer delete(es.onPath, n.ID)

	switch n.Kind {
	case ir.ScalarKind:
		es.scalar(n.Value)
		return nil
	case ir.ObjectKind, ir.DocumentKind:
		if len(n.Children) == 0 {
			es.sb.WriteString("{}")
			return nil
		}
		es.sb.WriteString("{")
		for i, c := range n.Children {
			if i > 0 {
				es.sb.WriteString(",")
			}
			es.newline(depth + 1)
			es.colored(handler.KeyColor, mustJSONString(c.Name))
			es.sb.WriteString(": ")
			if err := es.encode(c, depth+1); err != nil {
				return err
			}
		}
		es.newline(depth)
		es.sb.WriteString("}")
		return nil
	case ir.ArrayKind:
		if len(n.Children) == 0 {
			es.sb.WriteString("[]")
			return nil
		}
		es.sb.WriteString("[")
		for i, c := range byPosition(n.Children) {
			if i > 0 {
				es.sb.WriteString(",")
			}
			es.newline(depth + 1)
			if err := es.encode(c, depth+1); err != nil {
				return err
			}
		}
		es.newline(depth)
		es.sb.WriteString("]")
		return nil
	}
	return handler.Serializef(handler.JSON, "cannot encode %s node", n.Kind)
}

func (es *encState) scalar(v ir.Value) {
	switch v.Kind {
	case ir.NullValue:
		es.colored(handler.NullColor, "null")
	case ir.BoolValue:
		es.colored(handler.BoolColor, strconv.FormatBool(v.Bool))
	case ir.IntValue:
		es.colored(handler.NumberColor, strconv.FormatInt(v.Int64, 10))
	case ir.FloatValue:
		es.colored(handler.NumberColor, formatFloat(v.Num))
	default:
		es.colored(handler.StringColor, mustJSONString(v.Str))
	}
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

// byPosition sorts array children by their parsed-integer names so that
// serialization honors positions even on a tree whose child order drifted.
func byPosition(children []*ir.Node) []*ir.Node {
	res := append([]*ir.Node(nil), children...)
	sort.SliceStable(res, func(i, j int) bool {
		a, aerr := strconv.Atoi(res[i].Name)
		b, berr := strconv.Atoi(res[j].Name)
		if aerr != nil || berr != nil {
			return false
		}
		return a < b
	})
	return res
}

func mustJSONString(v string) string {
	d, err := json.Marshal(v)
	if err != nil {
		// Strings always marshal.
		return `""`
	}
	return string(d)
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Keep plain decimals where 'g' produces them; JSON has no Inf/NaN, but
	// those cannot appear here since parse only admits finite numbers.
	return s
}
