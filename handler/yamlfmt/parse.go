package yamlfmt

import (
	"strings"

	"github.com/hierdoc/go-hierdoc/handler"
	"github.com/hierdoc/go-hierdoc/ir"
)

// maxNesting bounds the descent on adversarial input.
const maxNesting = 256

type parser struct {
	lines []line
}

// parseBlock parses the value starting at lines[*i], which the caller has
// established to sit at the given indent. name becomes the node's name.
func (p *parser) parseBlock(i *int, indent int, name string, depth int) (*ir.Node, error) {
	if depth > maxNesting {
		return nil, handler.Parsef(handler.YAML, p.lines[*i].no,
			"nesting exceeds %d levels", maxNesting)
	}
	ln := p.lines[*i]
	if isItem(ln.text) {
		return p.parseSequence(i, indent, name, depth)
	}
	if _, _, ok := splitKey(ln.text); ok {
		return p.parseMapping(i, indent, name, depth)
	}
	// A lone scalar line.
	*i++
	return p.scalarNode(name, ln.text, ln.no)
}

func isItem(t string) bool {
	return t == "-" || strings.HasPrefix(t, "- ")
}

func (p *parser) parseSequence(i *int, indent int, name string, depth int) (*ir.Node, error) {
	arr := ir.NewArray(name)
	for *i < len(p.lines) {
		ln := p.lines[*i]
		if ln.indent != indent || !isItem(ln.text) {
			break
		}
		rest := strings.TrimSpace(strings.TrimPrefix(ln.text, "-"))
		if rest == "" {
			*i++
			child, err := p.parseNested(i, indent, "", ln.no, depth)
			if err != nil {
				return nil, err
			}
			arr.Append(child)
			continue
		}
		// "- key: value" opens a compact mapping whose body continues on
		// the following deeper-indented lines. Rewriting the current line
		// to the item body and re-descending handles both cases uniformly.
		itemIndent := ln.indent + (len(ln.text) - len(rest))
		p.lines[*i] = line{no: ln.no, indent: itemIndent, text: rest}
		child, err := p.parseBlock(i, itemIndent, "", depth+1)
		if err != nil {
			return nil, err
		}
		arr.Append(child)
	}
	return arr, nil
}

func (p *parser) parseMapping(i *int, indent int, name string, depth int) (*ir.Node, error) {
	obj := ir.NewObject(name)
	for *i < len(p.lines) {
		ln := p.lines[*i]
		if ln.indent != indent {
			break
		}
		if isItem(ln.text) {
			return nil, handler.Parsef(handler.YAML, ln.no,
				"sequence item in mapping")
		}
		key, rest, ok := splitKey(ln.text)
		if !ok {
			return nil, handler.Parsef(handler.YAML, ln.no,
				"expected key: value, got %q", ln.text)
		}
		key = unquoteKey(strings.TrimSpace(key))
		if obj.ChildByName(key) != nil {
			return nil, handler.Parsef(handler.YAML, ln.no,
				"duplicate key %q", key)
		}
		if rest == "" {
			*i++
			child, err := p.parseNested(i, indent, key, ln.no, depth)
			if err != nil {
				return nil, err
			}
			obj.Append(child)
			continue
		}
		*i++
		child, err := p.scalarNode(key, rest, ln.no)
		if err != nil {
			return nil, err
		}
		obj.Append(child)
	}
	return obj, nil
}

// parseNested parses the value of an empty key or item from the following
// more-indented lines; with no such lines the value is null.
func (p *parser) parseNested(i *int, indent int, name string, lineNo, depth int) (*ir.Node, error) {
	if *i >= len(p.lines) || p.lines[*i].indent <= indent {
		// Sequences are conventionally allowed at the key's own indent.
		if *i < len(p.lines) && p.lines[*i].indent == indent && isItem(p.lines[*i].text) && name != "" {
			return p.parseSequence(i, indent, name, depth+1)
		}
		return ir.NewScalar(name, ir.Null()), nil
	}
	return p.parseBlock(i, p.lines[*i].indent, name, depth+1)
}

// scalarNode turns a value string into a scalar or flow collection node.
func (p *parser) scalarNode(name, raw string, lineNo int) (*ir.Node, error) {
	switch {
	case strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]"):
		return p.flowSequence(name, raw, lineNo)
	case strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}"):
		return p.flowMapping(name, raw, lineNo)
	}
	return ir.NewScalar(name, Coerce(raw)), nil
}

func (p *parser) flowSequence(name, raw string, lineNo int) (*ir.Node, error) {
	arr := ir.NewArray(name)
	arr.Meta.Flow = true
	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return arr, nil
	}
	for _, part := range splitFlow(inner) {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "[") || strings.HasPrefix(part, "{") {
			return nil, handler.Parsef(handler.YAML, lineNo,
				"nested flow collections are not supported")
		}
		arr.Append(ir.NewScalar("", Coerce(part)))
	}
	return arr, nil
}

func (p *parser) flowMapping(name, raw string, lineNo int) (*ir.Node, error) {
	obj := ir.NewObject(name)
	obj.Meta.Flow = true
	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return obj, nil
	}
	for _, part := range splitFlow(inner) {
		part = strings.TrimSpace(part)
		key, rest, ok := splitFlowKey(part)
		if !ok {
			return nil, handler.Parsef(handler.YAML, lineNo,
				"expected key: value in flow mapping, got %q", part)
		}
		if strings.HasPrefix(rest, "[") || strings.HasPrefix(rest, "{") {
			return nil, handler.Parsef(handler.YAML, lineNo,
				"nested flow collections are not supported")
		}
		obj.Append(ir.NewScalar(unquoteKey(key), Coerce(rest)))
	}
	return obj, nil
}

// splitFlow splits flow-collection content on commas outside quotes.
func splitFlow(inner string) []string {
	var (
		parts []string
		quote byte
		start int
	)
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case quote == 0 && (c == '\'' || c == '"'):
			quote = c
		case quote == c && quote != 0:
			if quote == '"' && i > 0 && inner[i-1] == '\\' {
				continue
			}
			quote = 0
		case quote == 0 && c == ',':
			parts = append(parts, inner[start:i])
			start = i + 1
		}
	}
	return append(parts, inner[start:])
}

// splitFlowKey splits "key: value" inside a flow mapping. Unlike block
// keys, the colon may be followed immediately by the value end.
func splitFlowKey(part string) (string, string, bool) {
	key, rest, ok := splitKey(part)
	if ok {
		return strings.TrimSpace(key), rest, true
	}
	if i := strings.IndexByte(part, ':'); i >= 0 {
		return strings.TrimSpace(part[:i]), strings.TrimSpace(part[i+1:]), true
	}
	return "", "", false
}
