// Package xmlfmt converts XML text to and from the IR tree.
//
// Parsing rides on encoding/xml's token decoder; elements, text, CDATA,
// comments and processing instructions map onto their IR kinds.
// Whitespace-only text nodes are preserved and flagged, with significance
// inside pre/code/script/style elements or under xml:space="preserve".
// encoding/xml folds CDATA sections into character data, so CDATA parses
// as text; CDataKind nodes created programmatically still serialize as
// CDATA sections. Namespace prefixes declared via xmlns are resolved away
// by the decoder; such names keep their local part and the xmlns
// attributes are preserved verbatim.
// Serialization emits attributes sorted by key for determinism and
// validates element names against the XML name grammar.
package xmlfmt

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/hierdoc/go-hierdoc/handler"
	"github.com/hierdoc/go-hierdoc/ir"
)

// Handler is the XML format adapter.
type Handler struct{}

var _ handler.Handler = (*Handler)(nil)

func New() *Handler { return &Handler{} }

func (h *Handler) EditableFields() handler.Editable {
	return handler.Editable{Key: true, Value: true, Type: false, Structure: true}
}

// Detect requires "<...>" bounds.
func (h *Handler) Detect(text string) bool {
	return handler.TrimBounds(text, "<", ">")
}

// preserveTags are elements whose whitespace is significant.
var preserveTags = map[string]bool{
	"pre": true, "code": true, "script": true, "style": true,
}

func (h *Handler) Parse(text string) (*ir.Node, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	doc := ir.NewDocument()
	// stack[0] is the synthetic document root; preserve[i] tracks whether
	// whitespace is significant at stack depth i.
	stack := []*ir.Node{doc}
	preserve := []bool{false}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &handler.ParseError{Format: handler.XML, Msg: err.Error()}
		}
		top := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			el := ir.NewElement(flatName(t.Name), nil)
			for _, a := range t.Attr {
				if el.Attrs == nil {
					el.Attrs = map[string]string{}
				}
				el.Attrs[flatName(a.Name)] = a.Value
			}
			top.Append(el)
			sig := preserve[len(preserve)-1] ||
				preserveTags[el.Name] ||
				el.Attrs["xml:space"] == "preserve"
			stack = append(stack, el)
			preserve = append(preserve, sig)
			if len(stack) > handler.DefaultMaxDepth {
				return nil, handler.Parsef(handler.XML, 0, "element nesting exceeds %d", handler.DefaultMaxDepth)
			}
		case xml.EndElement:
			if len(stack) == 1 {
				return nil, handler.Parsef(handler.XML, 0, "unexpected </%s>", flatName(t.Name))
			}
			stack = stack[:len(stack)-1]
			preserve = preserve[:len(preserve)-1]
		case xml.CharData:
			txt := ir.NewText(string(t))
			ws := strings.TrimSpace(string(t)) == ""
			txt.Meta.WhitespaceOnly = ws
			txt.Meta.Significant = !ws || preserve[len(preserve)-1]
			// Whitespace between top-level constructs is formatting noise.
			if ws && top.Kind == ir.DocumentKind {
				continue
			}
			top.Append(txt)
		case xml.Comment:
			c := ir.New(ir.CommentKind, "")
			c.Value = ir.String(string(t))
			top.Append(c)
		case xml.ProcInst:
			if t.Target == "xml" && top.Kind == ir.DocumentKind {
				// The declaration is re-synthesized on output.
				continue
			}
			pi := ir.New(ir.ProcInstKind, t.Target)
			pi.Value = ir.String(string(t.Inst))
			top.Append(pi)
		case xml.Directive:
			// DOCTYPE and friends are not modeled.
		}
	}
	if len(stack) != 1 {
		return nil, handler.Parsef(handler.XML, 0, "unclosed <%s>", stack[len(stack)-1].Name)
	}
	// A document with a single element collapses to that element.
	if len(doc.Children) == 1 && doc.Children[0].Kind == ir.ElementKind {
		root := doc.Children[0]
		root.Parent = ""
		return root, nil
	}
	if len(doc.Children) == 0 {
		return nil, handler.Parsef(handler.XML, 0, "no root element")
	}
	return doc, nil
}

func flatName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	// encoding/xml resolves declared prefixes to their namespace URIs. A
	// URI is not a legal name prefix, so names in a declared namespace keep
	// their local part; the xmlns attributes ride along verbatim and still
	// carry the declaration. Undeclared prefixes stay in Space untouched
	// and round-trip as prefix:local.
	if !ValidName(n.Space) {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
