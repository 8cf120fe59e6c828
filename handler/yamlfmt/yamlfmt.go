// Package yamlfmt converts a practical YAML subset to and from the IR tree
// with a hand-written line and indentation engine.
//
// # Supported Subset
//
// Block mappings and sequences, single-level flow collections ([...] and
// {...}), quoted and plain scalars, comments, and per-document indentation
// style. Anchors, aliases, multi-document streams, block scalars and nested
// flow collections are out of scope.
//
// # Pipeline
//
// Parsing runs in three phases:
//
//  1. Scanner: strips comments (quote-aware) and trailing whitespace,
//     records per-line indentation, and detects the document's dominant
//     indent style.
//
//  2. Recursive descent over the line index plus a required indentation
//     level, classifying each line as a sequence item, a key/value pair, or
//     a continuation block for an empty value.
//
//  3. Scalar coercion, applying the fixed ladder: null, booleans, quoted
//     strings, integers, floats, octal and hex integers, raw strings.
//
// The detected indent style is stored in the root node's metadata so that
// serialization is symmetric with the input.
package yamlfmt

import (
	"strings"

	"github.com/hierdoc/go-hierdoc/handler"
	"github.com/hierdoc/go-hierdoc/ir"
)

// Handler is the YAML format adapter.
type Handler struct{}

var _ handler.Handler = (*Handler)(nil)

func New() *Handler { return &Handler{} }

func (h *Handler) EditableFields() handler.Editable {
	return handler.Editable{Key: true, Value: true, Type: true, Structure: true}
}

// Detect accepts text containing a ":" and neither "<" nor "{". The
// heuristic is weak on purpose; the registry's precedence (after JSON and
// XML) is what keeps it workable.
func (h *Handler) Detect(text string) bool {
	return strings.Contains(text, ":") &&
		!strings.Contains(text, "<") &&
		!strings.Contains(text, "{")
}

func (h *Handler) Parse(text string) (*ir.Node, error) {
	lines, style := scan(text)
	if len(lines) == 0 {
		return ir.NewScalar("", ir.Null()), nil
	}
	p := &parser{lines: lines}
	i := 0
	root, err := p.parseBlock(&i, lines[0].indent, "", 0)
	if err != nil {
		return nil, err
	}
	if i < len(lines) {
		return nil, handler.Parsef(handler.YAML, lines[i].no,
			"unexpected content at indent %d", lines[i].indent)
	}
	root.Meta.IndentWidth = style.width
	root.Meta.IndentChar = style.char
	return root, nil
}
