// Package jsonfmt converts JSON text to and from the IR tree.
//
// Parsing rides on encoding/json's token stream so that object key order
// is preserved in the tree. Serialization pretty-prints with a 2-space
// indent, matching the JSON.stringify(value, null, 2) convention.
package jsonfmt

import (
	"encoding/json"
	"strings"

	"github.com/hierdoc/go-hierdoc/handler"
	"github.com/hierdoc/go-hierdoc/ir"
)

// Handler is the JSON format adapter.
type Handler struct{}

var _ handler.Handler = (*Handler)(nil)

func New() *Handler { return &Handler{} }

func (h *Handler) EditableFields() handler.Editable {
	return handler.Editable{Key: true, Value: true, Type: true, Structure: true}
}

// Detect requires matching {} or [] bounds and a successful parse.
func (h *Handler) Detect(text string) bool {
	if !handler.TrimBounds(text, "{", "}") && !handler.TrimBounds(text, "[", "]") {
		return false
	}
	return json.Valid([]byte(text))
}

func (h *Handler) Parse(text string) (*ir.Node, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	root, err := parseValue(dec, "")
	if err != nil {
		return nil, &handler.ParseError{Format: handler.JSON, Msg: err.Error()}
	}
	// Trailing garbage after the first value is malformed input.
	if dec.More() {
		return nil, handler.Parsef(handler.JSON, 0, "unexpected data after top-level value")
	}
	return root, nil
}

func parseValue(dec *json.Decoder, name string) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, name, tok)
}

func parseToken(dec *json.Decoder, name string, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := ir.NewObject(name)
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				child, err := parseValue(dec, key)
				if err != nil {
					return nil, err
				}
				obj.Append(child)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			arr := ir.NewArray(name)
			for dec.More() {
				child, err := parseValue(dec, "")
				if err != nil {
					return nil, err
				}
				arr.Append(child)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		}
		return nil, handler.Parsef(handler.JSON, 0, "unexpected delimiter %q", t.String())
	case nil, bool, string:
		return ir.NewScalar(name, ir.FromInterface(t)), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return ir.NewScalar(name, ir.Int(i)), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return ir.NewScalar(name, ir.Float(f)), nil
	}
	return nil, handler.Parsef(handler.JSON, 0, "unexpected token %v", tok)
}
