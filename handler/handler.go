package handler

import "github.com/hierdoc/go-hierdoc/ir"

// Editable describes which parts of a node the editing surface may change
// for a given format. It is a static capability description.
type Editable struct {
	Key       bool
	Value     bool
	Type      bool
	Structure bool
}

// Handler converts between one textual format and the IR tree.
type Handler interface {
	// Parse converts text into a node tree, failing with *ParseError on
	// malformed input.
	Parse(text string) (*ir.Node, error)

	// Serialize converts a node tree back to text, failing with
	// *SerializeError on an unknown kind or a cycle.
	Serialize(root *ir.Node, opts ...Option) (string, error)

	// Detect is a cheap content sniff for this handler's format.
	Detect(text string) bool

	// EditableFields describes this format's editing capabilities.
	EditableFields() Editable
}
