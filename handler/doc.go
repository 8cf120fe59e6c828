// Package handler defines the format adapter contract and the registry
// resolving format names to adapters.
//
// # Overview
//
// A Handler converts between one textual format and the unified IR tree:
//
//	node, err := h.Parse(text)
//	text, err := h.Serialize(node)
//
// Handlers also sniff their own format (Detect) and describe which parts of
// a node an editor may change (EditableFields).
//
// # Registry
//
// The Registry is an explicit object constructed at the composition root
// and passed to consumers; there is no package-global registry. Resolve
// fails with ErrUnknownFormat for unregistered names. DetectFormat applies
// the fixed sniffing precedence JSON, XML, YAML, Markdown, defaulting to
// JSON.
//
// # Errors
//
// Parse failures are reported as *ParseError wrapping ErrParse; they are
// recoverable, the caller may retry with different text or format.
// Serialize failures (*SerializeError wrapping ErrSerialize) indicate a
// broken tree, an unknown kind or a cycle, and are programming faults.
//
// # Related Packages
//
//   - github.com/hierdoc/go-hierdoc/handler/jsonfmt
//   - github.com/hierdoc/go-hierdoc/handler/xmlfmt
//   - github.com/hierdoc/go-hierdoc/handler/yamlfmt
//   - github.com/hierdoc/go-hierdoc/handler/mdfmt
//   - github.com/hierdoc/go-hierdoc/docmodel - routes calls to handlers
package handler
