// Package ir provides the unified intermediate representation (IR) for
// hierarchical documents.
//
// # Overview
//
// All documents handled by hierdoc, whether parsed from JSON, XML, YAML or
// Markdown text, are represented as a tree of ir.Node values. The IR is
// format-agnostic: a format handler maps its syntax onto the node kinds it
// needs and ignores the rest.
//
// # Node Structure
//
// A Node represents a single entry in the tree. The Kind field is a closed
// tagged union selecting which of the remaining fields are meaningful:
//
//   - ObjectKind: keyed children, sibling names unique
//   - ArrayKind: ordered children, names are decimal positions ("0", "1", ...)
//   - ScalarKind: a Value (null, bool, number or string)
//   - ElementKind: XML element with Attrs and mixed children
//   - TextKind, CDataKind, CommentKind, ProcInstKind: XML leaf payloads
//   - HeadingKind, ContentKind: Markdown sections
//   - DocumentKind: synthetic root for multi-child documents
//
// # Identity and Parents
//
// Every node carries an ID unique within its tree. The Parent field holds
// the parent's ID rather than a pointer; an Index (an id-keyed arena owned
// by the document model) resolves IDs back to nodes. Keeping the
// back-reference as an ID means the tree itself is a single-owner hierarchy
// with no reference cycles, and traversal guards reduce to a visited-ID set.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	obj := ir.NewObject("")
//	arr := ir.NewArray("items")
//	n := ir.NewScalar("count", ir.Int(42))
//	el := ir.NewElement("a", map[string]string{"href": "x"})
//
// Constructors assign fresh IDs; Append and Insert wire parent links and
// keep array positions contiguous.
//
// # Traversal
//
// Visit walks a subtree pre- and post-order with dive control. Walk is the
// depth-bounded variant used on untrusted input.
//
// # Related Packages
//
//   - github.com/hierdoc/go-hierdoc/ir/dpath - dot-path addressing
//   - github.com/hierdoc/go-hierdoc/handler - parse/serialize adapters
//   - github.com/hierdoc/go-hierdoc/docmodel - tree ownership and mutation
package ir
