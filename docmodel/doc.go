// Package docmodel owns a parsed document tree and routes load, mutation
// and serialization through the format handlers.
//
// # Overview
//
// A Model holds the root node, the id-keyed node arena, the active format
// name and the source text. Load parses text (sniffing the format when it
// is not given), mutations edit the in-memory tree and re-serialize the
// source text through the active handler, and Validate re-parses the
// source without touching state.
//
// # Addressing
//
// Find accepts either a node ID or a dot-joined path ("a.b.2"); "" and "."
// denote the root. Mutating operations accept the same references.
//
// # Invariants
//
// Mutations keep array positions contiguous, object sibling names unique
// and the tree acyclic: Move rejects a move into the node's own descendant
// with ErrCircularMove before touching anything.
//
// # Related Packages
//
//   - github.com/hierdoc/go-hierdoc/handler - the format adapters
//   - github.com/hierdoc/go-hierdoc/ir - the node model
//   - github.com/hierdoc/go-hierdoc/expansion - UI visibility tracking
package docmodel
