// Package expansion tracks which tree paths are expanded or collapsed in a
// host UI. The state is independent of the node tree: it is keyed by the
// same dot-joined paths the document model uses, so it survives reloads of
// structurally similar documents.
package expansion

import (
	"github.com/hierdoc/go-hierdoc/ir"
	"github.com/hierdoc/go-hierdoc/ir/dpath"
)

// EventKind tags state-change notifications.
type EventKind int

const (
	Expanded EventKind = iota
	Collapsed
	Changed
)

func (k EventKind) String() string {
	switch k {
	case Expanded:
		return "expand"
	case Collapsed:
		return "collapse"
	case Changed:
		return "change"
	}
	return "<err: bad event kind>"
}

// Event is one visibility change.
type Event struct {
	Kind EventKind
	Path string
}

// State is a path-keyed expanded/collapsed tracker. The toggled set holds
// paths whose state differs from the default: with defaultExpanded true,
// membership means collapsed, otherwise it means expanded.
type State struct {
	toggled         map[string]bool
	defaultExpanded bool
	maxDepth        int
	subs            []func(Event)
}

// Option configures a State.
type Option func(*State)

// DefaultExpanded makes unknown paths count as expanded.
func DefaultExpanded(v bool) Option {
	return func(s *State) { s.defaultExpanded = v }
}

// MaxDepth bounds ExpandAll and ExpandToDepth traversals.
func MaxDepth(n int) Option {
	return func(s *State) { s.maxDepth = n }
}

func New(opts ...Option) *State {
	s := &State{
		toggled:  map[string]bool{},
		maxDepth: 64,
	}
	for _, f := range opts {
		f(s)
	}
	return s
}

// Subscribe registers a callback for every expand/collapse/change event.
func (s *State) Subscribe(f func(Event)) {
	s.subs = append(s.subs, f)
}

func (s *State) emit(kind EventKind, path string) {
	for _, f := range s.subs {
		f(Event{Kind: kind, Path: path})
		f(Event{Kind: Changed, Path: path})
	}
}

// IsExpanded reports the visibility of a path. Paths never touched take
// the default.
func (s *State) IsExpanded(path string) bool {
	if s.toggled[path] {
		return !s.defaultExpanded
	}
	return s.defaultExpanded
}

// Expand marks a path expanded. It is idempotent; only real transitions
// emit events.
func (s *State) Expand(path string) {
	if s.IsExpanded(path) {
		return
	}
	s.toggle(path)
	s.emit(Expanded, path)
}

// Collapse marks a path collapsed.
func (s *State) Collapse(path string) {
	if !s.IsExpanded(path) {
		return
	}
	s.toggle(path)
	s.emit(Collapsed, path)
}

func (s *State) toggle(path string) {
	if s.toggled[path] {
		delete(s.toggled, path)
		return
	}
	s.toggled[path] = true
}

// ExpandAll expands every node under root that has children, bounded by
// the state's max depth.
func (s *State) ExpandAll(root *ir.Node) {
	s.expandWalk(root, "", 0, s.maxDepth)
}

// ExpandToDepth expands container nodes whose path depth is at most depth.
func (s *State) ExpandToDepth(root *ir.Node, depth int) {
	if depth > s.maxDepth {
		depth = s.maxDepth
	}
	s.expandWalk(root, "", 0, depth)
}

func (s *State) expandWalk(n *ir.Node, path string, depth, maxDepth int) {
	if depth > maxDepth {
		return
	}
	if len(n.Children) > 0 {
		s.Expand(path)
	}
	for _, c := range n.Children {
		s.expandWalk(c, dpath.Child(path, c.Name), depth+1, maxDepth)
	}
}

// CollapseAll resets to the collapsed baseline: every path reports
// collapsed afterwards, regardless of the configured default.
func (s *State) CollapseAll() {
	s.toggled = map[string]bool{}
	s.defaultExpanded = false
	s.emit(Collapsed, "")
}

// ExpandPath expands every ancestor of path plus the path itself, used to
// reveal a search result.
func (s *State) ExpandPath(path string) {
	s.Expand("")
	for _, anc := range dpath.Ancestors(path) {
		s.Expand(anc)
	}
	if !dpath.IsRoot(path) {
		s.Expand(path)
	}
}

// RevealAll expands the ancestry of every given path.
func (s *State) RevealAll(paths []string) {
	for _, p := range paths {
		s.ExpandPath(p)
	}
}
