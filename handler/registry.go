package handler

import (
	"fmt"
	"strings"
)

// Canonical format names.
const (
	JSON     = "json"
	XML      = "xml"
	YAML     = "yaml"
	Markdown = "markdown"
)

// Registry maps format names to handler constructors. It is an explicit
// object: construct one at the composition root and pass it down.
type Registry struct {
	ctors map[string]func() Handler
	names []string
}

func NewRegistry() *Registry {
	return &Registry{ctors: map[string]func() Handler{}}
}

// Register binds a format name to a handler constructor. Re-registering a
// name replaces the previous constructor without changing resolution order.
func (r *Registry) Register(name string, ctor func() Handler) {
	if _, ok := r.ctors[name]; !ok {
		r.names = append(r.names, name)
	}
	r.ctors[name] = ctor
}

// Resolve returns a handler for the given format name.
func (r *Registry) Resolve(name string) (Handler, error) {
	ctor, ok := r.ctors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return ctor(), nil
}

// Formats returns the registered format names in registration order.
func (r *Registry) Formats() []string {
	return append([]string(nil), r.names...)
}

// DetectFormat sniffs the format of text. The precedence is fixed: JSON
// (bracket bounds plus a successful parse), XML ("<...>" bounds), YAML
// (contains ":" and neither "<" nor "{"), Markdown (contains "#"), with
// JSON as the final default. The YAML heuristic is deliberately weak and
// can claim plain prose; the ordering is part of the contract.
func (r *Registry) DetectFormat(text string) string {
	for _, name := range []string{JSON, XML, YAML, Markdown} {
		ctor, ok := r.ctors[name]
		if !ok {
			continue
		}
		if ctor().Detect(text) {
			return name
		}
	}
	return JSON
}

// TrimBounds reports whether trimmed text starts with open and ends with
// close. Shared by the bracket-based sniffs.
func TrimBounds(text, open, close string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, open) && strings.HasSuffix(t, close)
}
