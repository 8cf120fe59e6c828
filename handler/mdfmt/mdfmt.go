// Package mdfmt converts Markdown text to and from the IR tree by
// sectioning on headings.
//
// # Model
//
// The document is first split into a flat sequence of headings (ATX
// "#".."######" and Setext underline forms) and content sections holding
// everything in between. A stack then folds the sequence into a hierarchy:
// each heading attaches under the nearest prior heading of a smaller
// level, content attaches under the current heading. A document without
// headings collapses to a single content child of the document root.
//
// Content sections carry a cheap classifier tag ("code", "blockquote",
// "list" or "paragraph") in their metadata; the raw text is preserved
// verbatim, so serialization re-emits it unchanged. Setext headings are
// normalized to ATX on output.
package mdfmt

import (
	"strings"

	"github.com/hierdoc/go-hierdoc/handler"
	"github.com/hierdoc/go-hierdoc/ir"
)

// Handler is the Markdown format adapter.
type Handler struct{}

var _ handler.Handler = (*Handler)(nil)

func New() *Handler { return &Handler{} }

func (h *Handler) EditableFields() handler.Editable {
	return handler.Editable{Key: true, Value: true, Type: false, Structure: true}
}

// Detect accepts any text containing a "#".
func (h *Handler) Detect(text string) bool {
	return strings.Contains(text, "#")
}

// section is one entry of the flat pre-hierarchy sequence.
type section struct {
	heading bool
	level   int
	text    string
}

func (h *Handler) Parse(text string) (*ir.Node, error) {
	sections := splitSections(text)
	doc := ir.NewDocument()
	// stack holds the open heading chain, outermost first.
	var stack []*ir.Node
	for _, s := range sections {
		if !s.heading {
			content := strings.TrimSpace(s.text)
			if content == "" {
				continue
			}
			node := ir.NewContent(content)
			node.Meta.ContentTag, node.Meta.Lang = classify(content)
			attachTop(doc, stack, node)
			continue
		}
		for len(stack) > 0 && stack[len(stack)-1].Meta.Level >= s.level {
			stack = stack[:len(stack)-1]
		}
		node := ir.NewHeading(s.text, s.level)
		attachTop(doc, stack, node)
		stack = append(stack, node)
		if len(stack) > handler.DefaultMaxDepth {
			return nil, handler.Parsef(handler.Markdown, 0,
				"heading nesting exceeds %d", handler.DefaultMaxDepth)
		}
	}
	return doc, nil
}

func attachTop(doc *ir.Node, stack []*ir.Node, node *ir.Node) {
	if len(stack) == 0 {
		doc.Append(node)
		return
	}
	stack[len(stack)-1].Append(node)
}

// splitSections scans lines, emitting heading sections and accumulating
// everything else. Heading markers inside fenced code blocks are content.
func splitSections(text string) []section {
	var (
		res     []section
		content []string
		inFence bool
	)
	flush := func() {
		if len(content) > 0 {
			res = append(res, section{text: strings.Join(content, "\n")})
			content = nil
		}
	}
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		ln := lines[i]
		if strings.HasPrefix(strings.TrimSpace(ln), "```") {
			inFence = !inFence
			content = append(content, ln)
			continue
		}
		if inFence {
			content = append(content, ln)
			continue
		}
		if level, txt, ok := atxHeading(ln); ok {
			flush()
			res = append(res, section{heading: true, level: level, text: txt})
			continue
		}
		if i+1 < len(lines) {
			if level, ok := setextUnderline(lines[i+1], ln); ok {
				flush()
				res = append(res, section{heading: true, level: level, text: strings.TrimSpace(ln)})
				i++
				continue
			}
		}
		content = append(content, ln)
	}
	flush()
	return res
}

// atxHeading matches "#"-prefixed headings with 1..6 hashes followed by a
// space.
func atxHeading(ln string) (int, string, bool) {
	t := strings.TrimSpace(ln)
	n := 0
	for n < len(t) && t[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return 0, "", false
	}
	if n == len(t) {
		return n, "", true
	}
	if t[n] != ' ' {
		return 0, "", false
	}
	text := strings.TrimSpace(t[n:])
	// Trailing hash runs are decoration.
	text = strings.TrimRight(text, "#")
	return n, strings.TrimSpace(text), true
}

// setextUnderline reports whether under is a Setext underline for the text
// line above it: all "=" (level 1) or all "-" (level 2), at least two
// characters, below a non-empty plain line.
func setextUnderline(under, above string) (int, bool) {
	a := strings.TrimSpace(above)
	if a == "" || strings.HasPrefix(a, "#") || listItem(a) || strings.HasPrefix(a, ">") {
		return 0, false
	}
	u := strings.TrimSpace(under)
	if len(u) < 2 {
		return 0, false
	}
	if strings.Count(u, "=") == len(u) {
		return 1, true
	}
	if strings.Count(u, "-") == len(u) {
		return 2, true
	}
	return 0, false
}

// classify tags a content chunk and extracts the fence language if any.
func classify(content string) (tag, lang string) {
	lines := strings.Split(content, "\n")
	for _, ln := range lines {
		t := strings.TrimSpace(ln)
		if strings.HasPrefix(t, "```") {
			return "code", strings.TrimSpace(strings.TrimPrefix(t, "```"))
		}
	}
	for _, ln := range lines {
		if strings.HasPrefix(strings.TrimSpace(ln), ">") {
			return "blockquote", ""
		}
	}
	for _, ln := range lines {
		if listItem(strings.TrimSpace(ln)) {
			return "list", ""
		}
	}
	return "paragraph", ""
}

func listItem(t string) bool {
	if strings.HasPrefix(t, "- ") || strings.HasPrefix(t, "* ") || strings.HasPrefix(t, "+ ") {
		return true
	}
	i := 0
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	return i > 0 && i+1 < len(t) && t[i] == '.' && t[i+1] == ' '
}
