package ir

import "fmt"

// Kind discriminates the node variants of the IR.
type Kind int

const (
	ObjectKind Kind = iota
	ArrayKind
	ScalarKind
	ElementKind
	TextKind
	CDataKind
	CommentKind
	ProcInstKind
	HeadingKind
	ContentKind
	DocumentKind
)

var kindNames = map[Kind]string{
	ObjectKind:   "object",
	ArrayKind:    "array",
	ScalarKind:   "scalar",
	ElementKind:  "element",
	TextKind:     "text",
	CDataKind:    "cdata",
	CommentKind:  "comment",
	ProcInstKind: "processing_instruction",
	HeadingKind:  "heading",
	ContentKind:  "content",
	DocumentKind: "document",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("<err: %d is not a kind>", int(k))
}

// Kinds returns all node kinds in declaration order.
func Kinds() []Kind {
	res := make([]Kind, 0, len(kindNames))
	for k := ObjectKind; k <= DocumentKind; k++ {
		res = append(res, k)
	}
	return res
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(v string) (Kind, error) {
	for k, s := range kindNames {
		if s == v {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadKind, v)
}

// HasValue reports whether nodes of kind k carry a scalar Value.
func (k Kind) HasValue() bool {
	switch k {
	case ScalarKind, TextKind, CDataKind, CommentKind, ContentKind:
		return true
	}
	return false
}

// Container reports whether nodes of kind k may have children.
func (k Kind) Container() bool {
	switch k {
	case ObjectKind, ArrayKind, ElementKind, HeadingKind, DocumentKind:
		return true
	}
	return false
}
