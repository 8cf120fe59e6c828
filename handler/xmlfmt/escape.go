package xmlfmt

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces XML-significant characters with entity references. It is
// used for both text content and attribute values.
func Escape(v string) string {
	return escaper.Replace(v)
}

var unescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&amp;", "&",
)

// Unescape reverses Escape, accepting &apos; as well. The replacement is a
// single pass, so doubly escaped input does not collapse twice.
func Unescape(v string) string {
	return unescaper.Replace(v)
}
