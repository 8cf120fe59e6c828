package yamlfmt

import "strings"

// line is one significant source line after comment stripping.
type line struct {
	no     int // 1-based source line number
	indent int // count of leading indent characters
	text   string
}

// indentStyle is the dominant indentation of a document.
type indentStyle struct {
	width int
	char  string
}

func defaultStyle() indentStyle {
	return indentStyle{width: 2, char: " "}
}

// scan prepares the raw text for the descent: it strips comments and
// trailing whitespace, drops blank lines and document markers, measures
// indentation, and detects the dominant indent style.
func scan(text string) ([]line, indentStyle) {
	var (
		lines []line
		tabs  bool
	)
	widthCounts := map[int]int{}
	prevIndent := 0
	for no, raw := range strings.Split(text, "\n") {
		t := stripComment(raw)
		t = strings.TrimRight(t, " \t")
		if strings.TrimSpace(t) == "" {
			continue
		}
		if t == "---" || t == "..." {
			continue
		}
		indent := 0
		for indent < len(t) && (t[indent] == ' ' || t[indent] == '\t') {
			if t[indent] == '\t' {
				tabs = true
			}
			indent++
		}
		if d := indent - prevIndent; d > 0 {
			widthCounts[d]++
		}
		prevIndent = indent
		lines = append(lines, line{no: no + 1, indent: indent, text: t[indent:]})
	}
	style := defaultStyle()
	best := 0
	for w, n := range widthCounts {
		if n > best || (n == best && w < style.width) {
			best = n
			style.width = w
		}
	}
	if tabs {
		style.char = "\t"
		style.width = 1
	}
	return lines, style
}

// stripComment cuts the line at the first "#" outside quotes. Quote state
// is tracked character by character so a quoted "#" survives.
func stripComment(raw string) string {
	var quote byte
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case quote == 0 && (c == '\'' || c == '"'):
			quote = c
		case quote == '\'' && c == '\'':
			quote = 0
		case quote == '"' && c == '"':
			// A backslash-escaped quote does not close the string.
			if i > 0 && raw[i-1] == '\\' {
				continue
			}
			quote = 0
		case quote == 0 && c == '#':
			return raw[:i]
		}
	}
	return raw
}

// splitKey finds the first unquoted ":" that ends a key, returning the key
// part, the rest, and whether a key separator was found at all. The colon
// must be at end of line or followed by a space or tab.
func splitKey(t string) (key, rest string, ok bool) {
	var quote byte
	for i := 0; i < len(t); i++ {
		c := t[i]
		switch {
		case quote == 0 && (c == '\'' || c == '"'):
			quote = c
		case quote == c && quote != 0:
			if quote == '"' && i > 0 && t[i-1] == '\\' {
				continue
			}
			quote = 0
		case quote == 0 && c == ':':
			if i == len(t)-1 {
				return t[:i], "", true
			}
			if t[i+1] == ' ' || t[i+1] == '\t' {
				return t[:i], strings.TrimSpace(t[i+1:]), true
			}
		}
	}
	return "", "", false
}
