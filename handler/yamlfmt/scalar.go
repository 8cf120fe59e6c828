package yamlfmt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hierdoc/go-hierdoc/ir"
)

var (
	intRx   = regexp.MustCompile(`^[-+]?[0-9]+$`)
	floatRx = regexp.MustCompile(`^[-+]?([0-9]+\.[0-9]*|\.[0-9]+|[0-9]+)([eE][-+]?[0-9]+)?$`)
	octRx   = regexp.MustCompile(`^0o[0-7]+$`)
	hexRx   = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
)

// Coerce applies the scalar coercion ladder to a raw value string. The
// order is fixed: null, booleans, quoted strings, integers, floats, octal
// and hex integers, and finally the raw string itself.
func Coerce(raw string) ir.Value {
	switch raw {
	case "", "null", "~":
		return ir.Null()
	case "true", "yes", "on":
		return ir.Bool(true)
	case "false", "no", "off":
		return ir.Bool(false)
	}
	if isQuoted(raw) {
		return ir.String(unquote(raw))
	}
	if intRx.MatchString(raw) {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return ir.Int(i)
		}
		// Out of int64 range; keep the text.
		return ir.String(raw)
	}
	if floatRx.MatchString(raw) && strings.ContainsAny(raw, ".eE") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return ir.Float(f)
		}
	}
	if octRx.MatchString(raw) {
		if i, err := strconv.ParseInt(raw[2:], 8, 64); err == nil {
			return ir.Int(i)
		}
	}
	if hexRx.MatchString(raw) {
		if i, err := strconv.ParseInt(raw[2:], 16, 64); err == nil {
			return ir.Int(i)
		}
	}
	return ir.String(raw)
}

func isQuoted(raw string) bool {
	if len(raw) < 2 {
		return false
	}
	if raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		return true
	}
	return raw[0] == '"' && raw[len(raw)-1] == '"'
}

func unquote(raw string) string {
	inner := raw[1 : len(raw)-1]
	if raw[0] == '\'' {
		return strings.ReplaceAll(inner, "''", "'")
	}
	var sb strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' || i == len(inner)-1 {
			sb.WriteByte(c)
			continue
		}
		i++
		switch inner[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case '0':
			sb.WriteByte(0)
		default:
			sb.WriteByte('\\')
			sb.WriteByte(inner[i])
		}
	}
	return sb.String()
}

func unquoteKey(key string) string {
	if isQuoted(key) {
		return unquote(key)
	}
	return key
}

// needsQuote reports whether a string scalar must be quoted on output:
// when re-parsing it plain would not yield the same string, or when it
// carries YAML-significant characters or boundary whitespace.
func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	if strings.TrimSpace(s) != s {
		return true
	}
	if strings.ContainsAny(s, "\n#'\"") {
		return true
	}
	if v := Coerce(s); v.Kind != ir.StringValue {
		return true
	}
	if key, _, ok := splitKey(s); ok && key != "" {
		return true
	}
	switch s[0] {
	case '[', ']', '{', '}', '-', '&', '*', '!', '|', '>', '%', '@', '`', ',':
		return true
	}
	if strings.HasSuffix(s, ":") {
		return true
	}
	return false
}

// quote renders a string scalar in double quotes with escapes.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// FormatScalar renders a value the way the serializer writes it inline.
func FormatScalar(v ir.Value) string {
	switch v.Kind {
	case ir.NullValue:
		return "null"
	case ir.BoolValue:
		return strconv.FormatBool(v.Bool)
	case ir.IntValue:
		return strconv.FormatInt(v.Int64, 10)
	case ir.FloatValue:
		return formatFloat(v.Num)
	}
	if needsQuote(v.Str) {
		return quote(v.Str)
	}
	return v.Str
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// Keep floats recognizable as floats on re-parse.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
