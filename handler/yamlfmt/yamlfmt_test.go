package yamlfmt

import (
	"errors"
	"testing"

	goyaml "github.com/goccy/go-yaml"

	"github.com/hierdoc/go-hierdoc/handler"
	"github.com/hierdoc/go-hierdoc/ir"
)

func TestParseShape(t *testing.T) {
	h := New()
	root, err := h.Parse("a: 1\nb:\n  - x\n  - y")
	if err != nil {
		t.Fatal(err)
	}
	if root.Kind != ir.ObjectKind || len(root.Children) != 2 {
		t.Fatalf("root: got %s with %d children", root.Kind, len(root.Children))
	}
	a := root.ChildByName("a")
	if a == nil || !a.Value.Equal(ir.Int(1)) {
		t.Fatalf("a: got %+v", a)
	}
	b := root.ChildByName("b")
	if b == nil || b.Kind != ir.ArrayKind || len(b.Children) != 2 {
		t.Fatalf("b: got %+v", b)
	}
	if b.Children[0].Value.Str != "x" || b.Children[1].Value.Str != "y" {
		t.Errorf("items: %q %q", b.Children[0].Value.Str, b.Children[1].Value.Str)
	}
}

func TestCoercion(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want ir.Value
	}{
		{"null", ir.Null()},
		{"~", ir.Null()},
		{"true", ir.Bool(true)},
		{"yes", ir.Bool(true)},
		{"on", ir.Bool(true)},
		{"false", ir.Bool(false)},
		{"no", ir.Bool(false)},
		{"off", ir.Bool(false)},
		{"True", ir.String("True")}, // case-sensitive as written
		{"42", ir.Int(42)},
		{"-7", ir.Int(-7)},
		{"3.14", ir.Float(3.14)},
		{"1e3", ir.Float(1000)},
		{"-2.5e-2", ir.Float(-0.025)},
		{"0o17", ir.Int(15)},
		{"0xff", ir.Int(255)},
		{`"42"`, ir.String("42")},
		{`'quoted'`, ir.String("quoted")},
		{`"with\nescape"`, ir.String("with\nescape")},
		{`'it''s'`, ir.String("it's")},
		{"plain text", ir.String("plain text")},
	} {
		got := Coerce(tc.raw)
		if !got.Equal(tc.want) || got.Kind != tc.want.Kind {
			t.Errorf("Coerce(%q): got %s %v, want %s %v",
				tc.raw, got.Kind, got.Interface(), tc.want.Kind, tc.want.Interface())
		}
	}
}

// Formatting a coerced scalar and re-parsing must reproduce the value.
func TestCoercionIdempotent(t *testing.T) {
	for _, v := range []ir.Value{
		ir.Null(),
		ir.Bool(true),
		ir.Bool(false),
		ir.Int(0),
		ir.Int(-42),
		ir.Float(3.5),
		ir.Float(-0.025),
		ir.String("plain"),
		ir.String("42"),
		ir.String("true"),
		ir.String("null"),
		ir.String(" padded "),
		ir.String("a: b"),
		ir.String("has # hash"),
		ir.String(""),
	} {
		got := Coerce(FormatScalar(v))
		if got.Kind != v.Kind {
			t.Errorf("kind drift for %s %v: got %s", v.Kind, v.Interface(), got.Kind)
			continue
		}
		if !got.Equal(v) {
			t.Errorf("value drift: %v -> %q -> %v", v.Interface(), FormatScalar(v), got.Interface())
		}
	}
}

func TestComments(t *testing.T) {
	h := New()
	root, err := h.Parse("a: 1 # trailing\n# full line\nb: 'keep # this'\n")
	if err != nil {
		t.Fatal(err)
	}
	if a := root.ChildByName("a"); !a.Value.Equal(ir.Int(1)) {
		t.Errorf("a: %v", a.Value.Interface())
	}
	if b := root.ChildByName("b"); b.Value.Str != "keep # this" {
		t.Errorf("b: %q", b.Value.Str)
	}
}

func TestNestedMappings(t *testing.T) {
	h := New()
	root, err := h.Parse("server:\n  host: localhost\n  port: 8080\n  opts:\n    debug: yes\n")
	if err != nil {
		t.Fatal(err)
	}
	server := root.ChildByName("server")
	if server == nil || server.Kind != ir.ObjectKind {
		t.Fatalf("server: %+v", server)
	}
	if p := server.ChildByName("port"); !p.Value.Equal(ir.Int(8080)) {
		t.Errorf("port: %v", p.Value.Interface())
	}
	opts := server.ChildByName("opts")
	if d := opts.ChildByName("debug"); !d.Value.Equal(ir.Bool(true)) {
		t.Errorf("debug: %v", d.Value.Interface())
	}
}

func TestFlowCollections(t *testing.T) {
	h := New()
	root, err := h.Parse("xs: [1, 2, three]\nm: {a: 1, b: true}\n")
	if err != nil {
		t.Fatal(err)
	}
	xs := root.ChildByName("xs")
	if xs.Kind != ir.ArrayKind || !xs.Meta.Flow || len(xs.Children) != 3 {
		t.Fatalf("xs: %+v", xs)
	}
	if !xs.Children[2].Value.Equal(ir.String("three")) {
		t.Errorf("xs[2]: %v", xs.Children[2].Value.Interface())
	}
	m := root.ChildByName("m")
	if m.Kind != ir.ObjectKind || !m.Meta.Flow {
		t.Fatalf("m: %+v", m)
	}
	if b := m.ChildByName("b"); !b.Value.Equal(ir.Bool(true)) {
		t.Errorf("m.b: %v", b.Value.Interface())
	}
	// Flow style survives the round trip.
	out, err := h.Serialize(root)
	if err != nil {
		t.Fatal(err)
	}
	if out != "xs: [1, 2, three]\nm: {a: 1, b: true}\n" {
		t.Errorf("got %q", out)
	}
}

func TestNestedFlowRejected(t *testing.T) {
	h := New()
	if _, err := h.Parse("xs: [1, [2, 3]]\n"); !errors.Is(err, handler.ErrParse) {
		t.Fatalf("got %v, want ErrParse", err)
	}
}

func TestIndentDetection(t *testing.T) {
	h := New()
	root, err := h.Parse("a:\n    b: 1\n    c:\n        d: 2\n")
	if err != nil {
		t.Fatal(err)
	}
	if root.Meta.IndentWidth != 4 || root.Meta.IndentChar != " " {
		t.Fatalf("style: width=%d char=%q", root.Meta.IndentWidth, root.Meta.IndentChar)
	}
	out, err := h.Serialize(root)
	if err != nil {
		t.Fatal(err)
	}
	want := "a:\n    b: 1\n    c:\n        d: 2\n"
	if out != want {
		t.Errorf("got:\n%q\nwant:\n%q", out, want)
	}
}

func TestRoundTrip(t *testing.T) {
	h := New()
	for _, in := range []string{
		"a: 1\nb:\n  - x\n  - y\n",
		"top: value\n",
		"a:\n  b:\n    c: deep\n",
		"- 1\n- 2\n- 3\n",
		"empty: null\nflag: false\n",
	} {
		first, err := h.Parse(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		text, err := h.Serialize(first)
		if err != nil {
			t.Fatalf("serialize %q: %v", in, err)
		}
		second, err := h.Parse(text)
		if err != nil {
			t.Fatalf("re-parse %q: %v", text, err)
		}
		if !ir.Equal(first, second) {
			t.Errorf("round trip of %q changed the tree (via %q)", in, text)
		}
	}
}

// Serialized output must be acceptable to a production YAML parser.
func TestOutputIsValidYAML(t *testing.T) {
	h := New()
	root, err := h.Parse("a: 1\nb:\n  - x\n  - 'y: z'\nc: {k: true}\nd: 'it''s # quoted'\n")
	if err != nil {
		t.Fatal(err)
	}
	out, err := h.Serialize(root)
	if err != nil {
		t.Fatal(err)
	}
	var v map[string]any
	if err := goyaml.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("goccy rejects output %q: %v", out, err)
	}
	if v["a"] != uint64(1) && v["a"] != 1 && v["a"] != int64(1) {
		t.Errorf("a: %T %v", v["a"], v["a"])
	}
	if v["d"] != "it's # quoted" {
		t.Errorf("d: %v", v["d"])
	}
}

func TestParseErrors(t *testing.T) {
	h := New()
	for _, in := range []string{
		"a: 1\nnot a pair\n",
		"a: 1\n- item\n",
	} {
		if _, err := h.Parse(in); !errors.Is(err, handler.ErrParse) {
			t.Errorf("parse %q: got %v, want ErrParse", in, err)
		}
	}
}

func TestDuplicateKey(t *testing.T) {
	h := New()
	if _, err := h.Parse("a: 1\na: 2\n"); !errors.Is(err, handler.ErrParse) {
		t.Fatalf("got %v, want ErrParse", err)
	}
}

func TestSerializeCycle(t *testing.T) {
	h := New()
	a := ir.NewObject("")
	b := ir.NewObject("b")
	a.Append(b)
	b.Children = append(b.Children, a)
	if _, err := h.Serialize(a); !errors.Is(err, handler.ErrSerialize) {
		t.Fatalf("got %v, want ErrSerialize", err)
	}
}

func TestDetect(t *testing.T) {
	h := New()
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"a: 1", true},
		{`{"a": 1}`, false},
		{"<a>x</a>", false},
		{"plain prose", false},
	} {
		if got := h.Detect(tc.in); got != tc.want {
			t.Errorf("Detect(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}
