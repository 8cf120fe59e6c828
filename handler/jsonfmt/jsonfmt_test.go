package jsonfmt

import (
	"errors"
	"testing"

	"github.com/hierdoc/go-hierdoc/handler"
	"github.com/hierdoc/go-hierdoc/ir"
)

func TestParseShape(t *testing.T) {
	h := New()
	root, err := h.Parse(`{"a":1,"b":[1,2,3]}`)
	if err != nil {
		t.Fatal(err)
	}
	if root.Kind != ir.ObjectKind || len(root.Children) != 2 {
		t.Fatalf("root: got %s with %d children", root.Kind, len(root.Children))
	}
	a := root.ChildByName("a")
	if a == nil || a.Kind != ir.ScalarKind || !a.Value.Equal(ir.Int(1)) {
		t.Fatalf("a: got %+v", a)
	}
	b := root.ChildByName("b")
	if b == nil || b.Kind != ir.ArrayKind || len(b.Children) != 3 {
		t.Fatalf("b: got %+v", b)
	}
	for i, want := range []string{"0", "1", "2"} {
		if b.Children[i].Name != want {
			t.Errorf("b[%d] name: got %q, want %q", i, b.Children[i].Name, want)
		}
	}
}

func TestSerializePretty(t *testing.T) {
	h := New()
	root, err := h.Parse(`{"a":1,"b":[1,2,3]}`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := h.Serialize(root)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2,\n    3\n  ]\n}"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestRoundTrip(t *testing.T) {
	h := New()
	for _, in := range []string{
		`null`,
		`true`,
		`42`,
		`-1.5e3`,
		`"hello"`,
		`[]`,
		`{}`,
		`{"a":{"b":{"c":[1,2,{"d":null}]}}}`,
		`["mixed",1,true,null,{"k":"v"}]`,
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
			t.Errorf("round trip of %q changed the tree", in)
		}
	}
}

func TestParseErrors(t *testing.T) {
	h := New()
	for _, in := range []string{
		`{"a":}`,
		`{"a":1} trailing`,
		`[1,2,`,
	} {
		if _, err := h.Parse(in); !errors.Is(err, handler.ErrParse) {
			t.Errorf("parse %q: got %v, want ErrParse", in, err)
		}
	}
}

func TestDetect(t *testing.T) {
	h := New()
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{`{"a":1}`, true},
		{`[1,2]`, true},
		{`  {"a":1}  `, true},
		{`{"a":}`, false}, // bounds match but parse fails
		{`a: 1`, false},
		{`<a/>`, false},
	} {
		if got := h.Detect(tc.in); got != tc.want {
			t.Errorf("Detect(%q): got %v, want %v", tc.in, got, tc.want)
		}
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

func TestSerializeUnknownKind(t *testing.T) {
	h := New()
	n := ir.NewHeading("T", 1)
	if _, err := h.Serialize(n); !errors.Is(err, handler.ErrSerialize) {
		t.Fatalf("got %v, want ErrSerialize", err)
	}
}

func TestArrayOrderByName(t *testing.T) {
	h := New()
	arr := ir.NewArray("")
	// Children attached out of positional order still serialize by name.
	second := ir.NewScalar("", ir.Int(2))
	first := ir.NewScalar("", ir.Int(1))
	arr.Append(second)
	arr.Append(first)
	second.Name, first.Name = "1", "0"
	out, err := h.Serialize(arr)
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n  1,\n  2\n]"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}
