package ir

import (
	"errors"
	"testing"
)

func TestKindNameRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Errorf("ParseKind(%q): %v", k.String(), err)
			continue
		}
		if got != k {
			t.Errorf("ParseKind(%q): got %v, want %v", k.String(), got, k)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	if _, err := ParseKind("blob"); !errors.Is(err, ErrBadKind) {
		t.Fatalf("got %v, want ErrBadKind", err)
	}
}

func TestFromInterface(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want Value
	}{
		{nil, Null()},
		{true, Bool(true)},
		{7, Int(7)},
		{int64(-2), Int(-2)},
		{1.5, Float(1.5)},
		{"x", String("x")},
		{[]int{1, 2}, String("[1 2]")},
	} {
		got := FromInterface(tc.in)
		if got != tc.want {
			t.Errorf("FromInterface(%#v): got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}
