package ir

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the scalar payload variants.
type ValueKind int

const (
	NullValue ValueKind = iota
	BoolValue
	IntValue
	FloatValue
	StringValue
)

func (v ValueKind) String() string {
	switch v {
	case NullValue:
		return "null"
	case BoolValue:
		return "bool"
	case IntValue:
		return "int"
	case FloatValue:
		return "float"
	case StringValue:
		return "string"
	}
	return "<err: bad value kind>"
}

// Value is the scalar payload of value-bearing nodes. It is a small tagged
// union: Kind selects which of the payload fields is meaningful.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Int64 int64
	Num   float64
	Str   string
}

func Null() Value { return Value{Kind: NullValue} }
func Bool(v bool) Value { return Value{Kind: BoolValue, Bool: v} }
func Int(v int64) Value { return Value{Kind: IntValue, Int64: v} }
func Float(v float64) Value { return Value{Kind: FloatValue, Num: v} }
func String(v string) Value { return Value{Kind: StringValue, Str: v} }

func (v Value) IsNull() bool { return v.Kind == NullValue }

// Interface returns the payload as a plain Go value (nil, bool, int64,
// float64 or string).
func (v Value) Interface() any {
	switch v.Kind {
	case BoolValue:
		return v.Bool
	case IntValue:
		return v.Int64
	case FloatValue:
		return v.Num
	case StringValue:
		return v.Str
	}
	return nil
}

// FromInterface maps a plain Go value onto a Value. Unhandled types fall
// back to their string formatting.
func FromInterface(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	case string:
		return String(t)
	default:
		return String(fmt.Sprintf("%v", t))
	}
}

// Text renders the payload the way a format-neutral consumer displays it.
func (v Value) Text() string {
	switch v.Kind {
	case NullValue:
		return "null"
	case BoolValue:
		return strconv.FormatBool(v.Bool)
	case IntValue:
		return strconv.FormatInt(v.Int64, 10)
	case FloatValue:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	}
	return v.Str
}

// Equal reports payload equality. Int and float payloads compare equal when
// they denote the same number.
func (v Value) Equal(o Value) bool {
	if v.Kind == o.Kind {
		return v == o
	}
	if v.Kind == IntValue && o.Kind == FloatValue {
		return float64(v.Int64) == o.Num
	}
	if v.Kind == FloatValue && o.Kind == IntValue {
		return v.Num == float64(o.Int64)
	}
	return false
}
