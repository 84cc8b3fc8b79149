// value.go: the runtime value model.
//
// A Value is a small tagged sum over the four runtime types: nil, bool,
// number (float64), and string. The tag makes type checks in the evaluator
// a plain comparison instead of a type assertion, and keeps Stringify and
// equality in one place.
package lox

import "strconv"

// ValueTag discriminates a Value.
type ValueTag int

const (
	VTNil ValueTag = iota
	VTBool
	VTNum
	VTStr
)

// Value is a runtime value. Data holds bool, float64, or string depending on
// Tag; it is unused for VTNil.
type Value struct {
	Tag  ValueTag
	Data any
}

// Nil is the nil value. Values are immutable, so sharing is fine.
var Nil = Value{Tag: VTNil}

func Bool(b bool) Value   { return Value{Tag: VTBool, Data: b} }
func Num(f float64) Value { return Value{Tag: VTNum, Data: f} }
func Str(s string) Value  { return Value{Tag: VTStr, Data: s} }

// AsBool, AsNum, AsStr assume the tag has been checked.
func (v Value) AsBool() bool   { return v.Data.(bool) }
func (v Value) AsNum() float64 { return v.Data.(float64) }
func (v Value) AsStr() string  { return v.Data.(string) }

// Truthy maps a value to a boolean for conditional contexts: nil and false
// are falsy, everything else (including 0 and "") is truthy.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VTNil:
		return false
	case VTBool:
		return v.AsBool()
	default:
		return true
	}
}

// Equal is total: values of different types are unequal, never an error.
// Nil equals only nil.
func (v Value) Equal(o Value) bool {
	if v.Tag != o.Tag {
		return false
	}
	if v.Tag == VTNil {
		return true
	}
	return v.Data == o.Data
}

// Stringify renders a value the way print shows it. Integral numbers render
// without a trailing ".0".
func (v Value) Stringify() string {
	switch v.Tag {
	case VTNil:
		return "nil"
	case VTBool:
		return strconv.FormatBool(v.AsBool())
	case VTNum:
		return strconv.FormatFloat(v.AsNum(), 'f', -1, 64)
	default:
		return v.AsStr()
	}
}

// valueFromLiteral lifts a decoded token literal (float64, string, bool, nil)
// into the runtime model.
func valueFromLiteral(lit any) Value {
	switch x := lit.(type) {
	case nil:
		return Nil
	case bool:
		return Bool(x)
	case float64:
		return Num(x)
	case string:
		return Str(x)
	default:
		// Unreachable while the parser only builds the four literal kinds.
		return Nil
	}
}
