package infix

import "strconv"

// Kind is the tag in the Value tagged union.
type Kind uint8

const (
	// KindNumber tags a float64 value.
	KindNumber Kind = iota
	// KindBoolean tags a boolean value.
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the result of evaluating an expression: either a number or a
// boolean. Arithmetic operators consume and produce numbers; comparison and
// equality operators consume numbers and produce booleans. The zero Value is
// the number 0.
type Value struct {
	kind Kind
	num  float64
	b    bool
}

// Number creates a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Boolean creates a boolean value.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// Kind returns the tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Num returns the numeric payload and whether the value is a number.
func (v Value) Num() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Bool returns the boolean payload and whether the value is a boolean.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	default:
		panic("infix: invalid value kind " + v.kind.String())
	}
}
