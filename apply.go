package infix

import "math"

// applyUnary applies a unary operator to its operand. col is the position
// of the operator, carried into any error.
func applyUnary(op operator, col int, x Value) (Value, error) {
	f, ok := x.Num()
	if !ok {
		return Value{}, &TypeError{Op: op.String(), Col: col, Got: x.Kind(), Operand: true}
	}
	switch op {
	case opNegation:
		return Number(-f), nil
	case opFactorial:
		r, err := factorial(f, col)
		if err != nil {
			return Value{}, err
		}
		return Number(r), nil
	default:
		panic("infix: unary application of " + op.String())
	}
}

// applyBinary applies a binary operator to its operands, x on the left.
// Arithmetic operators produce numbers with ordinary IEEE semantics, so
// division by zero yields an infinity or NaN rather than an error.
// Comparison and equality operators produce booleans.
func applyBinary(op operator, col int, x, y Value) (Value, error) {
	a, ok := x.Num()
	if !ok {
		return Value{}, &TypeError{Op: op.String(), Col: col, Got: x.Kind(), Operand: true}
	}
	b, ok := y.Num()
	if !ok {
		return Value{}, &TypeError{Op: op.String(), Col: col, Got: y.Kind(), Operand: true}
	}
	switch op {
	case opPower:
		r, err := power(a, b, col)
		if err != nil {
			return Value{}, err
		}
		return Number(r), nil
	case opMultiply:
		return Number(a * b), nil
	case opDivide:
		return Number(a / b), nil
	case opAdd:
		return Number(a + b), nil
	case opSubtract:
		return Number(a - b), nil
	case opGreater:
		return Boolean(a > b), nil
	case opGreaterEqual:
		return Boolean(a >= b), nil
	case opLess:
		return Boolean(a < b), nil
	case opLessEqual:
		return Boolean(a <= b), nil
	case opEqual:
		return Boolean(a == b), nil
	case opNotEqual:
		return Boolean(a != b), nil
	default:
		panic("infix: binary application of " + op.String())
	}
}

// maxExactInt bounds the float64 range in which every integer is exactly
// representable. At or beyond it, consecutive float64 values differ by more
// than one and an integral operand cannot be told from a rounded one.
const maxExactInt = 1 << 53

// isExactInt reports whether x is a finite integer of magnitude below
// maxExactInt.
func isExactInt(x float64) bool {
	return math.Abs(x) < maxExactInt && x == math.Trunc(x)
}

// factorial computes x! for a non-negative integral operand by iterated
// multiplication. Operands at or beyond maxExactInt are rejected along with
// non-integral ones.
func factorial(x float64, col int) (float64, error) {
	if !isExactInt(x) {
		return 0, &NonIntegralFactorialError{X: x, Col: col}
	}
	if x < 0 {
		return 0, &NegativeFactorialError{X: x, Col: col}
	}
	v := 1.0
	for i := 2.0; i <= x; i++ {
		v *= i
	}
	return v, nil
}

// power computes x^y. An integral exponent of magnitude below maxExactInt
// multiplies iteratively, taking the reciprocal for negative exponents; any
// other exponent uses the definition exp(y*ln(x)), which propagates NaN for
// x <= 0.
func power(x, y float64, col int) (float64, error) {
	if isExactInt(y) {
		return intPow(x, y, col)
	}
	return math.Exp(y * math.Log(x)), nil
}

func intPow(x, n float64, col int) (float64, error) {
	if n == 0 && x == 0 {
		return 0, &UndefinedOperationError{Col: col}
	}
	if n < 0 {
		r, err := intPow(x, -n, col)
		if err != nil {
			return 0, err
		}
		return 1 / r, nil
	}
	v := 1.0
	for i := 1.0; i <= n; i++ {
		v *= x
	}
	return v, nil
}
