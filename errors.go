package infix

import "strconv"

// EvalError is an error caused by the input expression. Every error returned
// from EvalStack or EvalRecursive implements EvalError.
type EvalError interface {
	error
	// Pos returns the 1-based position in the whitespace-stripped
	// expression of the token that caused the error, or 0 if the error has
	// no meaningful position.
	Pos() int
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// EmptyExpressionError indicates an expression, or a parenthesized
// subexpression, that is empty after whitespace removal.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression, or 0
	// when the whole input was empty.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	if err.Col <= 0 {
		return "empty expression"
	}
	return errpos(err.Col, "empty subexpression")
}

func (err *EmptyExpressionError) Pos() int { return err.Col }

// LexError indicates an unrecognized character or an operator token cut off
// by the end of the input.
type LexError struct {
	// Text is the character or partial operator that could not be scanned.
	Text string
	// Col is the position of the offending character.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int { return err.Col }

// NumberError indicates a numeric token whose text does not parse as a
// floating-point value, e.g. "1.2.3".
type NumberError struct {
	// Text is the scanned numeric token.
	Text string
	// Col is the position of the start of the token.
	Col int
	// Err is the underlying parse error.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int { return err.Col }

func (err *NumberError) Unwrap() error { return err.Err }

// BracketError indicates unbalanced or misordered parentheses.
type BracketError struct {
	// Col is the position of the parenthesis, or of the token at which the
	// imbalance was detected.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "mismatched parentheses")
}

func (err *BracketError) Pos() int { return err.Col }

// UnderflowError indicates an operator whose required operands are not
// available, e.g. a leading binary operator.
type UnderflowError struct {
	// Op is the symbol of the operator missing an operand.
	Op string
	// Col is the position of the operator.
	Col int
}

func (err *UnderflowError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Op)+" is missing an operand")
}

func (err *UnderflowError) Pos() int { return err.Col }

// MalformedExpressionError indicates an expression that did not reduce to
// exactly one value, e.g. "2 3" or "()".
type MalformedExpressionError struct {
	// Count is the number of values left over, possibly zero.
	Count int
}

func (err *MalformedExpressionError) Error() string {
	if err.Count == 0 {
		return "expression has no value"
	}
	return "expression reduces to " + strconv.Itoa(err.Count) + " values instead of one"
}

func (err *MalformedExpressionError) Pos() int { return 0 }

// TypeError indicates an operator applied to an operand of the wrong kind,
// or an operator standing where a value was expected.
type TypeError struct {
	// Op is the symbol of the operator.
	Op string
	// Col is the position of the operator.
	Col int
	// Got is the kind of the offending operand. Only meaningful when
	// Operand is true.
	Got Kind
	// Operand distinguishes a wrongly typed operand from an operator in
	// value position.
	Operand bool
}

func (err *TypeError) Error() string {
	if !err.Operand {
		return errpos(err.Col, "operator "+strconv.Quote(err.Op)+" where a value was expected")
	}
	return errpos(err.Col, "operator "+strconv.Quote(err.Op)+" applied to "+err.Got.String()+" operand")
}

func (err *TypeError) Pos() int { return err.Col }

// NonIntegralFactorialError indicates a factorial of a value that is not a
// non-negative integer representable exactly, e.g. "2.5!".
type NonIntegralFactorialError struct {
	// X is the operand.
	X float64
	// Col is the position of the factorial operator.
	Col int
}

func (err *NonIntegralFactorialError) Error() string {
	return errpos(err.Col, "factorial of non-integral value "+fmtnum(err.X))
}

func (err *NonIntegralFactorialError) Pos() int { return err.Col }

// NegativeFactorialError indicates a factorial of a negative integer.
type NegativeFactorialError struct {
	// X is the operand.
	X float64
	// Col is the position of the factorial operator.
	Col int
}

func (err *NegativeFactorialError) Error() string {
	return errpos(err.Col, "factorial of negative value "+fmtnum(err.X))
}

func (err *NegativeFactorialError) Pos() int { return err.Col }

// UndefinedOperationError indicates an operation with no defined result,
// i.e. 0^0.
type UndefinedOperationError struct {
	// Col is the position of the operator.
	Col int
}

func (err *UndefinedOperationError) Error() string {
	return errpos(err.Col, "0^0 is undefined")
}

func (err *UndefinedOperationError) Pos() int { return err.Col }

func fmtnum(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

var (
	_ EvalError = (*EmptyExpressionError)(nil)
	_ EvalError = (*LexError)(nil)
	_ EvalError = (*NumberError)(nil)
	_ EvalError = (*BracketError)(nil)
	_ EvalError = (*UnderflowError)(nil)
	_ EvalError = (*MalformedExpressionError)(nil)
	_ EvalError = (*TypeError)(nil)
	_ EvalError = (*NonIntegralFactorialError)(nil)
	_ EvalError = (*NegativeFactorialError)(nil)
	_ EvalError = (*UndefinedOperationError)(nil)
)
