package infix

import "unicode/utf8"

// operator identifies one of the fifteen operator and grouping symbols.
type operator int8

const (
	opNone operator = iota
	opOpenParen
	opCloseParen
	opFactorial
	opNegation
	opPower
	opMultiply
	opDivide
	opAdd
	opSubtract
	opGreater
	opGreaterEqual
	opLess
	opLessEqual
	opEqual
	opNotEqual
)

// opInfo is the fixed attribute record for an operator. Higher precedence
// binds tighter. binary and leftAssoc are meaningless for groupers.
type opInfo struct {
	sym       string
	prec      int8
	binary    bool
	leftAssoc bool
	grouper   bool
}

var opTable = [...]opInfo{
	opNone:         {sym: "?"},
	opOpenParen:    {sym: "(", prec: 0, grouper: true},
	opCloseParen:   {sym: ")", prec: 0, grouper: true},
	opFactorial:    {sym: "!", prec: 7, binary: false, leftAssoc: true},
	opNegation:     {sym: "-", prec: 6, binary: false, leftAssoc: false},
	opPower:        {sym: "^", prec: 5, binary: true, leftAssoc: false},
	opMultiply:     {sym: "*", prec: 4, binary: true, leftAssoc: true},
	opDivide:       {sym: "/", prec: 4, binary: true, leftAssoc: true},
	opAdd:          {sym: "+", prec: 3, binary: true, leftAssoc: true},
	opSubtract:     {sym: "-", prec: 3, binary: true, leftAssoc: true},
	opGreater:      {sym: ">", prec: 2, binary: true, leftAssoc: true},
	opGreaterEqual: {sym: ">=", prec: 2, binary: true, leftAssoc: true},
	opLess:         {sym: "<", prec: 2, binary: true, leftAssoc: true},
	opLessEqual:    {sym: "<=", prec: 2, binary: true, leftAssoc: true},
	opEqual:        {sym: "==", prec: 1, binary: true, leftAssoc: true},
	opNotEqual:     {sym: "!=", prec: 1, binary: true, leftAssoc: true},
}

func (op operator) String() string { return opTable[op].sym }

func (op operator) precedence() int8 { return opTable[op].prec }

func (op operator) isBinary() bool { return opTable[op].binary }

func (op operator) isGrouper() bool { return opTable[op].grouper }

// evaluatedAfter reports whether op, arriving in the input, is evaluated
// after other, i.e. other must be applied before op is pushed. For a
// left-associative op the comparison is inclusive so that equal precedence
// groups left to right; for a right-associative op it is strict.
func (op operator) evaluatedAfter(other operator) bool {
	if opTable[op].leftAssoc {
		return op.precedence() <= other.precedence()
	}
	return op.precedence() < other.precedence()
}

// resolveOperator scans the operator starting at byte i of the stripped
// expression and returns it with the number of bytes it occupies.
// Disambiguation uses one byte of look-ahead, and for "-" a look-back to
// decide between negation and subtraction: "-" is subtraction only when it
// directly follows a completed value, that is a digit, a decimal point, a
// close parenthesis, or a factorial.
func resolveOperator(expr string, i int) (operator, int, error) {
	next := byte(0)
	if i+1 < len(expr) {
		next = expr[i+1]
	}
	switch expr[i] {
	case '(':
		return opOpenParen, 1, nil
	case ')':
		return opCloseParen, 1, nil
	case '!':
		if next == '=' {
			return opNotEqual, 2, nil
		}
		return opFactorial, 1, nil
	case '-':
		if i > 0 && endsValue(expr[i-1]) {
			return opSubtract, 1, nil
		}
		return opNegation, 1, nil
	case '^':
		return opPower, 1, nil
	case '*':
		return opMultiply, 1, nil
	case '/':
		return opDivide, 1, nil
	case '+':
		return opAdd, 1, nil
	case '>':
		if next == 0 {
			return opNone, 0, &LexError{Text: ">", Col: i + 1}
		}
		if next == '=' {
			return opGreaterEqual, 2, nil
		}
		return opGreater, 1, nil
	case '<':
		if next == 0 {
			return opNone, 0, &LexError{Text: "<", Col: i + 1}
		}
		if next == '=' {
			return opLessEqual, 2, nil
		}
		return opLess, 1, nil
	case '=':
		if next == '=' {
			return opEqual, 2, nil
		}
		return opNone, 0, &LexError{Text: "=", Col: i + 1}
	default:
		r, _ := utf8.DecodeRuneInString(expr[i:])
		return opNone, 0, &LexError{Text: string(r), Col: i + 1}
	}
}

// endsValue reports whether a character can be the last character of a
// value: a number, a parenthesized subexpression, or a factorial of either.
func endsValue(c byte) bool {
	return isDigitOrDot(c) || c == ')' || c == '!'
}

// isDigitOrDot reports whether c continues a numeric token.
func isDigitOrDot(c byte) bool {
	return '0' <= c && c <= '9' || c == '.'
}
