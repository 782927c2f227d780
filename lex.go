package infix

import (
	"strconv"
	"strings"
	"unicode"
)

// token is an atomic unit of an expression: a value or an operator.
// Value tokens have op == opNone. pos is the 1-based position of the token
// in the whitespace-stripped expression.
type token struct {
	op  operator
	val Value
	pos int
}

func (t token) isValue() bool { return t.op == opNone }

func (t token) String() string {
	if t.isValue() {
		return t.val.String() + "@" + strconv.Itoa(t.pos)
	}
	return t.op.String() + "@" + strconv.Itoa(t.pos)
}

// tokenize converts an expression string into its token sequence. All
// whitespace is removed in a pre-pass, so "1 + 2" and "1+2" scan the same.
// A numeric token is the maximal run of digits and decimal points; the
// scanner is permissive, and a malformed run such as "1.2.3" fails only at
// ParseFloat time with a NumberError. A "-" directly preceding a digit is
// the negation operator, not a sign folded into the literal, so that
// "-3!" negates the factorial rather than taking the factorial of -3.
func tokenize(expression string) ([]token, error) {
	expr := stripSpace(expression)
	if expr == "" {
		return nil, &EmptyExpressionError{}
	}
	var toks []token
	for i := 0; i < len(expr); {
		if isDigitOrDot(expr[i]) {
			j := i + 1
			for j < len(expr) && isDigitOrDot(expr[j]) {
				j++
			}
			text := expr[i:j]
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &NumberError{Text: text, Col: i + 1, Err: err}
			}
			toks = append(toks, token{val: Number(f), pos: i + 1})
			i = j
			continue
		}
		op, sz, err := resolveOperator(expr, i)
		if err != nil {
			return nil, err
		}
		toks = append(toks, token{op: op, pos: i + 1})
		i += sz
	}
	return toks, nil
}

// stripSpace removes every Unicode whitespace character from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
