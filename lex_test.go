package infix

import (
	"errors"
	"reflect"
	"testing"
)

func num(f float64, pos int) token { return token{val: Number(f), pos: pos} }

func opTok(op operator, pos int) token { return token{op: op, pos: pos} }

func TestTokenize(t *testing.T) {
	cases := []struct {
		src    string
		tokens []token
	}{
		// numbers
		{"0", []token{num(0, 1)}},
		{"9876543210", []token{num(9876543210, 1)}},
		{"1.5", []token{num(1.5, 1)}},
		{".5", []token{num(0.5, 1)}},
		{"1.", []token{num(1, 1)}},
		// whitespace is stripped before scanning, so digits can merge
		{" 1 2 ", []token{num(12, 1)}},
		{"\t1 +\n2", []token{num(1, 1), opTok(opAdd, 2), num(2, 3)}},
		// single-character operators
		{"1+2", []token{num(1, 1), opTok(opAdd, 2), num(2, 3)}},
		{"1*2", []token{num(1, 1), opTok(opMultiply, 2), num(2, 3)}},
		{"1/2", []token{num(1, 1), opTok(opDivide, 2), num(2, 3)}},
		{"1^2", []token{num(1, 1), opTok(opPower, 2), num(2, 3)}},
		{"(1)", []token{opTok(opOpenParen, 1), num(1, 2), opTok(opCloseParen, 3)}},
		// two-character operators and their one-character cousins
		{"1<2", []token{num(1, 1), opTok(opLess, 2), num(2, 3)}},
		{"1<=2", []token{num(1, 1), opTok(opLessEqual, 2), num(2, 4)}},
		{"1>2", []token{num(1, 1), opTok(opGreater, 2), num(2, 3)}},
		{"1>=2", []token{num(1, 1), opTok(opGreaterEqual, 2), num(2, 4)}},
		{"1==2", []token{num(1, 1), opTok(opEqual, 2), num(2, 4)}},
		{"1!=2", []token{num(1, 1), opTok(opNotEqual, 2), num(2, 4)}},
		{"3!", []token{num(3, 1), opTok(opFactorial, 2)}},
		// negation vs subtraction
		{"-3", []token{opTok(opNegation, 1), num(3, 2)}},
		{"5-3", []token{num(5, 1), opTok(opSubtract, 2), num(3, 3)}},
		{"5--3", []token{num(5, 1), opTok(opSubtract, 2), opTok(opNegation, 3), num(3, 4)}},
		{"2*-3", []token{num(2, 1), opTok(opMultiply, 2), opTok(opNegation, 3), num(3, 4)}},
		{"(1)-3", []token{opTok(opOpenParen, 1), num(1, 2), opTok(opCloseParen, 3), opTok(opSubtract, 4), num(3, 5)}},
		{"3!-2", []token{num(3, 1), opTok(opFactorial, 2), opTok(opSubtract, 3), num(2, 4)}},
		{"1==-2", []token{num(1, 1), opTok(opEqual, 2), opTok(opNegation, 4), num(2, 5)}},
		{"-(2)", []token{opTok(opNegation, 1), opTok(opOpenParen, 2), num(2, 3), opTok(opCloseParen, 4)}},
	}
	for _, c := range cases {
		got, err := tokenize(c.src)
		if err != nil {
			t.Errorf("tokenizing %q: unexpected error %v", c.src, err)
			continue
		}
		if len(got) != len(c.tokens) {
			t.Errorf("tokenizing %q: want %v, got %v", c.src, c.tokens, got)
			continue
		}
		for i, want := range c.tokens {
			if got[i] != want {
				t.Errorf("tokenizing %q: token %d: want %v, got %v", c.src, i, want, got[i])
			}
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		src  string
		want error
	}{
		{"", new(EmptyExpressionError)},
		{" \t \r\n ", new(EmptyExpressionError)},
		{"$", new(LexError)},
		{"1a", new(LexError)},
		{"π", new(LexError)},
		{"=", new(LexError)},
		{"1=2", new(LexError)},
		{"5<", new(LexError)},
		{"5>", new(LexError)},
		{"1.2.3", new(NumberError)},
		{".", new(NumberError)},
	}
	for _, c := range cases {
		_, err := tokenize(c.src)
		if err == nil {
			t.Errorf("tokenizing %q: no error", c.src)
			continue
		}
		if reflect.TypeOf(err) != reflect.TypeOf(c.want) {
			t.Errorf("tokenizing %q: error %#v is not %T", c.src, err, c.want)
		}
		var ee EvalError
		if !errors.As(err, &ee) {
			t.Errorf("tokenizing %q: error %#v does not implement EvalError", c.src, err)
		}
	}
}
