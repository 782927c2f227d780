package infix

// EvalRecursive evaluates an expression by divide and conquer over its
// token sequence. Parenthesized spans are reduced to a single value token
// one at a time; otherwise the sequence splits at the loosest-binding
// operator and each side evaluates recursively. It accepts the same grammar
// as EvalStack and produces identical results for every valid input.
func EvalRecursive(expression string) (Value, error) {
	toks, err := tokenize(expression)
	if err != nil {
		return Value{}, err
	}
	return evalRecursive(toks)
}

func evalRecursive(toks []token) (Value, error) {
	if len(toks) == 1 {
		t := toks[0]
		if !t.isValue() {
			return Value{}, &TypeError{Op: t.op.String(), Col: t.pos}
		}
		return t.val, nil
	}

	// Parenthesis handling pairs the first open with the last close, not
	// with bracket matching. Inputs with several disjoint parenthesized
	// groups at the same level therefore fail.
	if open := indexOpenParen(toks); open >= 0 {
		closing := indexCloseParen(toks)
		if closing < open {
			col := toks[open].pos
			if closing >= 0 {
				col = toks[closing].pos
			}
			return Value{}, &BracketError{Col: col}
		}
		inner := toks[open+1 : closing]
		if len(inner) == 0 {
			return Value{}, &EmptyExpressionError{Col: toks[closing].pos}
		}
		v, err := evalRecursive(inner)
		if err != nil {
			return Value{}, err
		}
		next := make([]token, 0, len(toks)-(closing-open))
		next = append(next, toks[:open]...)
		next = append(next, token{val: v, pos: toks[open].pos})
		next = append(next, toks[closing+1:]...)
		return evalRecursive(next)
	}

	k := splitIndex(toks)
	if k < 0 {
		// Several values with no operator between them.
		return Value{}, &MalformedExpressionError{Count: len(toks)}
	}
	t := toks[k]
	if t.op.isGrouper() {
		// A close parenthesis with no open anywhere.
		return Value{}, &BracketError{Col: t.pos}
	}
	left, right := toks[:k], toks[k+1:]
	switch {
	case t.op.isBinary():
		if len(left) == 0 || len(right) == 0 {
			return Value{}, &UnderflowError{Op: t.op.String(), Col: t.pos}
		}
		x, err := evalRecursive(left)
		if err != nil {
			return Value{}, err
		}
		y, err := evalRecursive(right)
		if err != nil {
			return Value{}, err
		}
		return applyBinary(t.op, t.pos, x, y)
	case t.op == opNegation:
		// Prefix: only the right side participates.
		if len(right) == 0 {
			return Value{}, &UnderflowError{Op: t.op.String(), Col: t.pos}
		}
		y, err := evalRecursive(right)
		if err != nil {
			return Value{}, err
		}
		return applyUnary(t.op, t.pos, y)
	case t.op == opFactorial:
		// Postfix: only the left side participates.
		if len(left) == 0 {
			return Value{}, &UnderflowError{Op: t.op.String(), Col: t.pos}
		}
		x, err := evalRecursive(left)
		if err != nil {
			return Value{}, err
		}
		return applyUnary(t.op, t.pos, x)
	default:
		panic("infix: unsplittable operator " + t.op.String())
	}
}

// indexOpenParen returns the index of the first open parenthesis, or -1.
func indexOpenParen(toks []token) int {
	for i, t := range toks {
		if t.op == opOpenParen {
			return i
		}
	}
	return -1
}

// indexCloseParen returns the index of the last close parenthesis, or -1.
func indexCloseParen(toks []token) int {
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].op == opCloseParen {
			return i
		}
	}
	return -1
}

// splitIndex returns the index of the operator the sequence splits at: the
// one with minimum precedence, since it is evaluated last. Among equals the
// rightmost wins for left-associative levels and the leftmost for
// right-associative levels, so that grouping agrees with the stack
// evaluator. Returns -1 if the sequence holds no operator.
func splitIndex(toks []token) int {
	idx := -1
	var minPrec int8
	for i, t := range toks {
		if t.isValue() {
			continue
		}
		p := t.op.precedence()
		switch {
		case idx < 0 || p < minPrec:
			minPrec, idx = p, i
		case p == minPrec && opTable[t.op].leftAssoc:
			idx = i
		}
	}
	return idx
}
