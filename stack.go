package infix

// machine holds the working state of one EvalStack call: an operand stack
// and an operator stack. A fresh machine is created per call and discarded
// at return, so concurrent evaluations never share state.
type machine struct {
	operands  []Value
	operators []token
}

// EvalStack evaluates an expression in a single left-to-right pass using an
// operand stack and an operator stack. Values are pushed as they appear;
// each arriving operator first applies every stacked operator it is
// evaluated after, open parentheses are pushed unconditionally, and a close
// parenthesis applies stacked operators up to the matching open. Whatever
// single value remains at the end is the result.
func EvalStack(expression string) (Value, error) {
	toks, err := tokenize(expression)
	if err != nil {
		return Value{}, err
	}
	return evalStack(toks)
}

func evalStack(toks []token) (Value, error) {
	var m machine
	for _, t := range toks {
		switch {
		case t.isValue():
			m.operands = append(m.operands, t.val)
		case t.op == opOpenParen:
			m.operators = append(m.operators, t)
		case t.op == opCloseParen:
			if err := m.flushToOpenParen(t); err != nil {
				return Value{}, err
			}
		default:
			if err := m.flushToLowerPrecedence(t); err != nil {
				return Value{}, err
			}
		}
	}
	if err := m.flush(); err != nil {
		return Value{}, err
	}
	if len(m.operands) != 1 {
		return Value{}, &MalformedExpressionError{Count: len(m.operands)}
	}
	return m.operands[0], nil
}

// applyTop pops the top operator and applies it to the top one or two
// operands, pushing the result. An open parenthesis on top means the
// parenthesis was never closed.
func (m *machine) applyTop() error {
	t := m.operators[len(m.operators)-1]
	m.operators = m.operators[:len(m.operators)-1]
	if t.op == opOpenParen {
		return &BracketError{Col: t.pos}
	}
	// Pop y first: for a binary operator the second pop is the left operand.
	if len(m.operands) == 0 {
		return &UnderflowError{Op: t.op.String(), Col: t.pos}
	}
	y := m.operands[len(m.operands)-1]
	m.operands = m.operands[:len(m.operands)-1]
	var r Value
	var err error
	if t.op.isBinary() {
		if len(m.operands) == 0 {
			return &UnderflowError{Op: t.op.String(), Col: t.pos}
		}
		x := m.operands[len(m.operands)-1]
		m.operands = m.operands[:len(m.operands)-1]
		r, err = applyBinary(t.op, t.pos, x, y)
	} else {
		r, err = applyUnary(t.op, t.pos, y)
	}
	if err != nil {
		return err
	}
	m.operands = append(m.operands, r)
	return nil
}

// flushToLowerPrecedence applies stacked operators that the arriving
// operator is evaluated after, then pushes the arrival. An open parenthesis
// stops the flush, since its precedence is below every real operator.
func (m *machine) flushToLowerPrecedence(t token) error {
	for len(m.operators) > 0 && t.op.evaluatedAfter(m.operators[len(m.operators)-1].op) {
		if err := m.applyTop(); err != nil {
			return err
		}
	}
	m.operators = append(m.operators, t)
	return nil
}

// flushToOpenParen applies stacked operators until an open parenthesis is
// found and discards it. closing is the close parenthesis token, used for
// error positions.
func (m *machine) flushToOpenParen(closing token) error {
	for {
		if len(m.operators) == 0 {
			return &BracketError{Col: closing.pos}
		}
		if m.operators[len(m.operators)-1].op == opOpenParen {
			m.operators = m.operators[:len(m.operators)-1]
			return nil
		}
		if err := m.applyTop(); err != nil {
			return err
		}
	}
}

// flush applies every remaining operator at the end of the input.
func (m *machine) flush() error {
	for len(m.operators) > 0 {
		if err := m.applyTop(); err != nil {
			return err
		}
	}
	return nil
}
