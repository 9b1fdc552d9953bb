package calcbrain

// Evaluate evaluates the stack from its top and returns the result. If an
// error occurs, e.g. a missing variable or a division by zero, evaluation
// still completes and the result is whatever the operators computed along
// the way, which may be Inf or NaN; the error is the one found deepest in the stack. An
// operator without enough operands contributes 0 in place of its result.
// The stack and its result are logged at debug level.
func (e *Engine) Evaluate() (float64, error) {
	if len(e.stack) == 0 {
		e.log.Debug().Msg("nothing to evaluate")
		return 0, ErrEmptyStack
	}
	rest, r, _, err := e.eval(e.stack)
	if err != nil {
		e.log.Debug().
			Stringer("stack", tokens(e.stack)).
			Float64("result", r).
			Stringer("left", tokens(rest)).
			Err(err).
			Msg("evaluation error")
		return r, err
	}
	e.log.Debug().
		Stringer("stack", tokens(e.stack)).
		Float64("result", r).
		Stringer("left", tokens(rest)).
		Msg("evaluated")
	return r, nil
}

// Err returns the error from evaluating the stack, if any. If the stack is
// empty, the result is ErrEmptyStack.
func (e *Engine) Err() error {
	if len(e.stack) == 0 {
		return ErrEmptyStack
	}
	_, _, _, err := e.eval(e.stack)
	return err
}

// eval evaluates the token at the top of ops. It returns the tokens below
// those it used, the value, whether there was any token to evaluate, and the
// first error encountered. Operators are applied even when an error has
// occurred, so that the remaining tokens are always consistent.
func (e *Engine) eval(ops []token) (rest []token, r float64, ok bool, err error) {
	if len(ops) == 0 {
		return ops, 0, false, nil
	}
	t := ops[len(ops)-1]
	rest = ops[:len(ops)-1]
	switch t.kind {
	case tokenOperand:
		return rest, t.val, true, nil
	case tokenVariable:
		v, ok := e.vars[t.name]
		if !ok {
			return rest, 0, true, &NameError{Name: t.name}
		}
		return rest, v, true, nil
	case tokenConstant:
		v, ok := e.consts[t.name]
		if !ok {
			return rest, 0, true, &NameError{Name: t.name, Constant: true}
		}
		return rest, v, true, nil
	case tokenUnary:
		rest, x, ok, err := e.eval(rest)
		if !ok {
			return rest, 0, true, &ArgumentError{Op: t.name}
		}
		if err == nil && t.check1 != nil {
			err = t.check1(x)
		}
		return rest, t.unary(x), true, err
	case tokenBinary:
		rest, a, ok, aerr := e.eval(rest)
		if !ok {
			return rest, 0, true, &ArgumentError{Op: t.name}
		}
		rest, b, ok, err := e.eval(rest)
		if !ok {
			return rest, 0, true, &ArgumentError{Op: t.name}
		}
		// The deeper operand's error wins, then the other operand's, then
		// this operator's check.
		if err == nil {
			err = aerr
		}
		if err == nil && t.check2 != nil {
			err = t.check2(a, b)
		}
		return rest, t.binary(a, b), true, err
	default:
		panic("calcbrain: invalid token kind " + t.kind.String())
	}
}
