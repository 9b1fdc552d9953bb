package calcbrain

import (
	"errors"
	"strconv"
)

var (
	// ErrEmptyStack is returned when evaluating an engine with no tokens.
	ErrEmptyStack = errors.New("nothing to evaluate")
	// ErrDivisionByZero is the cause of a DomainError for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeSqrt is the cause of a DomainError for the square root of a
	// negative number.
	ErrNegativeSqrt = errors.New("negative square root")
)

// ArgumentError is an error indicating an operator with fewer operands on the
// stack than it takes.
type ArgumentError struct {
	// Op is the symbol of the operator.
	Op string
}

func (err *ArgumentError) Error() string {
	return "insufficient arguments for " + err.Op
}

// NameError is an error from a lookup for a variable or constant that has no
// value.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Constant is whether the name referred to a constant.
	Constant bool
}

func (err *NameError) Error() string {
	if err.Constant {
		return "undefined constant: " + strconv.Quote(err.Name)
	}
	return "undefined variable: " + strconv.Quote(err.Name)
}

// DomainError is an error reported when an operator is applied to operands
// outside its domain. The operator's result is still computed. DomainError
// unwraps to its cause, e.g. ErrDivisionByZero.
type DomainError struct {
	// X is the out-of-domain operand.
	X float64
	// Func is the symbol of the operator.
	Func string
	// Err is the cause.
	Err error
}

func (err *DomainError) Error() string {
	return err.Err.Error() + " (" + strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func + ")"
}

func (err *DomainError) Unwrap() error {
	return err.Err
}

// OperatorError is an error indicating an operator symbol that the engine
// does not know.
type OperatorError struct {
	// Operator is the symbol that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return "unknown operator " + strconv.Quote(err.Operator)
}
