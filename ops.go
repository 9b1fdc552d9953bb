package calcbrain

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Precedences of the default binary operators.
const (
	PrecSum     = 10
	PrecProduct = 20
)

// defaultOps returns the operators every engine knows.
func defaultOps() []token {
	return []token{
		binaryOp("×", func(a, b float64) float64 { return a * b }, PrecProduct, nil),
		binaryOp("+", func(a, b float64) float64 { return a + b }, PrecSum, nil),
		// Operands arrive most recent first, so b is the minuend.
		binaryOp("−", func(a, b float64) float64 { return b - a }, PrecSum, nil),
		binaryOp("÷", func(a, b float64) float64 { return b / a }, PrecProduct, checkDivisor),
		unaryOp("√", math.Sqrt, checkSqrt),
		unaryOp(negSymbol, func(x float64) float64 { return 0 - x }, nil),
		unaryOp("sin", math.Sin, nil),
		unaryOp("cos", math.Cos, nil),
	}
}

func unaryOp(sym string, f func(float64) float64, check func(float64) error) token {
	return token{kind: tokenUnary, name: sym, unary: f, check1: check}
}

func binaryOp(sym string, f func(a, b float64) float64, prec int, check func(a, b float64) error) token {
	return token{kind: tokenBinary, name: sym, binary: f, prec: prec, check2: check}
}

func checkDivisor(a, b float64) error {
	if a == 0 {
		return &DomainError{X: a, Func: "÷", Err: ErrDivisionByZero}
	}
	return nil
}

func checkSqrt(x float64) error {
	if x < 0 {
		return &DomainError{X: x, Func: "√", Err: ErrNegativeSqrt}
	}
	return nil
}

// constPrec is the precision in bits to which default constants are computed
// before rounding to float64.
const constPrec = 64

// constants is the default constant table. Engines copy it on construction.
var constants = map[string]float64{
	"π": niladic(bigfloat.Pi),
	"e": niladic(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	}),
}

// niladic computes a constant with f and rounds it to the nearest float64.
func niladic(f func(out *big.Float) *big.Float) float64 {
	r := new(big.Float).SetPrec(constPrec)
	f(r)
	v, _ := r.Float64()
	return v
}
