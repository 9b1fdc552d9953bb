package calcbrain

import (
	"math"
	"strconv"
	"strings"
)

// token is an entry on the engine's stack.
type token struct {
	kind tokenKind

	// val is the value of an operand.
	val float64
	// name is the symbol of an operator or the name of a variable or constant.
	name string
	// prec is the precedence of a binary operator.
	prec int

	unary  func(x float64) float64
	binary func(a, b float64) float64
	// check1 and check2 report domain errors of unary and binary operators,
	// respectively. Either may be nil.
	check1 func(x float64) error
	check2 func(a, b float64) error
}

type tokenKind int8

const (
	tokenNone tokenKind = iota

	tokenOperand  // push val
	tokenVariable // push lookup(name) in variables
	tokenConstant // push lookup(name) in constants
	tokenUnary    // eval one operand, apply unary
	tokenBinary   // eval two operands, apply binary
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenOperand:
		return "Operand"
	case tokenVariable:
		return "Variable"
	case tokenConstant:
		return "Constant"
	case tokenUnary:
		return "Unary"
	case tokenBinary:
		return "Binary"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

// maxPrec is the precedence of everything that is not a binary operator.
const maxPrec = math.MaxInt

// precedence returns the precedence of t for the purpose of parenthesizing.
func (t token) precedence() int {
	if t.kind == tokenBinary {
		return t.prec
	}
	return maxPrec
}

func (t token) String() string {
	switch t.kind {
	case tokenOperand:
		return formatOperand(t.val)
	case tokenVariable, tokenConstant, tokenUnary, tokenBinary:
		return t.name
	default:
		panic("calcbrain: invalid token kind " + t.kind.String())
	}
}

// tokens formats a stack in debug output.
type tokens []token

func (s tokens) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(']')
	return b.String()
}

// formatOperand formats a number for descriptions. Integral values keep a
// trailing ".0" so that they read as decimals on the calculator display.
func formatOperand(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e16 {
		return strconv.FormatFloat(v, 'f', -1, 64) + ".0"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// negSymbol is the symbol of the sign change operator, which is described
// with the subtraction glyph instead.
const negSymbol = "±"

// describe renders the token at the top of ops as infix text. It returns the
// text, whether any text was rendered, the tokens below those it used, and
// the precedence of the rendered fragment. If nothing could be rendered, the
// top token is still consumed.
func describe(ops []token) (string, bool, []token, int) {
	if len(ops) == 0 {
		return "", false, ops, 0
	}
	t := ops[len(ops)-1]
	rest := ops[:len(ops)-1]
	switch t.kind {
	case tokenOperand, tokenVariable, tokenConstant:
		return t.String(), true, rest, maxPrec
	case tokenUnary:
		x, ok, rest, _ := describe(rest)
		if !ok {
			return "", false, rest, 0
		}
		sym := t.name
		if sym == negSymbol {
			sym = "−"
		}
		return sym + "(" + x + ")", true, rest, maxPrec
	case tokenBinary:
		// The right operand is the one pushed most recently.
		r, ok, rest, rp := describe(rest)
		if !ok {
			return "", false, rest, 0
		}
		if rp < t.prec {
			r = "(" + r + ")"
		}
		l, ok, rest, lp := describe(rest)
		switch {
		case !ok:
			l = "?"
		case lp < t.prec:
			l = "(" + l + ")"
		}
		return l + t.name + r, true, rest, t.prec
	default:
		panic("calcbrain: invalid token kind " + t.kind.String())
	}
}
