package calcbrain

import (
	"sort"

	"github.com/rs/zerolog"
)

// Engine is the model of a calculator. It holds a stack of tokens pushed in
// postfix order, the operators and constants it knows, and variable values.
// It is not safe to use an Engine concurrently.
type Engine struct {
	stack  []token
	ops    map[string]token
	consts map[string]float64
	vars   map[string]float64
	log    zerolog.Logger
	opts   []Option
}

// Option is an option used when creating an engine.
type Option interface {
	engineOption()
}

type (
	opopt  token
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
	logopt  zerolog.Logger
)

func (opopt) engineOption()   {}
func (varopt) engineOption()  {}
func (varsopt) engineOption() {}
func (logopt) engineOption()  {}

// Unary registers a unary operator. check may be nil; if not, it reports
// whether x is in the operator's domain. Registering a symbol that the engine
// already knows replaces the earlier operator.
func Unary(symbol string, f func(x float64) float64, check func(x float64) error) Option {
	return opopt(unaryOp(symbol, f, check))
}

// Binary registers a binary operator with the given precedence. f receives
// the most recently pushed operand as a and the one before it as b, so an
// operator meaning "b minus a" reads conventionally. check may be nil.
// Registering a symbol that the engine already knows replaces the earlier
// operator.
func Binary(symbol string, f func(a, b float64) float64, prec int, check func(a, b float64) error) Option {
	return opopt(binaryOp(symbol, f, prec, check))
}

// SetVar sets the value of a variable in the engine.
func SetVar(name string, val float64) Option {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the engine.
func SetVars(vars map[string]float64) Option {
	return varsopt(vars)
}

// Logger sets the logger which receives evaluation traces at debug level.
// The default discards them.
func Logger(l zerolog.Logger) Option {
	return logopt(l)
}

// New creates an engine with an empty stack. It knows the operators ×, +, −,
// ÷, √, ± (sign change), sin, and cos, and the constants π and e.
func New(opts ...Option) *Engine {
	e := Engine{
		ops:    make(map[string]token),
		consts: make(map[string]float64, len(constants)),
		vars:   make(map[string]float64),
		log:    zerolog.Nop(),
		opts:   opts,
	}
	for _, op := range defaultOps() {
		e.learn(op)
	}
	for k, v := range constants {
		e.consts[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case opopt:
			e.learn(token(opt))
		case varopt:
			e.vars[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				e.vars[k] = v
			}
		case logopt:
			e.log = zerolog.Logger(opt)
		default:
			panic("calcbrain: unknown option type")
		}
	}
	return &e
}

// learn registers an operator. The last registration of a symbol wins.
func (e *Engine) learn(op token) {
	e.ops[op.name] = op
}

// Fresh returns a new engine created with the same operator and logger
// options as e. The new engine has an empty stack, no variables, and the
// default constants. e is unchanged.
func (e *Engine) Fresh() *Engine {
	opts := make([]Option, 0, len(e.opts))
	for _, opt := range e.opts {
		switch opt.(type) {
		case varopt, varsopt:
			// Clearing discards variables, including initial ones.
		default:
			opts = append(opts, opt)
		}
	}
	return New(opts...)
}

// PushLiteral pushes a number and returns the result of evaluating the stack.
func (e *Engine) PushLiteral(v float64) (float64, error) {
	e.stack = append(e.stack, token{kind: tokenOperand, val: v})
	return e.Evaluate()
}

// PushVariable pushes a reference to a variable and returns the result of
// evaluating the stack. The variable's value is looked up each time the stack
// is evaluated, so it need not be set yet.
func (e *Engine) PushVariable(name string) (float64, error) {
	e.stack = append(e.stack, token{kind: tokenVariable, name: name})
	return e.Evaluate()
}

// PushConstant pushes a reference to a constant and returns the result of
// evaluating the stack.
func (e *Engine) PushConstant(name string) (float64, error) {
	e.stack = append(e.stack, token{kind: tokenConstant, name: name})
	return e.Evaluate()
}

// PerformOperation pushes the operator with the given symbol and returns the
// result of evaluating the stack. If the engine has no such operator, nothing
// is pushed, and the error is an *OperatorError.
func (e *Engine) PerformOperation(symbol string) (float64, error) {
	op, ok := e.ops[symbol]
	if !ok {
		v, _ := e.Evaluate()
		return v, &OperatorError{Operator: symbol}
	}
	e.stack = append(e.stack, op)
	return e.Evaluate()
}

// Pop removes the top of the stack if it is a number and returns it. If the
// stack is empty or its top is anything else, the stack is unchanged and the
// second result is false.
func (e *Engine) Pop() (float64, bool) {
	if len(e.stack) == 0 {
		return 0, false
	}
	t := e.stack[len(e.stack)-1]
	if t.kind != tokenOperand {
		return 0, false
	}
	e.stack = e.stack[:len(e.stack)-1]
	return t.val, true
}

// Len returns the number of tokens on the stack.
func (e *Engine) Len() int {
	return len(e.stack)
}

// Set sets the value of a variable. Returns e for chaining.
func (e *Engine) Set(name string, value float64) *Engine {
	e.vars[name] = value
	return e
}

// Unset removes a variable.
func (e *Engine) Unset(name string) {
	delete(e.vars, name)
}

// Lookup returns the value of a variable and whether it is set.
func (e *Engine) Lookup(name string) (float64, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Vars returns the names of all set variables in sorted order.
func (e *Engine) Vars() []string {
	r := make([]string, 0, len(e.vars))
	for k := range e.vars {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// Operators returns the symbols of all operators the engine knows in sorted
// order.
func (e *Engine) Operators() []string {
	r := make([]string, 0, len(e.ops))
	for k := range e.ops {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// String returns the description of the stack.
func (e *Engine) String() string {
	return e.Description()
}

// Description returns the stack as infix text. Each complete expression on
// the stack appears, oldest first, separated by commas, followed by "=". An
// operator missing its left operand shows "?" in its place. If the top of the
// stack cannot be described, e.g. because the stack is empty, the result is
// a single space.
func (e *Engine) Description() string {
	text, ok, rest, _ := describe(e.stack)
	if !ok {
		return " "
	}
	for len(rest) > 0 {
		var s string
		s, ok, rest, _ = describe(rest)
		if ok {
			text = s + "," + text
		}
	}
	return text + "="
}
