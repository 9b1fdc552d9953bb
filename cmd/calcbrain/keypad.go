package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zephyrtronium/calcbrain"
)

// keypad drives an engine the way the buttons of a calculator do. Digits are
// collected on the display until an operation needs them, at which point the
// display is entered as a number.
type keypad struct {
	brain    *calcbrain.Engine
	display  string
	entering bool
	// digits is the number of decimal places shown, or negative to show
	// results exactly.
	digits int32
}

func newKeypad(brain *calcbrain.Engine, digits int32) *keypad {
	return &keypad{brain: brain, display: "0", digits: digits}
}

// Display returns the text of the main display.
func (k *keypad) Display() string {
	return k.display
}

// History returns the description of the engine's stack.
func (k *keypad) History() string {
	return k.brain.Description()
}

// value parses the display.
func (k *keypad) value() (float64, bool) {
	v, err := strconv.ParseFloat(k.display, 64)
	return v, err == nil
}

// show sets the display to a result, or to the error if there is one.
func (k *keypad) show(v float64, err error) {
	k.entering = false
	if err != nil {
		k.display = err.Error()
		return
	}
	k.display = k.format(v)
}

func (k *keypad) format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	d := decimal.NewFromFloat(v)
	if k.digits >= 0 {
		d = d.Round(k.digits)
	}
	return d.String()
}

// Digit types digits or a decimal point. A second decimal point in the same
// number is ignored, and a leading one starts the number at "0.".
func (k *keypad) Digit(d string) {
	if d == "." && k.entering && strings.Contains(k.display, ".") {
		return
	}
	if !k.entering {
		if d == "." {
			d = "0."
		}
		k.display = d
		k.entering = true
		return
	}
	k.display += d
}

// Enter pushes the display as a number.
func (k *keypad) Enter() {
	k.entering = false
	v, ok := k.value()
	if !ok {
		return
	}
	k.show(k.brain.PushLiteral(v))
}

// Operation performs an operator, first entering any number being typed.
func (k *keypad) Operation(symbol string) {
	if k.entering {
		k.Enter()
	}
	k.show(k.brain.PerformOperation(symbol))
}

// Variable pushes a variable reference.
func (k *keypad) Variable(name string) {
	if k.entering {
		k.Enter()
	}
	k.show(k.brain.PushVariable(name))
}

// Constant pushes a constant reference.
func (k *keypad) Constant(name string) {
	if k.entering {
		k.Enter()
	}
	k.show(k.brain.PushConstant(name))
}

// Store sets a variable to the displayed value, or unsets it if the display
// is not a number, then shows the stack re-evaluated with the new value.
func (k *keypad) Store(name string) {
	k.entering = false
	if v, ok := k.value(); ok {
		k.brain.Set(name, v)
	} else {
		k.brain.Unset(name)
	}
	k.show(k.brain.Evaluate())
}

// Backspace deletes the last typed digit. With nothing left to delete, it
// brings the number on top of the stack back onto the display for editing.
func (k *keypad) Backspace() {
	if k.entering && len([]rune(k.display)) > 1 {
		r := []rune(k.display)
		k.display = string(r[:len(r)-1])
		return
	}
	if v, ok := k.brain.Pop(); ok {
		k.show(v, nil)
		k.entering = true
		return
	}
	k.show(k.brain.Evaluate())
}

// Negate changes the sign of the number being typed, or applies ± otherwise.
func (k *keypad) Negate() {
	if !k.entering {
		k.show(k.brain.PerformOperation("±"))
		return
	}
	if strings.HasPrefix(k.display, "-") {
		k.display = k.display[1:]
	} else {
		k.display = "-" + k.display
	}
}

// Clear replaces the engine with a fresh one.
func (k *keypad) Clear() {
	k.entering = false
	k.brain = k.brain.Fresh()
	k.display = "0"
}

// opAliases maps typeable spellings to operator symbols.
var opAliases = map[string]string{
	"*":    "×",
	"/":    "÷",
	"-":    "−",
	"sqrt": "√",
}

// constAliases maps typeable spellings to constant names.
var constAliases = map[string]string{
	"pi": "π",
	"π":  "π",
	"e":  "e",
}

// Press handles one scanned key.
func (k *keypad) Press(p key) {
	switch p.kind {
	case keyNum:
		if k.entering {
			k.Enter()
		}
		for _, r := range p.text {
			k.Digit(string(r))
		}
	case keyStore:
		k.Store(p.text)
	case keyOp:
		switch p.text {
		case "±":
			k.Negate()
		default:
			k.operation(p.text)
		}
	case keyName:
		switch p.text {
		case "enter":
			k.Enter()
		case "back", "pop":
			k.Backspace()
		case "neg":
			k.Negate()
		case "clear", "C":
			k.Clear()
		default:
			if c, ok := constAliases[p.text]; ok {
				k.Constant(c)
				return
			}
			if k.knows(p.text) || opAliases[p.text] != "" {
				k.operation(p.text)
				return
			}
			k.Variable(p.text)
		}
	default:
		panic("calcbrain: invalid key " + p.String())
	}
}

func (k *keypad) operation(sym string) {
	if s, ok := opAliases[sym]; ok {
		sym = s
	}
	k.Operation(sym)
}

func (k *keypad) knows(sym string) bool {
	for _, s := range k.brain.Operators() {
		if s == sym {
			return true
		}
	}
	return false
}

// PressAll scans a line and presses each key in it.
func (k *keypad) PressAll(line string) error {
	keys, err := scanKeys(line)
	for _, p := range keys {
		k.Press(p)
	}
	return err
}
