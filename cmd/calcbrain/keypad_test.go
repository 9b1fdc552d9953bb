package main

import (
	"testing"

	"github.com/zephyrtronium/calcbrain"
)

func TestKeypad(t *testing.T) {
	cases := []struct {
		name    string
		lines   []string
		display string
		history string
	}{
		{"start", nil, "0", " "},
		{"typing", []string{"12.5"}, "12.5", " "},
		{"enter", []string{"12.5 enter"}, "12.5", "12.5="},
		{"add", []string{"3 4 +"}, "7", "3.0+4.0="},
		{"sub", []string{"5 3 -"}, "2", "5.0−3.0="},
		{"div-alias", []string{"6 4 /"}, "1.5", "6.0÷4.0="},
		{"mul-alias", []string{"3 4 * 5 +"}, "17", "3.0×4.0+5.0="},
		{"sqrt-alias", []string{"16 sqrt"}, "4", "√(16.0)="},
		{"lines", []string{"3", "4 +"}, "7", "3.0+4.0="},
		{"div-zero", []string{"1 0 ÷"}, "division by zero (0 outside domain of ÷)", "1.0÷0.0="},
		{"neg-sqrt", []string{"4 neg √"}, "negative square root (-4 outside domain of √)", "√(-4.0)="},
		{"neg-result", []string{"3 enter neg"}, "-3", "−(3.0)="},
		{"neg-typing", []string{"3 ±"}, "-3", " "},
		{"neg-twice", []string{"3 neg neg enter"}, "3", "3.0="},
		{"too-few", []string{"+"}, "insufficient arguments for +", " "},
		{"constant", []string{"pi"}, "3.141592653589793", "π="},
		{"undefined", []string{"x"}, `undefined variable: "x"`, "x="},
		{"store", []string{"x 2 ×", "5 →x"}, "10", "x×2.0="},
		{"store-ascii", []string{"x", "3 >x"}, "3", "x="},
		{"store-error", []string{"x", "3 →y", "→x"}, `undefined variable: "x"`, "x="},
		{"back-digit", []string{"123 back"}, "12", " "},
		{"back-pop", []string{"3 4 enter back"}, "4", "3.0="},
		{"back-pop-reenter", []string{"3 4 enter back +"}, "7", "3.0+4.0="},
		{"back-no-pop", []string{"3 4 + back"}, "7", "3.0+4.0="},
		{"back-empty", []string{"back"}, "nothing to evaluate", " "},
		{"clear", []string{"3 4 +", "clear"}, "0", " "},
		{"unknown-name", []string{"2 mod"}, `undefined variable: "mod"`, "2.0,mod="},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := newKeypad(calcbrain.New(), -1)
			for _, line := range c.lines {
				if err := k.PressAll(line); err != nil {
					t.Fatalf("pressing %q: %v", line, err)
				}
			}
			if d := k.Display(); d != c.display {
				t.Errorf("display: want %q, got %q", c.display, d)
			}
			if h := k.History(); h != c.history {
				t.Errorf("history: want %q, got %q", c.history, h)
			}
		})
	}
}

func TestKeypadDigit(t *testing.T) {
	k := newKeypad(calcbrain.New(), -1)
	for _, d := range []string{"1", ".", "5", ".", "2"} {
		k.Digit(d)
	}
	if d := k.Display(); d != "1.52" {
		t.Errorf("second decimal point should be ignored, got %q", d)
	}
}

func TestKeypadLeadingPoint(t *testing.T) {
	k := newKeypad(calcbrain.New(), -1)
	k.Digit(".")
	k.Digit("5")
	if d := k.Display(); d != "0.5" {
		t.Errorf("leading decimal point should display 0.5, got %q", d)
	}
	k.Enter()
	if h := k.History(); h != "0.5=" {
		t.Errorf("entering .5 should push 0.5, got history %q", h)
	}
	k.Digit(".")
	k.Enter()
	if h := k.History(); h != "0.5,0.0=" {
		t.Errorf("entering a bare point should push 0, got history %q", h)
	}
}

func TestKeypadClearForgetsVariables(t *testing.T) {
	k := newKeypad(calcbrain.New(calcbrain.SetVar("x", 1)), -1)
	if err := k.PressAll("x"); err != nil {
		t.Fatal(err)
	}
	if d := k.Display(); d != "1" {
		t.Errorf("x should display 1, got %q", d)
	}
	if err := k.PressAll("clear x"); err != nil {
		t.Fatal(err)
	}
	if d := k.Display(); d != `undefined variable: "x"` {
		t.Errorf("x should be undefined after clear, got %q", d)
	}
}

func TestKeypadDigits(t *testing.T) {
	cases := []struct {
		digits int32
		want   string
	}{
		{-1, "0.6666666666666666"},
		{0, "1"},
		{2, "0.67"},
	}
	for _, c := range cases {
		k := newKeypad(calcbrain.New(), c.digits)
		if err := k.PressAll("2 3 ÷"); err != nil {
			t.Fatal(err)
		}
		if d := k.Display(); d != c.want {
			t.Errorf("%d digits: want %q, got %q", c.digits, c.want, d)
		}
	}
}
