package calcbrain_test

import (
	"fmt"
	"math"

	"github.com/zephyrtronium/calcbrain"
)

func ExampleEngine() {
	e := calcbrain.New()
	e.PushLiteral(3)
	e.PushLiteral(4)
	e.PerformOperation("+")
	e.PushLiteral(5)
	r, _ := e.PerformOperation("×")
	fmt.Println(r, e)

	// Output:
	// 35 (3.0+4.0)×5.0=
}

func ExampleEngine_Err() {
	e := calcbrain.New()
	e.PushLiteral(1)
	e.PushLiteral(0)
	r, _ := e.PerformOperation("÷")
	fmt.Println(r, e.Err())

	// Output:
	// +Inf division by zero (0 outside domain of ÷)
}

func ExampleBinary() {
	pow := calcbrain.Binary("^", func(a, b float64) float64 { return math.Pow(b, a) }, 30, nil)
	e := calcbrain.New(pow, calcbrain.SetVar("r", 2))
	e.PushConstant("π")
	e.PushVariable("r")
	e.PushLiteral(2)
	e.PerformOperation("^")
	r, _ := e.PerformOperation("×")
	fmt.Printf("%.4f %v\n", r, e)

	// Output:
	// 12.5664 π×r^2.0=
}
