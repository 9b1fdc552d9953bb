package calcbrain_test

import (
	"testing"

	"github.com/zephyrtronium/calcbrain"
)

func FuzzEngine(f *testing.F) {
	f.Add("3 4 +")
	f.Add("√ x ÷ 0")
	f.Add("π ± ± sin 1 −")
	f.Fuzz(func(t *testing.T, s string) {
		e := calcbrain.New(calcbrain.SetVar("x", 0))
		press(e, s)
		e.Evaluate()
		e.Err()
		e.Description()
		for {
			if _, ok := e.Pop(); !ok {
				break
			}
		}
	})
}
