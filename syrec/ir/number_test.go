package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstEvaluate(t *testing.T) {
	assert.Equal(t, 7, Const(7).Evaluate(nil))
}

func TestLoopVariableEvaluate(t *testing.T) {
	loopMap := map[string]int{"i": 3}
	assert.Equal(t, 3, LoopVariable("i").Evaluate(loopMap))
	assert.Equal(t, 0, LoopVariable("missing").Evaluate(loopMap))
}

func TestBinaryNumberEvaluate(t *testing.T) {
	loopMap := map[string]int{"n": 10}
	cases := []struct {
		name string
		num  BinaryNumber
		want int
	}{
		{"add", BinaryNumber{LHS: LoopVariable("n"), Op: NumAdd, RHS: Const(1)}, 11},
		{"subtract", BinaryNumber{LHS: LoopVariable("n"), Op: NumSubtract, RHS: Const(1)}, 9},
		{"multiply", BinaryNumber{LHS: LoopVariable("n"), Op: NumMultiply, RHS: Const(2)}, 20},
		{"divide", BinaryNumber{LHS: LoopVariable("n"), Op: NumDivide, RHS: Const(2)}, 5},
		{"divide by zero", BinaryNumber{LHS: LoopVariable("n"), Op: NumDivide, RHS: Const(0)}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.num.Evaluate(loopMap))
		})
	}
}
