package expr

import (
	"math"

	"github.com/viterin/vek"
)

type builtin struct {
	name  string
	apply func(x []float64)
}

// The function whitelist. Arithmetic and the cheap unary functions run
// vectorized over the whole sample batch; the transcendentals that vek does
// not cover fall back to scalar loops.
var builtins = []builtin{
	{"abs", vek.Abs_Inplace},
	{"ceil", vek.Ceil_Inplace},
	{"cos", elementwise(math.Cos)},
	{"exp", elementwise(math.Exp)},
	{"floor", vek.Floor_Inplace},
	{"log", elementwise(math.Log)},
	{"sin", elementwise(math.Sin)},
	{"sqrt", vek.Sqrt_Inplace},
	{"tan", elementwise(math.Tan)},
}

func builtinIndex(name string) int {
	for i, b := range builtins {
		if b.name == name {
			return i
		}
	}
	return -1
}

func elementwise(f func(float64) float64) func([]float64) {
	return func(x []float64) {
		for i := range x {
			x[i] = f(x[i])
		}
	}
}

// Eval runs the compiled program over xs and returns one output per input.
// Samples are independent: a domain failure (division by zero, log or sqrt of
// a negative, overflow) makes that sample NaN or Inf but never aborts the
// batch. Callers treat any non-finite output as undefined.
func (f *Function) Eval(xs []float64) []float64 {
	stack := make([][]float64, 0, f.depth)
	for _, in := range f.code {
		switch in.op {
		case opConst:
			buf := make([]float64, len(xs))
			for i := range buf {
				buf[i] = in.val
			}
			stack = append(stack, buf)
		case opX:
			stack = append(stack, append([]float64(nil), xs...))
		case opNeg:
			vek.Neg_Inplace(stack[len(stack)-1])
		case opCall:
			builtins[in.fn].apply(stack[len(stack)-1])
		default:
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			switch in.op {
			case opAdd:
				vek.Add_Inplace(a, b)
			case opSub:
				vek.Sub_Inplace(a, b)
			case opMul:
				vek.Mul_Inplace(a, b)
			case opDiv:
				vek.Div_Inplace(a, b)
			case opPow:
				vek.Pow_Inplace(a, b)
			}
			stack = stack[:len(stack)-1]
		}
	}
	return stack[0]
}

// EvalAt evaluates the function at a single point. Handy for tests and for
// cursor readouts; batch sampling should use Eval.
func (f *Function) EvalAt(x float64) float64 {
	return f.Eval([]float64{x})[0]
}
