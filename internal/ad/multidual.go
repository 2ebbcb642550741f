package ad

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// MultiDual is a vector forward-mode number: a value paired with a
// fixed-length vector of partial derivatives, one slot per independent
// variable. Seeding variable i with the one-hot vector e_i and
// evaluating a multivariate function over the seeds yields the full
// gradient in a single pass.
//
// The gradient dimension is fixed for the whole computation. Combining
// MultiDual values of different dimensions is a programming error and
// panics, in the same way gonum/mat panics on shape mismatch; it is
// never coerced.
//
// MultiDual is immutable: every operation allocates a fresh partial
// vector and never aliases or modifies an operand's.
type MultiDual struct {
	Real float64   // value of the expression at the evaluation point
	Grad []float64 // partial derivatives, one per independent variable
}

// SeedAt returns x seeded as independent variable i of n: the partial
// vector is the length-n one-hot e_i. Panics if i is out of range.
func SeedAt(x float64, i, n int) MultiDual {
	if n <= 0 || i < 0 || i >= n {
		panic(fmt.Sprintf("ad: SeedAt: variable index %d out of range for dimension %d", i, n))
	}
	g := make([]float64, n)
	g[i] = 1
	return MultiDual{Real: x, Grad: g}
}

// ConstantN lifts c into the n-dimensional algebra with a zero partial
// vector.
func ConstantN(c float64, n int) MultiDual {
	if n <= 0 {
		panic(fmt.Sprintf("ad: ConstantN: dimension must be positive, got %d", n))
	}
	return MultiDual{Real: c, Grad: make([]float64, n)}
}

// Dim returns the gradient dimension.
func (m MultiDual) Dim() int {
	return len(m.Grad)
}

func (m MultiDual) checkDim(op string, o MultiDual) {
	if len(m.Grad) != len(o.Grad) {
		panic(fmt.Sprintf("ad: %s: dimension mismatch: %d vs %d", op, len(m.Grad), len(o.Grad)))
	}
}

// Add returns m + o. Partials add component-wise.
func (m MultiDual) Add(o MultiDual) MultiDual {
	m.checkDim("Add", o)
	g := make([]float64, len(m.Grad))
	floats.AddTo(g, m.Grad, o.Grad)
	return MultiDual{Real: m.Real + o.Real, Grad: g}
}

// Sub returns m - o. Partials subtract component-wise.
func (m MultiDual) Sub(o MultiDual) MultiDual {
	m.checkDim("Sub", o)
	g := make([]float64, len(m.Grad))
	floats.SubTo(g, m.Grad, o.Grad)
	return MultiDual{Real: m.Real - o.Real, Grad: g}
}

// Mul returns m * o with the vector product rule:
// (f·g)' = g·∇f + f·∇g, component-wise.
func (m MultiDual) Mul(o MultiDual) MultiDual {
	m.checkDim("Mul", o)
	g := make([]float64, len(m.Grad))
	floats.ScaleTo(g, o.Real, m.Grad)
	floats.AddScaled(g, m.Real, o.Grad)
	return MultiDual{Real: m.Real * o.Real, Grad: g}
}

// Div returns m / o with the vector quotient rule:
// (f/g)' = (g·∇f − f·∇g) / g², component-wise.
//
// A zero-valued divisor follows IEEE semantics: Inf/NaN spread through
// the value and every partial, nothing panics.
func (m MultiDual) Div(o MultiDual) MultiDual {
	m.checkDim("Div", o)
	g := make([]float64, len(m.Grad))
	floats.ScaleTo(g, o.Real, m.Grad)
	floats.AddScaled(g, -m.Real, o.Grad)
	floats.Scale(1/(o.Real*o.Real), g)
	return MultiDual{Real: m.Real / o.Real, Grad: g}
}

// AddReal returns m + c. The constant has a zero partial vector.
func (m MultiDual) AddReal(c float64) MultiDual {
	g := make([]float64, len(m.Grad))
	copy(g, m.Grad)
	return MultiDual{Real: m.Real + c, Grad: g}
}

// MulReal returns m * c.
func (m MultiDual) MulReal(c float64) MultiDual {
	g := make([]float64, len(m.Grad))
	floats.ScaleTo(g, c, m.Grad)
	return MultiDual{Real: m.Real * c, Grad: g}
}

// Pow returns m**n by repeated squaring over the lifted Mul.
func (m MultiDual) Pow(n int) MultiDual {
	return powInt(m, n)
}

// Exp returns e**m: the value scales every partial.
func (m MultiDual) Exp() MultiDual {
	e := math.Exp(m.Real)
	g := make([]float64, len(m.Grad))
	floats.ScaleTo(g, e, m.Grad)
	return MultiDual{Real: e, Grad: g}
}

// Const lifts c into the receiver's dimension with a zero partial
// vector. This is how plain constants enter a multivariate expression
// without disturbing the gradient.
func (m MultiDual) Const(c float64) MultiDual {
	return MultiDual{Real: c, Grad: make([]float64, len(m.Grad))}
}

// Value returns the value component.
func (m MultiDual) Value() float64 {
	return m.Real
}
