// Package ad implements forward-mode automatic differentiation over
// augmented numbers ("dual numbers").
//
// A dual number carries a value together with a derivative and propagates
// both through every arithmetic operation, so evaluating an ordinary
// function over duals yields its exact derivative (to floating-point
// precision) with no finite-difference approximation.
//
// This package provides:
//   - Dual: scalar forward-mode number (value, derivative)
//   - MultiDual: vector forward-mode number (value, partial-derivative vector)
//   - Real: plain float64 wrapped into the same algebra
//   - Derivative, Gradient: differentiation drivers
//
// Functions are written once against the Number interface and become
// evaluable, differentiable, and gradient-capable by instantiation:
//
//	func bowl[T ad.Number[T]](x []T) T {
//	    return x[0].Mul(x[0]).Add(x[1].Mul(x[1]))
//	}
//
//	grad, err := ad.Gradient(bowl[ad.MultiDual], []float64{1, 2})
//	// grad == [2, 4]
package ad

import "math"

// Number is the arithmetic a differentiable function is written against.
//
// The operator set is the one propagated by the dual algebra: addition,
// subtraction, multiplication, division, integer power, and the natural
// exponential, plus the mixed forms that fold a plain constant into the
// expression with zero derivative. Extending the algebra with a new
// elementary function means adding a method here and implementing its
// derivative rule on each concrete type; a function using an operation
// the algebra does not define fails to compile rather than silently
// falling back to an approximation.
//
// All implementations are immutable value types: every operation returns
// a fresh number and never modifies its operands.
type Number[T any] interface {
	// Add returns the sum. Derivatives add component-wise.
	Add(T) T

	// Sub returns the difference. Derivatives subtract component-wise.
	Sub(T) T

	// Mul returns the product, propagating the product rule
	// (f·g)' = f'·g + f·g'.
	Mul(T) T

	// Div returns the quotient, propagating the quotient rule
	// (f/g)' = (f'·g − f·g') / g². Division by a number whose value is
	// zero follows IEEE semantics: Inf/NaN propagate, nothing panics.
	Div(T) T

	// AddReal returns the receiver plus a plain constant. The constant
	// contributes no derivative.
	AddReal(float64) T

	// MulReal returns the receiver scaled by a plain constant.
	MulReal(float64) T

	// Pow returns the receiver raised to an integer power, computed by
	// repeated squaring over Mul. Negative exponents go through the
	// reciprocal; Pow(0) is the constant one.
	Pow(n int) T

	// Exp returns the natural exponential, propagating
	// (e^f)' = e^f · f'.
	Exp() T

	// Const lifts a plain constant into the same algebra (and, for
	// MultiDual, the same dimension) as the receiver, with zero
	// derivative.
	Const(c float64) T

	// Value returns the plain numeric value, discarding derivatives.
	Value() float64
}

// powInt raises x to the n-th power by repeated squaring over the
// algebra's own Mul, so the derivative emerges from the product rule
// exactly as it would from naive repeated multiplication.
func powInt[T Number[T]](x T, n int) T {
	if n < 0 {
		return x.Const(1).Div(powInt(x, -n))
	}
	acc := x.Const(1)
	base := x
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return acc
}

// Real is a plain float64 admitted into the Number algebra. It lets a
// generic differentiable function be evaluated for its value alone,
// with zero overhead over ordinary arithmetic.
type Real float64

// Add returns the sum.
func (r Real) Add(o Real) Real { return r + o }

// Sub returns the difference.
func (r Real) Sub(o Real) Real { return r - o }

// Mul returns the product.
func (r Real) Mul(o Real) Real { return r * o }

// Div returns the quotient.
func (r Real) Div(o Real) Real { return r / o }

// AddReal returns r + c.
func (r Real) AddReal(c float64) Real { return r + Real(c) }

// MulReal returns r * c.
func (r Real) MulReal(c float64) Real { return r * Real(c) }

// Pow returns r**n via repeated squaring.
func (r Real) Pow(n int) Real { return powInt(r, n) }

// Exp returns e**r.
func (r Real) Exp() Real { return Real(math.Exp(float64(r))) }

// Const returns c as a Real.
func (Real) Const(c float64) Real { return Real(c) }

// Value returns the float64 value.
func (r Real) Value() float64 { return float64(r) }

// Compile-time checks that all concrete types satisfy the algebra.
var (
	_ Number[Real]      = Real(0)
	_ Number[Dual]      = Dual{}
	_ Number[MultiDual] = MultiDual{}
)
