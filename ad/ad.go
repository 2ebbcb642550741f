// Package ad provides forward-mode automatic differentiation.
//
// Functions written with ordinary arithmetic over the Number algebra
// carry exact derivatives through every operation — no finite
// differences, no computational graph. Write the function once,
// generically, and instantiate it per use:
//
//	import "github.com/descent-ml/descent/ad"
//
//	func bowl[T ad.Number[T]](x []T) T {
//	    return x[0].Mul(x[0]).Add(x[1].Mul(x[1]))
//	}
//
//	func main() {
//	    // Exact gradient in one pass
//	    grad, _ := ad.Gradient(bowl[ad.MultiDual], []float64{1, 2})
//	    // grad == [2, 4]
//
//	    // Plain evaluation through the same body
//	    y := bowl[ad.Real]([]ad.Real{1, 2}).Value()
//	    // y == 5
//	}
//
// Only forward mode is implemented: derivatives flow alongside values,
// one seeded direction (Dual) or all directions at once (MultiDual).
// Reverse mode (backpropagation) is deliberately out of scope.
package ad

import (
	"github.com/descent-ml/descent/internal/ad"
)

// Number is the arithmetic a differentiable function is written
// against; Dual, MultiDual, and Real all implement it.
type Number[T any] = ad.Number[T]

// Dual is a scalar forward-mode number carrying (value, derivative).
type Dual = ad.Dual

// MultiDual is a vector forward-mode number carrying (value, partials).
type MultiDual = ad.MultiDual

// Real is a plain float64 admitted into the Number algebra.
type Real = ad.Real

// Structural misuse errors returned by the drivers.
var (
	ErrEmptyPoint = ad.ErrEmptyPoint
	ErrDimension  = ad.ErrDimension
)

// Seed marks x as the independent variable: derivative 1.
func Seed(x float64) Dual {
	return ad.Seed(x)
}

// Constant lifts c into the scalar dual algebra with zero derivative.
func Constant(c float64) Dual {
	return ad.Constant(c)
}

// SeedAt returns x seeded as independent variable i of n (one-hot
// partial vector e_i).
func SeedAt(x float64, i, n int) MultiDual {
	return ad.SeedAt(x, i, n)
}

// ConstantN lifts c into the n-dimensional algebra with zero partials.
func ConstantN(c float64, n int) MultiDual {
	return ad.ConstantN(c, n)
}

// Derivative returns the exact derivative f'(x).
//
// Example:
//
//	square := func(x ad.Dual) ad.Dual { return x.Mul(x) }
//	ad.Derivative(square, 3) // 6
func Derivative(f func(Dual) Dual, x float64) float64 {
	return ad.Derivative(f, x)
}

// Gradient returns the exact gradient ∇f(x), computed in one pass.
func Gradient(f func([]MultiDual) MultiDual, x []float64) ([]float64, error) {
	return ad.Gradient(f, x)
}

// GradientConcurrent returns ∇f(x) from one scalar dual pass per
// coordinate, evaluated concurrently. Agrees exactly with Gradient.
func GradientConcurrent(f func([]Dual) Dual, x []float64) ([]float64, error) {
	return ad.GradientConcurrent(f, x)
}
