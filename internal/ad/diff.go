package ad

import (
	"errors"
	"fmt"

	"github.com/descent-ml/descent/internal/parallel"
)

// Structural misuse of the drivers. Numeric degeneracy (division by
// zero, overflow) is never an error: it propagates as IEEE Inf/NaN.
var (
	// ErrEmptyPoint indicates an evaluation point with no coordinates.
	ErrEmptyPoint = errors.New("ad: evaluation point must have at least one coordinate")

	// ErrDimension indicates a result whose gradient dimension does not
	// match the evaluation point, i.e. the function built values outside
	// the seeded algebra.
	ErrDimension = errors.New("ad: result dimension does not match evaluation point")
)

// Derivative evaluates f at x over the scalar dual algebra and returns
// the exact derivative f'(x).
//
// f must be expressed purely through the Dual operator set (or
// user-defined operators following the same derivative-rule pattern);
// anything else does not type-check, so there is no silent fallback to
// a numeric approximation.
//
// Example:
//
//	square := func(x ad.Dual) ad.Dual { return x.Mul(x) }
//	ad.Derivative(square, 3) // 6
func Derivative(f func(Dual) Dual, x float64) float64 {
	return f(Seed(x)).Deriv
}

// Gradient evaluates f at x over the multi-directional dual algebra and
// returns the exact gradient ∇f(x), computed in a single pass: each
// coordinate is seeded with its one-hot direction and every operation
// propagates all partials simultaneously.
//
// The returned slice is freshly allocated and aliases nothing.
func Gradient(f func([]MultiDual) MultiDual, x []float64) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyPoint
	}
	seeds := make([]MultiDual, n)
	for i, xi := range x {
		seeds[i] = SeedAt(xi, i, n)
	}
	y := f(seeds)
	if len(y.Grad) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimension, len(y.Grad), n)
	}
	grad := make([]float64, n)
	copy(grad, y.Grad)
	return grad, nil
}

// GradientConcurrent computes ∇f(x) from scalar dual passes, one per
// coordinate, fanned out over goroutines: pass i seeds coordinate i and
// holds the others constant. Coordinates share no state, so evaluation
// order is free; the result is always index-stable.
//
// Gradient is the better default — one evaluation instead of len(x).
// This form pays off when f itself is expensive and len(x) is large.
// It agrees with Gradient exactly (same derivative rules, same
// floating-point operations per partial).
func GradientConcurrent(f func([]Dual) Dual, x []float64) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyPoint
	}
	grad := make([]float64, n)
	parallel.For(n, func(i int) {
		duals := make([]Dual, n)
		for j, xj := range x {
			if j == i {
				duals[j] = Seed(xj)
			} else {
				duals[j] = Constant(xj)
			}
		}
		grad[i] = f(duals).Deriv
	}, parallel.DefaultConfig())
	return grad, nil
}
