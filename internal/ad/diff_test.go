package ad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

// Generic objectives shared across driver tests: written once against
// the Number algebra, instantiated per algebra below.

// squareStretch is h(x, y) = (2x + y)².
func squareStretch[T Number[T]](x []T) T {
	return x[0].MulReal(2).Add(x[1]).Pow(2)
}

// wavyBowl is f(x) = Σ x_i² + exp(x_0)·x_1.
func wavyBowl[T Number[T]](x []T) T {
	sum := x[0].Mul(x[0])
	for _, xi := range x[1:] {
		sum = sum.Add(xi.Mul(xi))
	}
	return sum.Add(x[0].Exp().Mul(x[1]))
}

// TestDerivative_Square verifies the scalar driver end to end.
func TestDerivative_Square(t *testing.T) {
	square := func(x Dual) Dual { return x.Mul(x) }

	for _, x := range samplePoints {
		assert.InDelta(t, 2*x, Derivative(square, x), 1e-12, "at x=%v", x)
	}
}

// TestDerivative_AgreesWithFiniteDifferences cross-checks the exact
// derivative against an independent central-difference oracle.
func TestDerivative_AgreesWithFiniteDifferences(t *testing.T) {
	// f(x) = exp(x) + x³ - 2x
	dualF := func(x Dual) Dual {
		return x.Exp().Add(x.Pow(3)).Sub(x.MulReal(2))
	}
	plainF := func(x float64) float64 {
		return math.Exp(x) + x*x*x - 2*x
	}

	settings := &fd.Settings{Formula: fd.Central}
	for _, x := range []float64{-2, -0.5, 0, 0.5, 2} {
		want := fd.Derivative(plainF, x, settings)
		assert.InDelta(t, want, Derivative(dualF, x), 1e-6, "at x=%v", x)
	}
}

// TestGradient_Bowl verifies ∇(x² + y²) = [2x, 2y] in one pass.
func TestGradient_Bowl(t *testing.T) {
	bowl := func(x []MultiDual) MultiDual {
		return x[0].Mul(x[0]).Add(x[1].Mul(x[1]))
	}

	grad, err := Gradient(bowl, []float64{1, 2})

	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 4}, grad, 1e-12)
}

// TestGradient_MatchesScalarPartials verifies the one-pass gradient of
// (2x+y)² equals the scalar partials taken one variable at a time with
// the other held constant.
func TestGradient_MatchesScalarPartials(t *testing.T) {
	const X, Y = 1.5, -0.5

	grad, err := Gradient(squareStretch[MultiDual], []float64{X, Y})
	require.NoError(t, err)
	require.Len(t, grad, 2)

	dx := Derivative(func(x Dual) Dual {
		return squareStretch([]Dual{x, Constant(Y)})
	}, X)
	dy := Derivative(func(y Dual) Dual {
		return squareStretch([]Dual{Constant(X), y})
	}, Y)

	assert.InDelta(t, dx, grad[0], 1e-12)
	assert.InDelta(t, dy, grad[1], 1e-12)

	// And both match the analytic gradient [4(2x+y), 2(2x+y)].
	s := 2*X + Y
	assert.InDeltaSlice(t, []float64{4 * s, 2 * s}, grad, 1e-12)
}

// TestGradient_EmptyPoint verifies boundary validation.
func TestGradient_EmptyPoint(t *testing.T) {
	bowl := func(x []MultiDual) MultiDual { return x[0].Mul(x[0]) }

	_, err := Gradient(bowl, nil)

	assert.ErrorIs(t, err, ErrEmptyPoint)
}

// TestGradient_ResultDimensionMismatch verifies a function that builds
// values outside the seeded algebra is rejected, not coerced.
func TestGradient_ResultDimensionMismatch(t *testing.T) {
	rogue := func([]MultiDual) MultiDual { return ConstantN(1, 5) }

	_, err := Gradient(rogue, []float64{1, 2})

	assert.ErrorIs(t, err, ErrDimension)
}

// TestGradientConcurrent_MatchesOnePass verifies the per-coordinate
// concurrent form agrees with the one-pass gradient, index for index.
func TestGradientConcurrent_MatchesOnePass(t *testing.T) {
	x := []float64{0.3, -1.2, 2.5, 0, 1.1, -0.4}

	onePass, err := Gradient(wavyBowl[MultiDual], x)
	require.NoError(t, err)

	concurrent, err := GradientConcurrent(wavyBowl[Dual], x)
	require.NoError(t, err)

	assert.InDeltaSlice(t, onePass, concurrent, 1e-12)
}

// TestGradientConcurrent_EmptyPoint verifies boundary validation.
func TestGradientConcurrent_EmptyPoint(t *testing.T) {
	f := func(x []Dual) Dual { return x[0] }

	_, err := GradientConcurrent(f, []float64{})

	assert.ErrorIs(t, err, ErrEmptyPoint)
}

// TestGradient_AgreesWithFiniteDifferences cross-checks the one-pass
// gradient against the central-difference oracle.
func TestGradient_AgreesWithFiniteDifferences(t *testing.T) {
	x := []float64{0.7, -0.3, 1.2}

	grad, err := Gradient(wavyBowl[MultiDual], x)
	require.NoError(t, err)

	plain := func(x []float64) float64 {
		sum := 0.0
		for _, xi := range x {
			sum += xi * xi
		}
		return sum + math.Exp(x[0])*x[1]
	}
	want := fd.Gradient(nil, plain, x, &fd.Settings{Formula: fd.Central})

	assert.InDeltaSlice(t, want, grad, 1e-6)
}

func BenchmarkGradient(b *testing.B) {
	x := make([]float64, 32)
	for i := range x {
		x[i] = float64(i%7) - 3
	}

	b.Run("one-pass", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := Gradient(wavyBowl[MultiDual], x); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("concurrent", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := GradientConcurrent(wavyBowl[Dual], x); err != nil {
				b.Fatal(err)
			}
		}
	})
}

// TestGenericFunction_SameValueAcrossAlgebras verifies one generic body
// evaluates identically over Real, Dual, and MultiDual.
func TestGenericFunction_SameValueAcrossAlgebras(t *testing.T) {
	const X, Y = 0.8, -1.4

	plain := squareStretch([]Real{Real(X), Real(Y)}).Value()
	scalar := squareStretch([]Dual{Seed(X), Constant(Y)}).Value()
	vector := squareStretch([]MultiDual{SeedAt(X, 0, 2), SeedAt(Y, 1, 2)}).Value()

	assert.InDelta(t, plain, scalar, 1e-12)
	assert.InDelta(t, plain, vector, 1e-12)
}
