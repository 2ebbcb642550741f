package ad

import "math"

// Dual is a scalar forward-mode number: a value paired with the
// derivative of the expression that produced it, taken with respect to
// the single seeded variable.
//
// Dual is an immutable value type. Every operation returns a new Dual;
// operands are never modified. Two duals produced by evaluating the same
// expression at the same point carry the exact analytic derivative of
// that expression, subject only to floating-point rounding.
type Dual struct {
	Real  float64 // value of the expression at the evaluation point
	Deriv float64 // derivative with respect to the seeded variable
}

// Seed marks x as the independent variable: the returned dual has
// derivative 1, so the chain rule unwinds relative to x.
func Seed(x float64) Dual {
	return Dual{Real: x, Deriv: 1}
}

// Constant lifts c into the dual algebra with zero derivative. Constants
// entering an expression must come through Constant (or the *Real
// operator forms) so they contribute nothing to the derivative.
func Constant(c float64) Dual {
	return Dual{Real: c}
}

// Add returns d + o.
func (d Dual) Add(o Dual) Dual {
	return Dual{Real: d.Real + o.Real, Deriv: d.Deriv + o.Deriv}
}

// Sub returns d - o.
func (d Dual) Sub(o Dual) Dual {
	return Dual{Real: d.Real - o.Real, Deriv: d.Deriv - o.Deriv}
}

// Mul returns d * o with the product rule: (f·g)' = f'·g + f·g'.
func (d Dual) Mul(o Dual) Dual {
	return Dual{
		Real:  d.Real * o.Real,
		Deriv: d.Deriv*o.Real + d.Real*o.Deriv,
	}
}

// Div returns d / o with the quotient rule: (f/g)' = (f'·g − f·g') / g².
//
// When o.Real is zero the result follows IEEE semantics (±Inf or NaN in
// both components); dual arithmetic degrades exactly like the plain
// arithmetic it replaces.
func (d Dual) Div(o Dual) Dual {
	return Dual{
		Real:  d.Real / o.Real,
		Deriv: (d.Deriv*o.Real - d.Real*o.Deriv) / (o.Real * o.Real),
	}
}

// AddReal returns d + c. The constant has zero derivative.
func (d Dual) AddReal(c float64) Dual {
	return Dual{Real: d.Real + c, Deriv: d.Deriv}
}

// MulReal returns d * c.
func (d Dual) MulReal(c float64) Dual {
	return Dual{Real: d.Real * c, Deriv: d.Deriv * c}
}

// Pow returns d**n by repeated squaring over Mul, so the derivative is
// assembled purely from the product rule. Pow(0) is the constant one;
// negative exponents go through the reciprocal.
func (d Dual) Pow(n int) Dual {
	return powInt(d, n)
}

// Exp returns e**d: (e^f)' = e^f · f'.
func (d Dual) Exp() Dual {
	e := math.Exp(d.Real)
	return Dual{Real: e, Deriv: e * d.Deriv}
}

// Const lifts c into the dual algebra with zero derivative.
func (Dual) Const(c float64) Dual {
	return Constant(c)
}

// Value returns the value component.
func (d Dual) Value() float64 {
	return d.Real
}
