// Package optim implements gradient-based minimization driven by
// forward-mode automatic differentiation.
//
// This package provides:
//   - GradientDescent: fixed-step gradient descent
//   - Config: step size and optional early-stop tolerance
//   - Trajectory: the ordered iterate snapshots of one run
//
// Example usage:
//
//	gd, err := optim.NewGradientDescent(optim.Config{StepSize: 0.1})
//	if err != nil {
//	    // handle invalid configuration
//	}
//
//	bowl := func(x []ad.MultiDual) ad.MultiDual {
//	    return x[0].Mul(x[0]).Add(x[1].Mul(x[1]))
//	}
//
//	traj, err := gd.Minimize(bowl, []float64{5, 5}, 50)
package optim

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/descent-ml/descent/internal/ad"
)

// Objective is a scalar field expressed over the multi-directional dual
// algebra. A function written generically against ad.Number becomes an
// Objective by instantiation with ad.MultiDual.
type Objective func([]ad.MultiDual) ad.MultiDual

// Invalid-configuration errors, surfaced before any iteration runs.
// Configuration is never silently clamped.
var (
	// ErrStepSize indicates a non-positive step size.
	ErrStepSize = errors.New("optim: step size must be positive")

	// ErrIterations indicates a negative iteration count.
	ErrIterations = errors.New("optim: iteration count must be non-negative")

	// ErrTolerance indicates a negative early-stop tolerance.
	ErrTolerance = errors.New("optim: tolerance must be non-negative")
)

// Config holds the configuration for a GradientDescent optimizer.
type Config struct {
	// StepSize is the learning rate η applied to every update.
	// Must be positive.
	StepSize float64

	// Tolerance, when positive, stops a run early once the gradient's
	// Euclidean norm falls below it; the trajectory is then shorter
	// than the requested iteration count. Zero (the default) disables
	// early stopping: the run always performs the full count.
	Tolerance float64
}

// GradientDescent minimizes an objective by fixed-step descent along
// the gradient computed with forward-mode AD.
//
// Update rule:
//
//	x_{t+1} = x_t - η * ∇f(x_t)
//
// There is no line search and no step-size adaptation; the fixed count
// and fixed step keep every run deterministic. The configuration is
// read-only during a run, and runs share no state, so one optimizer may
// serve concurrent Minimize calls.
type GradientDescent struct {
	step float64
	tol  float64
}

// NewGradientDescent creates a gradient-descent optimizer, validating
// the configuration up front.
func NewGradientDescent(config Config) (*GradientDescent, error) {
	if config.StepSize <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrStepSize, config.StepSize)
	}
	if config.Tolerance < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrTolerance, config.Tolerance)
	}
	return &GradientDescent{step: config.StepSize, tol: config.Tolerance}, nil
}

// StepSize returns the configured step size.
func (g *GradientDescent) StepSize() float64 {
	return g.step
}

// Minimize runs up to iterations descent steps on f from x0 and returns
// the trajectory of iterates.
//
// Each iteration computes the gradient at the current iterate, records
// the iterate, then applies the update, so snapshot t is the state the
// t-th gradient was taken at; the fully updated final point is the input
// of the iteration that never ran and is not recorded. With zero
// iterations the trajectory is empty.
//
// x0 is copied in; the caller's slice is never modified, and repeated
// calls with the same inputs produce identical trajectories.
func (g *GradientDescent) Minimize(f Objective, x0 []float64, iterations int) (*Trajectory, error) {
	if iterations < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrIterations, iterations)
	}
	if len(x0) == 0 {
		return nil, fmt.Errorf("optim: %w", ad.ErrEmptyPoint)
	}

	x := make([]float64, len(x0))
	copy(x, x0)

	traj := &Trajectory{}
	for t := 0; t < iterations; t++ {
		grad, err := ad.Gradient(f, x)
		if err != nil {
			return nil, fmt.Errorf("optim: iteration %d: %w", t, err)
		}
		if g.tol > 0 && floats.Norm(grad, 2) < g.tol {
			break
		}
		traj.push(x)
		floats.AddScaled(x, -g.step, grad)
	}
	return traj, nil
}
