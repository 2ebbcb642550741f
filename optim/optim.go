// Package optim provides gradient-descent minimization on top of the
// forward-mode AD core.
//
// # Overview
//
// A GradientDescent optimizer holds a fixed step size and repeatedly
// applies
//
//	x_{t+1} = x_t - η * ∇f(x_t)
//
// with the gradient computed exactly by the ad package. Each run
// returns a Trajectory: the iterate recorded before every update.
//
// # Basic Usage
//
//	import (
//	    "github.com/descent-ml/descent/ad"
//	    "github.com/descent-ml/descent/optim"
//	)
//
//	func bowl[T ad.Number[T]](x []T) T {
//	    return x[0].Mul(x[0]).Add(x[1].Mul(x[1]))
//	}
//
//	func main() {
//	    gd, err := optim.NewGradientDescent(optim.Config{StepSize: 0.1})
//	    if err != nil {
//	        panic(err)
//	    }
//	    traj, err := gd.Minimize(bowl[ad.MultiDual], []float64{5, 5}, 50)
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(traj.Last())
//	}
//
// The loop is sequential on purpose — iteration t+1 needs x_t — and a
// run never blocks, so a caller wanting cancellation wraps Minimize at
// a coarser granularity (shorter runs resumed from traj.Last()).
package optim

import (
	"github.com/descent-ml/descent/internal/optim"
)

// Objective is a scalar field over the multi-directional dual algebra.
type Objective = optim.Objective

// Config holds the step size and optional early-stop tolerance.
type Config = optim.Config

// GradientDescent is the fixed-step gradient-descent optimizer.
type GradientDescent = optim.GradientDescent

// Trajectory is the ordered iterate snapshots of one run.
type Trajectory = optim.Trajectory

// Invalid-configuration errors.
var (
	ErrStepSize   = optim.ErrStepSize
	ErrIterations = optim.ErrIterations
	ErrTolerance  = optim.ErrTolerance
)

// NewGradientDescent creates a gradient-descent optimizer, validating
// the configuration up front.
//
// Example:
//
//	gd, err := optim.NewGradientDescent(optim.Config{StepSize: 0.02})
func NewGradientDescent(config Config) (*GradientDescent, error) {
	return optim.NewGradientDescent(config)
}
