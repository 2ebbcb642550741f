// Package main provides the descent demo CLI.
//
// It is the external consumer of the core: it sources the objective,
// start point, step size, and iteration count from flags, runs the
// optimizer, and renders the trajectory as log lines. Nothing here is
// required by the library.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lmittmann/tint"
	"gonum.org/v1/gonum/floats"

	"github.com/descent-ml/descent/ad"
	"github.com/descent-ml/descent/optim"
)

const version = "v0.1.0-dev"

// bowl is the convex quadratic sum(x_i^2).
func bowl[T ad.Number[T]](x []T) T {
	sum := x[0].Mul(x[0])
	for _, xi := range x[1:] {
		sum = sum.Add(xi.Mul(xi))
	}
	return sum
}

// quartic is x_1^4 + x_2^3, the steep/shallow mixed-curvature demo.
func quartic[T ad.Number[T]](x []T) T {
	return x[0].Pow(4).Add(x[1].Pow(3))
}

// rosenbrock is the classic banana valley over consecutive pairs:
// sum over i of 100*(x_{i+1} - x_i^2)^2 + (1 - x_i)^2.
func rosenbrock[T ad.Number[T]](x []T) T {
	sum := x[0].Const(0)
	for i := 0; i+1 < len(x); i++ {
		a := x[i+1].Sub(x[i].Pow(2)).Pow(2).MulReal(100)
		b := x[i].MulReal(-1).AddReal(1).Pow(2)
		sum = sum.Add(a).Add(b)
	}
	return sum
}

// objective bundles the instantiations of one generic function body:
// the gradient form for the optimizer and the plain form for reporting
// objective values along the trajectory.
type objective struct {
	field optim.Objective
	eval  func([]ad.Real) ad.Real
	arity int // 0 means any dimension
}

var objectives = map[string]objective{
	"bowl":       {field: bowl[ad.MultiDual], eval: bowl[ad.Real]},
	"quartic":    {field: quartic[ad.MultiDual], eval: quartic[ad.Real], arity: 2},
	"rosenbrock": {field: rosenbrock[ad.MultiDual], eval: rosenbrock[ad.Real]},
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("descent %s\n", version)
		return
	}

	var (
		fnName = flag.String("f", "bowl", "objective: bowl, quartic, or rosenbrock")
		x0Flag = flag.String("x0", "5,5", "start point, comma-separated")
		step   = flag.Float64("step", 0.1, "step size (must be positive)")
		iters  = flag.Int("n", 50, "iteration count")
		tol    = flag.Float64("tol", 0, "stop early when |grad| < tol (0 disables)")
		quiet  = flag.Bool("q", false, "only log the final state")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *quiet {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{Level: level}),
	))

	obj, ok := objectives[*fnName]
	if !ok {
		slog.Error("unknown objective", "name", *fnName)
		os.Exit(1)
	}

	x0, err := parsePoint(*x0Flag)
	if err != nil {
		slog.Error("invalid start point", "x0", *x0Flag, "err", err)
		os.Exit(1)
	}
	if obj.arity != 0 && len(x0) != obj.arity {
		slog.Error("objective dimension mismatch", "name", *fnName, "want", obj.arity, "got", len(x0))
		os.Exit(1)
	}

	gd, err := optim.NewGradientDescent(optim.Config{StepSize: *step, Tolerance: *tol})
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	traj, err := gd.Minimize(obj.field, x0, *iters)
	if err != nil {
		slog.Error("minimization failed", "err", err)
		os.Exit(1)
	}

	for t, state := range traj.States() {
		slog.Info("iterate",
			"t", t,
			"x", state,
			"f", evalAt(obj.eval, state),
		)
	}

	last := traj.Last()
	if last == nil {
		slog.Warn("empty trajectory", "iterations", *iters)
		return
	}
	grad, err := ad.Gradient(obj.field, last)
	if err != nil {
		slog.Error("gradient at final state failed", "err", err)
		os.Exit(1)
	}
	fmt.Printf("final state: %v  f=%g  |grad|=%g  (%d snapshots)\n",
		last, evalAt(obj.eval, last), floats.Norm(grad, 2), traj.Len())
}

// evalAt runs the plain-number instantiation of an objective at x.
func evalAt(f func([]ad.Real) ad.Real, x []float64) float64 {
	xs := make([]ad.Real, len(x))
	for i, v := range x {
		xs[i] = ad.Real(v)
	}
	return f(xs).Value()
}

// parsePoint parses "1,2.5,-3" into a point.
func parsePoint(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	x := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", p, err)
		}
		x = append(x, v)
	}
	return x, nil
}
