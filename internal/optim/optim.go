package optim

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// ErrMinimization is the sentinel wrapped by every minimization failure.
var ErrMinimization = errors.New("optim: minimization failed")

// Result holds the outcome of a successful minimization.
type Result struct {
	// X is the final coordinate.
	X []float64

	// F is the objective value at X.
	F float64
}

// Minimizer minimizes an objective function with an analytic gradient.
//
// fn returns the objective value at x. grad writes the gradient at x
// into dst, which has the same length as x. init is the starting
// coordinate and is not modified.
//
// Implementations return a non-nil error when no usable minimum was
// found (line search failure, non-finite objective, ...); hitting an
// iteration cap is not an error, the best coordinate so far is returned.
type Minimizer interface {
	// Name returns a short stable identifier for logging.
	Name() string

	Minimize(fn func(x []float64) float64, grad func(dst, x []float64), init []float64) (*Result, error)
}

// GradientDescent minimizes with plain gradient descent and an adaptive
// line search (gonum's optimize.GradientDescent).
type GradientDescent struct {
	// MaxIterations caps the number of major iterations. Zero leaves
	// the method to run until convergence.
	MaxIterations int

	// GradientTolerance overrides the convergence threshold on the
	// gradient norm. Zero keeps gonum's default.
	GradientTolerance float64
}

// Name returns "gradient-descent".
func (GradientDescent) Name() string { return "gradient-descent" }

// Minimize implements Minimizer.
func (g GradientDescent) Minimize(fn func(x []float64) float64, grad func(dst, x []float64), init []float64) (*Result, error) {
	return run(&optimize.GradientDescent{}, newSettings(g.MaxIterations, g.GradientTolerance), fn, grad, init)
}

// BFGS minimizes with the quasi-Newton BFGS method. The method of
// choice for the modest weight counts of suite-built networks.
type BFGS struct {
	MaxIterations     int
	GradientTolerance float64
}

// Name returns "bfgs".
func (BFGS) Name() string { return "bfgs" }

// Minimize implements Minimizer.
func (b BFGS) Minimize(fn func(x []float64) float64, grad func(dst, x []float64), init []float64) (*Result, error) {
	return run(&optimize.BFGS{}, newSettings(b.MaxIterations, b.GradientTolerance), fn, grad, init)
}

// LBFGS minimizes with limited-memory BFGS, preferable when the weight
// vector is large.
type LBFGS struct {
	MaxIterations     int
	GradientTolerance float64
}

// Name returns "lbfgs".
func (LBFGS) Name() string { return "lbfgs" }

// Minimize implements Minimizer.
func (l LBFGS) Minimize(fn func(x []float64) float64, grad func(dst, x []float64), init []float64) (*Result, error) {
	return run(&optimize.LBFGS{}, newSettings(l.MaxIterations, l.GradientTolerance), fn, grad, init)
}

func newSettings(maxIterations int, tolerance float64) *optimize.Settings {
	s := &optimize.Settings{}
	if maxIterations > 0 {
		s.MajorIterations = maxIterations
	}
	if tolerance > 0 {
		s.GradientThreshold = tolerance
	}
	return s
}

func run(method optimize.Method, settings *optimize.Settings, fn func(x []float64) float64, grad func(dst, x []float64), init []float64) (*Result, error) {
	problem := optimize.Problem{
		Func: fn,
		Grad: grad,
	}

	x0 := append([]float64(nil), init...)
	res, err := optimize.Minimize(problem, x0, settings, method)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMinimization, err)
	}
	if res == nil || math.IsNaN(res.F) || math.IsInf(res.F, 0) {
		return nil, fmt.Errorf("%w: non-finite objective", ErrMinimization)
	}
	return &Result{
		X: append([]float64(nil), res.X...),
		F: res.F,
	}, nil
}
