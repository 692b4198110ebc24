// Copyright 2026 Mindgrid ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim is the public API for the minimization strategies used
// to train suite-built networks.
//
// See the internal optim package for the full documentation; this
// package re-exports its surface.
package optim

import (
	"github.com/mindgrid-ml/mindgrid/internal/optim"
)

// Minimizer minimizes an objective function with an analytic gradient.
type Minimizer = optim.Minimizer

// Result holds the outcome of a successful minimization.
type Result = optim.Result

// ErrMinimization is the sentinel wrapped by minimization failures.
var ErrMinimization = optim.ErrMinimization

// Minimization methods, wrapping gonum.org/v1/gonum/optimize.
type (
	// GradientDescent is plain gradient descent with line search.
	GradientDescent = optim.GradientDescent

	// BFGS is the quasi-Newton BFGS method.
	BFGS = optim.BFGS

	// LBFGS is limited-memory BFGS.
	LBFGS = optim.LBFGS
)
