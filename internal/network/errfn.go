package network

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrorFunc measures the discrepancy between a network's hypothesis h
// and the target values y. Both matrices have one column per example.
//
// Cost returns the total error summed over all elements; callers divide
// by the number of examples as needed. Deriv returns dCost/dh,
// element-wise, which seeds backpropagation.
type ErrorFunc interface {
	// Name returns a short stable identifier ("squared", "logit").
	Name() string

	// Cost returns the total error between h and y.
	Cost(h, y mat.Matrix) float64

	// Deriv returns the element-wise derivative of the error with
	// respect to the hypothesis.
	Deriv(h, y mat.Matrix) *mat.Dense
}

// SquaredError is the half squared error: 0.5 * (h - y)^2 per element.
//
// The standard loss for regression targets.
type SquaredError struct{}

// NewSquaredError creates a new SquaredError loss.
func NewSquaredError() SquaredError { return SquaredError{} }

// Name returns "squared".
func (SquaredError) Name() string { return "squared" }

// Cost returns sum(0.5 * (h - y)^2).
func (SquaredError) Cost(h, y mat.Matrix) float64 {
	var diff mat.Dense
	diff.Sub(h, y)
	var total float64
	r, c := diff.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := diff.At(i, j)
			total += 0.5 * v * v
		}
	}
	return total
}

// Deriv returns h - y, element-wise.
func (SquaredError) Deriv(h, y mat.Matrix) *mat.Dense {
	var diff mat.Dense
	diff.Sub(h, y)
	return &diff
}

// LogitError is the cross-entropy loss for hypotheses in (0, 1):
//
//	-(y*ln(h) + (1-y)*ln(1-h)) per element.
//
// Pairs naturally with a Sigmoid output layer for classification
// targets in [0, 1]. Hypothesis values are clamped away from 0 and 1
// to keep the logarithms finite.
type LogitError struct{}

// NewLogitError creates a new LogitError loss.
func NewLogitError() LogitError { return LogitError{} }

// Name returns "logit".
func (LogitError) Name() string { return "logit" }

// logitEps bounds hypothesis values away from {0, 1}.
const logitEps = 1e-12

// Cost returns sum(-(y*ln(h) + (1-y)*ln(1-h))).
func (LogitError) Cost(h, y mat.Matrix) float64 {
	var total float64
	r, c := h.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			hv := clamp(h.At(i, j), logitEps, 1-logitEps)
			yv := y.At(i, j)
			total += -(yv*math.Log(hv) + (1-yv)*math.Log(1-hv))
		}
	}
	return total
}

// Deriv returns (h - y) / (h * (1 - h)), element-wise.
func (LogitError) Deriv(h, y mat.Matrix) *mat.Dense {
	r, c := h.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			hv := clamp(h.At(i, j), logitEps, 1-logitEps)
			yv := y.At(i, j)
			out.Set(i, j, (hv-yv)/(hv*(1-hv)))
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
