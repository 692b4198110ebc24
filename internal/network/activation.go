package network

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Activation is an element-wise activation function together with its
// derivative, both evaluated over a whole matrix of pre-activations.
//
// Apply computes f(z) for every element of z; Deriv computes f'(z).
// The derivative is taken with respect to the pre-activation, which is
// what backpropagation needs.
type Activation interface {
	// Name returns a short stable identifier ("sigmoid", "tanh", ...).
	Name() string

	// Apply returns f(z), element-wise.
	Apply(z mat.Matrix) *mat.Dense

	// Deriv returns f'(z), element-wise.
	Deriv(z mat.Matrix) *mat.Dense
}

// apply is the shared element-wise evaluation helper.
func apply(z mat.Matrix, f func(float64) float64) *mat.Dense {
	r, c := z.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 { return f(v) }, z)
	return out
}

// Identity is the identity activation: f(x) = x.
//
// Conventionally used for the input layer, where the raw features pass
// through unchanged.
type Identity struct{}

// NewIdentity creates a new Identity activation.
func NewIdentity() Identity { return Identity{} }

// Name returns "identity".
func (Identity) Name() string { return "identity" }

// Apply returns z unchanged (as a copy).
func (Identity) Apply(z mat.Matrix) *mat.Dense {
	return apply(z, func(v float64) float64 { return v })
}

// Deriv returns a matrix of ones.
func (Identity) Deriv(z mat.Matrix) *mat.Dense {
	return apply(z, func(float64) float64 { return 1 })
}

// Sigmoid is the logistic activation: f(x) = 1 / (1 + exp(-x)).
//
// Squashes values into (0, 1); the default hidden and output layer
// activation for suite-built networks.
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation.
func NewSigmoid() Sigmoid { return Sigmoid{} }

// Name returns "sigmoid".
func (Sigmoid) Name() string { return "sigmoid" }

// Apply returns 1 / (1 + exp(-z)), element-wise.
func (Sigmoid) Apply(z mat.Matrix) *mat.Dense {
	return apply(z, sigmoid)
}

// Deriv returns f(z) * (1 - f(z)), element-wise.
func (Sigmoid) Deriv(z mat.Matrix) *mat.Dense {
	return apply(z, func(v float64) float64 {
		s := sigmoid(v)
		return s * (1 - s)
	})
}

func sigmoid(v float64) float64 { return 1 / (1 + math.Exp(-v)) }

// Tanh is the hyperbolic tangent activation.
//
// Squashes values into (-1, 1) and is zero-centered.
type Tanh struct{}

// NewTanh creates a new Tanh activation.
func NewTanh() Tanh { return Tanh{} }

// Name returns "tanh".
func (Tanh) Name() string { return "tanh" }

// Apply returns tanh(z), element-wise.
func (Tanh) Apply(z mat.Matrix) *mat.Dense {
	return apply(z, math.Tanh)
}

// Deriv returns 1 - tanh(z)^2, element-wise.
func (Tanh) Deriv(z mat.Matrix) *mat.Dense {
	return apply(z, func(v float64) float64 {
		t := math.Tanh(v)
		return 1 - t*t
	})
}

// ReLU is the rectified linear activation: f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a new ReLU activation.
func NewReLU() ReLU { return ReLU{} }

// Name returns "relu".
func (ReLU) Name() string { return "relu" }

// Apply returns max(0, z), element-wise.
func (ReLU) Apply(z mat.Matrix) *mat.Dense {
	return apply(z, func(v float64) float64 { return math.Max(0, v) })
}

// Deriv returns 1 where z > 0 and 0 elsewhere.
func (ReLU) Deriv(z mat.Matrix) *mat.Dense {
	return apply(z, func(v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	})
}
