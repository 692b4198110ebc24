// Package network implements feedforward neural networks built from
// declarative suite settings.
//
// This package provides:
//   - Network: a fully connected feedforward network over gonum matrices
//   - Activation functions: Identity, Sigmoid, Tanh, ReLU
//   - Error (loss) functions: SquaredError, LogitError
//
// Networks follow the column-major data convention: each column of an
// input or target matrix is one example. A network with bias enabled
// prepends a constant row of ones to every layer's activations before
// applying the next weight matrix.
package network
