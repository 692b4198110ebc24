// Package optim provides the minimization strategies used to train
// suite-built networks.
//
// A Minimizer drives an iterative local optimization of a cost function
// with an analytic gradient, in the style of scipy.optimize: the caller
// supplies the objective, the gradient, and a starting point, and gets
// back the best coordinate found. The implementations wrap
// gonum.org/v1/gonum/optimize methods:
//   - GradientDescent
//   - BFGS
//   - LBFGS
package optim
