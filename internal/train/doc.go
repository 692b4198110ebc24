// Package train trains suite-built networks and drives the fold over a
// suite sequence.
//
// The Trainer turns one suite's training settings into a regularized
// cost function (forward propagation plus backpropagation for the
// gradient) and minimizes it with the suite's minimizer, restarting
// from freshly reset weights a configurable number of times and keeping
// the best successful result.
//
// The Driver walks a suite sequence strictly in order: build network,
// train, evaluate the caller's metric, fold the metric result into the
// running accumulator. A suite whose construction or training fails is
// skipped (its metric is never invoked) and recorded in the Report,
// so a partial failure never aborts the run.
package train
