package train

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mindgrid-ml/mindgrid/internal/network"
	"github.com/mindgrid-ml/mindgrid/internal/suite"
)

// newObjective builds the cost function and its gradient over the
// unrolled weight vector, the pair handed to a Minimizer.
//
// The cost is the per-example loss plus L2 regularization of all
// non-bias weights scaled by the suite's learning rate:
//
//	J(w) = errFn(h, y)/m + lr/(2m) * sum(w_nobias^2)
//
// The gradient comes from backpropagation through the network's layers
// using the activation and loss derivatives. Evaluation writes the
// candidate weights into net; the trainer restores the best weights
// after minimization finishes.
func newObjective(net *network.Network, ts suite.TrainingSettings) (fn func(x []float64) float64, grad func(dst, x []float64)) {
	dims := net.WeightDims()
	fn = func(x []float64) float64 {
		cost, _ := evaluate(net, ts, dims, x, false)
		return cost
	}
	grad = func(dst, x []float64) {
		_, g := evaluate(net, ts, dims, x, true)
		copy(dst, g)
	}
	return fn, grad
}

func evaluate(net *network.Network, ts suite.TrainingSettings, dims [][2]int, x []float64, withGrad bool) (float64, []float64) {
	if err := net.SetWeights(Reshape(x, dims)); err != nil {
		// dims come from the network itself
		panic(err)
	}

	inputs, targets := ts.Inputs, ts.Outputs
	_, m := inputs.Dims()
	mf := float64(m)

	zs, as := net.Forward(inputs)
	h := as[len(as)-1]

	cost := ts.ErrorFn.Cost(h, targets) / mf

	weights := net.Weights()
	biasOff := 0
	if net.Bias() {
		biasOff = 1
	}
	lambda := ts.LearningRate
	if lambda != 0 {
		var sum float64
		for _, w := range weights {
			r, c := w.Dims()
			for i := 0; i < r; i++ {
				for j := biasOff; j < c; j++ {
					v := w.At(i, j)
					sum += v * v
				}
			}
		}
		cost += lambda / (2 * mf) * sum
	}

	if !withGrad {
		return cost, nil
	}

	acts := net.Activations()
	last := len(as) - 1

	// Deltas per layer, output layer first. The bias column of each
	// weight matrix does not feed back into the previous layer.
	deltas := make([]*mat.Dense, len(as))
	d := &mat.Dense{}
	d.MulElem(acts[last].Deriv(zs[last]), ts.ErrorFn.Deriv(h, targets))
	deltas[last] = d
	for i := last - 1; i >= 1; i-- {
		w := weights[i]
		r, c := w.Dims()
		back := &mat.Dense{}
		back.Mul(w.Slice(0, r, biasOff, c).T(), deltas[i+1])

		di := &mat.Dense{}
		di.MulElem(acts[i].Deriv(zs[i]), back)
		deltas[i] = di
	}

	grads := make([]*mat.Dense, len(weights))
	for i := range weights {
		a := mat.Matrix(as[i])
		if net.Bias() {
			a = network.AddBiasRow(a)
		}
		g := &mat.Dense{}
		g.Mul(deltas[i+1], a.T())
		g.Scale(1/mf, g)

		if lambda != 0 {
			r, c := weights[i].Dims()
			reg := &mat.Dense{}
			reg.Scale(lambda/mf, weights[i].Slice(0, r, biasOff, c))
			gv := g.Slice(0, r, biasOff, c).(*mat.Dense)
			gv.Add(gv, reg)
		}
		grads[i] = g
	}

	return cost, Unroll(grads)
}
