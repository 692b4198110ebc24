package train

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/mindgrid-ml/mindgrid/internal/network"
	"github.com/mindgrid-ml/mindgrid/internal/suite"
)

// randomData fills feature and target matrices from a fixed source.
// Targets stay inside (0, 1) so the logit loss is well defined.
func randomData(rng *rand.Rand, features, outputs, examples int) (x, y *mat.Dense) {
	x = mat.NewDense(features, examples, nil)
	y = mat.NewDense(outputs, examples, nil)
	for j := 0; j < examples; j++ {
		for i := 0; i < features; i++ {
			x.Set(i, j, rng.NormFloat64())
		}
		for i := 0; i < outputs; i++ {
			y.Set(i, j, 0.1+0.8*rng.Float64())
		}
	}
	return x, y
}

// numericalGradient estimates the gradient of fn at x with central
// differences, the classic check for a backpropagation implementation.
func numericalGradient(fn func([]float64) float64, x []float64, eps float64) []float64 {
	out := make([]float64, len(x))
	probe := append([]float64(nil), x...)
	for i := range x {
		probe[i] = x[i] + eps
		up := fn(probe)
		probe[i] = x[i] - eps
		down := fn(probe)
		probe[i] = x[i]
		out[i] = (up - down) / (2 * eps)
	}
	return out
}

func TestGradientMatchesNumerical(t *testing.T) {
	tests := []struct {
		name  string
		bias  bool
		errFn network.ErrorFunc
		rate  float64
	}{
		{"squared with bias", true, network.SquaredError{}, 0},
		{"squared regularized", true, network.SquaredError{}, 0.5},
		{"squared no bias", false, network.SquaredError{}, 0},
		{"logit with bias", true, network.LogitError{}, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(3))

			net, err := network.New(network.Settings{
				InputUnits:  2,
				HiddenUnits: 3,
				OutputUnits: 2,
				Bias:        tt.bias,
			})
			require.NoError(t, err)
			net.ResetWeights(rng)

			x, y := randomData(rng, 2, 2, 7)
			ts := suite.TrainingSettings{
				Inputs:       x,
				Outputs:      y,
				LearningRate: tt.rate,
				ErrorFn:      tt.errFn,
			}

			fn, grad := newObjective(net, ts)
			w := Unroll(net.Weights())

			analytic := make([]float64, len(w))
			grad(analytic, w)
			numeric := numericalGradient(fn, w, 1e-6)

			require.Len(t, analytic, len(numeric))
			for i := range numeric {
				assert.InDelta(t, numeric[i], analytic[i], 1e-5, "weight %d", i)
			}
		})
	}
}

func TestCostRegularizationExcludesBias(t *testing.T) {
	net, err := network.New(network.Settings{
		InputUnits:  1,
		HiddenUnits: 1,
		OutputUnits: 1,
		Bias:        true,
		Activations: []network.Activation{network.Identity{}, network.Identity{}, network.Identity{}},
	})
	require.NoError(t, err)

	x := mat.NewDense(1, 1, []float64{0})
	y := mat.NewDense(1, 1, []float64{0})

	ts := suite.TrainingSettings{
		Inputs:       x,
		Outputs:      y,
		LearningRate: 2,
		ErrorFn:      network.SquaredError{},
	}
	fn, _ := newObjective(net, ts)

	// Weights [bias=5, w=0] per layer: with x=0 the hypothesis is
	// b1 + w1*b0 = 5, so the loss term is 0.5*5^2/1. Bias entries are
	// exempt from regularization, the zero non-bias weights add nothing.
	cost := fn([]float64{5, 0, 5, 0})
	wantLoss := 0.5 * 25.0
	assert.InDelta(t, wantLoss, cost, 1e-12)

	// Non-bias weight 3 in the first layer adds lr/(2m)*3^2 = 9.
	cost = fn([]float64{0, 3, 0, 0})
	// hypothesis: b1 + w1*(b0 + w0*0) = 0; loss 0; reg = 2/(2*1)*9 = 9.
	assert.InDelta(t, 9.0, cost, 1e-12)
}
