package train

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mindgrid-ml/mindgrid/internal/network"
	"github.com/mindgrid-ml/mindgrid/internal/optim"
	"github.com/mindgrid-ml/mindgrid/internal/suite"
)

// ErrTraining is the sentinel wrapped by every per-suite training
// failure surfaced by the Trainer.
var ErrTraining = errors.New("train: training failed")

// TrainerConfig configures a Trainer.
type TrainerConfig struct {
	// Seed seeds the weight-reset source for reproducible restarts.
	// Zero draws from the global math/rand source instead.
	Seed int64

	// Logger receives per-restart events. The zero Logger is silent.
	Logger zerolog.Logger
}

// Trainer trains a network in place on one suite's training settings.
//
// Training follows the restart scheme: Iterations times, reset the
// weights, minimize the regularized cost from that starting point, and
// remember the successful result with the lowest final cost. The best
// weights are written back into the network. Training fails when no
// restart produced a usable minimum.
type Trainer struct {
	rng *rand.Rand
	log zerolog.Logger
}

// NewTrainer creates a Trainer.
func NewTrainer(cfg TrainerConfig) *Trainer {
	t := &Trainer{log: cfg.Logger}
	if cfg.Seed != 0 {
		t.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	return t
}

// Train implements the restart scheme described on Trainer. It mutates
// net on success and returns the best minimization result. All errors
// wrap ErrTraining; a failed restart is logged and skipped, only a run
// with zero successful restarts fails as a whole.
func (t *Trainer) Train(net *network.Network, ts suite.TrainingSettings) (*optim.Result, error) {
	if ts.Inputs == nil || ts.Outputs == nil {
		return nil, fmt.Errorf("%w: no training data", ErrTraining)
	}
	if ts.Minimizer == nil {
		return nil, fmt.Errorf("%w: no minimizer", ErrTraining)
	}
	ir, ic := ts.Inputs.Dims()
	tr, tc := ts.Outputs.Dims()
	if ic != tc {
		return nil, fmt.Errorf("%w: %d input examples but %d target examples", ErrTraining, ic, tc)
	}
	sizes := net.Sizes()
	if ir != sizes[0] {
		return nil, fmt.Errorf("%w: input data has %d features, network expects %d", ErrTraining, ir, sizes[0])
	}
	if tr != sizes[len(sizes)-1] {
		return nil, fmt.Errorf("%w: target data has %d outputs, network expects %d", ErrTraining, tr, sizes[len(sizes)-1])
	}

	fn, grad := newObjective(net, ts)

	var best *optim.Result
	for i := 0; i < ts.Iterations; i++ {
		net.ResetWeights(t.rng)
		init := Unroll(net.Weights())

		res, err := ts.Minimizer.Minimize(fn, grad, init)
		if err != nil {
			t.log.Warn().
				Int("restart", i).
				Str("minimizer", ts.Minimizer.Name()).
				Err(err).
				Msg("restart failed")
			continue
		}
		t.log.Debug().
			Int("restart", i).
			Float64("cost", res.F).
			Msg("restart finished")
		if best == nil || res.F < best.F {
			best = res
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: no successful restart in %d attempts", ErrTraining, ts.Iterations)
	}
	if err := net.SetWeights(Reshape(best.X, net.WeightDims())); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTraining, err)
	}
	return best, nil
}
