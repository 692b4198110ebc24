package train

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mindgrid-ml/mindgrid/internal/network"
	"github.com/mindgrid-ml/mindgrid/internal/optim"
	"github.com/mindgrid-ml/mindgrid/internal/suite"
)

// BuildFunc constructs a network from one suite's network settings.
type BuildFunc func(network.Settings) (*network.Network, error)

// NetworkTrainer trains a constructed network on one suite's training
// settings, mutating the network in place on success.
type NetworkTrainer interface {
	Train(net *network.Network, ts suite.TrainingSettings) (*optim.Result, error)
}

// Config configures a Driver. The zero value is usable: networks are
// built with network.New, trained with a default Trainer, and nothing
// is logged.
type Config struct {
	// Build constructs networks. Nil selects network.New.
	Build BuildFunc

	// Trainer trains networks. Nil selects NewTrainer with this
	// config's Seed and Logger.
	Trainer NetworkTrainer

	// Seed seeds the default trainer's weight initialization. Ignored
	// when Trainer is set.
	Seed int64

	// Logger receives per-suite progress events. The zero Logger is
	// silent.
	Logger zerolog.Logger
}

// Driver walks a suite sequence strictly in index order, building,
// training, and evaluating one suite at a time and folding the per-suite
// metric results into a single accumulated value.
//
// Failure isolation: a suite whose network construction or training
// fails is skipped, its metric is never invoked and nothing is folded,
// and the failure is recorded in the run's Report. The driver itself
// never fails because of a single suite.
//
// The driver only reads suites; it never mutates a sequence or its
// settings.
type Driver struct {
	build   BuildFunc
	trainer NetworkTrainer
	log     zerolog.Logger
}

// NewDriver creates a Driver from cfg, filling defaults for unset
// collaborators.
func NewDriver(cfg Config) *Driver {
	d := &Driver{
		build:   cfg.Build,
		trainer: cfg.Trainer,
		log:     cfg.Logger,
	}
	if d.build == nil {
		d.build = network.New
	}
	if d.trainer == nil {
		d.trainer = NewTrainer(TrainerConfig{Seed: cfg.Seed, Logger: cfg.Logger})
	}
	return d
}

// Metric evaluates one successfully trained network into an arbitrary
// per-suite result.
type Metric[R any] func(*network.Network) R

// Combiner folds one suite's metric result into the accumulated value.
type Combiner[R, A any] func(result R, acc A) A

// Run drives the sequence with the default combiner: the metric results
// of all successfully trained suites, appended in sequence order. With
// no failures the slice holds one result per suite; skipped suites are
// simply absent (consult the Report to tell the cases apart).
func Run[R any](d *Driver, seq *suite.Sequence, metric Metric[R]) ([]R, Report) {
	return RunFold(d, seq, metric, func(r R, acc []R) []R {
		return append(acc, r)
	}, nil)
}

// RunFold drives the sequence with an explicit combine function and an
// explicit seed accumulator. The seed is required rather than inferred:
// the fold starts from exactly the value the caller supplies, and the
// first successful suite folds into that seed like any other.
//
// Per suite, strictly in sequence order: build the network from the
// suite's network settings, train it on the suite's training settings,
// evaluate metric on the trained network, and fold the result:
//
//	acc = combine(metric(net), acc)
//
// The final accumulated value is returned together with the run Report.
func RunFold[R, A any](d *Driver, seq *suite.Sequence, metric Metric[R], combine Combiner[R, A], seed A) (A, Report) {
	report := Report{
		RunID:  uuid.New(),
		Suites: seq.Len(),
	}
	log := d.log.With().Str("run", report.RunID.String()).Logger()
	log.Info().Int("suites", seq.Len()).Msg("starting run")

	acc := seed
	for i, s := range seq.All() {
		net, err := d.build(s.Network())
		if err != nil {
			log.Warn().Int("suite", i).Stringer("stage", StageBuild).Err(err).Msg("suite skipped")
			report.Failures = append(report.Failures, Failure{Suite: i, Stage: StageBuild, Err: err})
			continue
		}

		res, err := d.trainer.Train(net, s.Training())
		if err != nil {
			log.Warn().Int("suite", i).Stringer("stage", StageTrain).Err(err).Msg("suite skipped")
			report.Failures = append(report.Failures, Failure{Suite: i, Stage: StageTrain, Err: err})
			continue
		}

		log.Info().Int("suite", i).Float64("cost", res.F).Msg("suite trained")
		acc = combine(metric(net), acc)
	}

	log.Info().
		Int("succeeded", report.Suites-len(report.Failures)).
		Int("skipped", len(report.Failures)).
		Msg("run finished")
	return acc, report
}
