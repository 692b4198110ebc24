package suite

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mindgrid-ml/mindgrid/internal/network"
	"github.com/mindgrid-ml/mindgrid/internal/optim"
)

// TrainingSettings is the training half of a resolved suite: the data,
// the regularization rate, the loss, the minimization strategy, and the
// number of random-restart attempts.
type TrainingSettings struct {
	// Inputs holds one feature column per example; Outputs the matching
	// target columns. Nil when the space carried no training data.
	Inputs  *mat.Dense
	Outputs *mat.Dense

	// LearningRate is the regularization rate applied to the cost.
	LearningRate float64

	ErrorFn   network.ErrorFunc
	Minimizer optim.Minimizer

	// Iterations is the number of minimization restarts, each from
	// freshly reset weights; the best successful result wins.
	Iterations int
}

// Suite is one fully resolved configuration: every setting carries
// exactly one value, never a list. Suites are immutable value records
// produced lazily by a Sequence.
type Suite struct {
	index  int
	values map[Name]any
}

// Index returns the suite's position in its sequence.
func (s Suite) Index() int { return s.index }

// Value returns the resolved value of the named setting and whether the
// name exists in the schema.
func (s Suite) Value(name Name) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Network assembles the suite's network settings.
func (s Suite) Network() network.Settings {
	return network.Settings{
		InputUnits:  s.values[SettingInputUnits].(int),
		OutputUnits: s.values[SettingOutputUnits].(int),
		HiddenUnits: s.values[SettingHiddenUnits].(int),
		Bias:        s.values[SettingBias].(bool),
		Activations: s.values[SettingActivations].([]network.Activation),
	}
}

// Training assembles the suite's training settings.
func (s Suite) Training() TrainingSettings {
	return TrainingSettings{
		Inputs:       s.values[SettingTrainInputs].(*mat.Dense),
		Outputs:      s.values[SettingTrainOutputs].(*mat.Dense),
		LearningRate: s.values[SettingLearningRate].(float64),
		ErrorFn:      s.values[SettingErrorFn].(network.ErrorFunc),
		Minimizer:    s.values[SettingMinimizer].(optim.Minimizer),
		Iterations:   s.values[SettingIterations].(int),
	}
}
