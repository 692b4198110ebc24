package suite

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mindgrid-ml/mindgrid/internal/network"
	"github.com/mindgrid-ml/mindgrid/internal/optim"
)

// Builder assembles a SettingSpace through method chaining. Every
// setter accepts one value (scalar setting) or several (candidate
// list) and returns the builder itself:
//
//	seq, err := suite.NewBuilder().
//	    InputUnits(4).
//	    OutputUnits(1).
//	    HiddenUnits(3, 5).
//	    LearningRate(0.1).
//	    Build()
//
// Build validates and freezes a copy of the accumulated settings, so
// the builder stays usable afterwards: further chaining starts from the
// settings already present, and repeated Builds without intervening
// mutation produce equivalent sequences.
type Builder struct {
	space *SettingSpace
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{space: NewSettingSpace()}
}

// set routes a variadic setter's arguments: one argument is a scalar,
// several are a candidate list, none is a no-op.
func set[T any](b *Builder, name Name, vs []T) *Builder {
	switch len(vs) {
	case 0:
	case 1:
		b.space.Set(name, vs[0])
	default:
		b.space.Set(name, vs)
	}
	return b
}

// InputUnits sets the input layer width.
func (b *Builder) InputUnits(units ...int) *Builder {
	return set(b, SettingInputUnits, units)
}

// OutputUnits sets the output layer width.
func (b *Builder) OutputUnits(units ...int) *Builder {
	return set(b, SettingOutputUnits, units)
}

// HiddenUnits sets the hidden layer width.
func (b *Builder) HiddenUnits(units ...int) *Builder {
	return set(b, SettingHiddenUnits, units)
}

// Bias sets whether networks carry a bias unit.
func (b *Builder) Bias(bias ...bool) *Builder {
	return set(b, SettingBias, bias)
}

// Activations sets the per-layer activation functions. Each argument is
// one complete per-suite assignment (one activation per layer).
func (b *Builder) Activations(fns ...[]network.Activation) *Builder {
	return set(b, SettingActivations, fns)
}

// TrainingData sets the training inputs and outputs together. Columns
// are examples.
func (b *Builder) TrainingData(inputs, outputs *mat.Dense) *Builder {
	b.space.Set(SettingTrainInputs, inputs)
	b.space.Set(SettingTrainOutputs, outputs)
	return b
}

// TrainingInputs sets the training feature matrix (or candidates).
func (b *Builder) TrainingInputs(inputs ...*mat.Dense) *Builder {
	return set(b, SettingTrainInputs, inputs)
}

// TrainingOutputs sets the training target matrix (or candidates).
func (b *Builder) TrainingOutputs(outputs ...*mat.Dense) *Builder {
	return set(b, SettingTrainOutputs, outputs)
}

// LearningRate sets the regularization rate.
func (b *Builder) LearningRate(rates ...float64) *Builder {
	return set(b, SettingLearningRate, rates)
}

// ErrorFn sets the loss function.
func (b *Builder) ErrorFn(fns ...network.ErrorFunc) *Builder {
	return set(b, SettingErrorFn, fns)
}

// Minimizer sets the minimization strategy.
func (b *Builder) Minimizer(ms ...optim.Minimizer) *Builder {
	return set(b, SettingMinimizer, ms)
}

// Iterations sets the number of minimization restarts per suite.
func (b *Builder) Iterations(ns ...int) *Builder {
	return set(b, SettingIterations, ns)
}

// Set registers an arbitrary raw value for a named setting, the escape
// hatch behind the typed setters. The value may be a scalar or a slice.
func (b *Builder) Set(name Name, value any) *Builder {
	b.space.Set(name, value)
	return b
}

// Build validates and freezes the accumulated settings and returns the
// Sequence over the frozen space. On validation failure no sequence is
// produced and the configuration error is returned as-is; see
// ValidateAndFreeze for the failure taxonomy.
func (b *Builder) Build() (*Sequence, error) {
	frozen, err := b.space.ValidateAndFreeze()
	if err != nil {
		return nil, err
	}
	return newSequence(frozen), nil
}
