package suite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindgrid-ml/mindgrid/internal/network"
	"github.com/mindgrid-ml/mindgrid/internal/optim"
	"github.com/mindgrid-ml/mindgrid/internal/suite"
)

func TestBuilderChainingReturnsSameBuilder(t *testing.T) {
	b := suite.NewBuilder()
	assert.Same(t, b, b.InputUnits(4))
	assert.Same(t, b, b.OutputUnits(1))
	assert.Same(t, b, b.HiddenUnits(3, 5))
	assert.Same(t, b, b.Bias(false))
	assert.Same(t, b, b.LearningRate(0.1))
	assert.Same(t, b, b.Iterations(5))
	assert.Same(t, b, b.ErrorFn(network.LogitError{}))
	assert.Same(t, b, b.Minimizer(optim.GradientDescent{}))
}

func TestBuilderIsReusableAfterBuild(t *testing.T) {
	b := suite.NewBuilder().
		InputUnits(4).
		OutputUnits(1).
		HiddenUnits(3, 5)

	first, err := b.Build()
	require.NoError(t, err)

	second, err := b.Build()
	require.NoError(t, err)

	// Repeated builds without mutation are equivalent.
	require.Equal(t, first.Len(), second.Len())
	for i, s := range first.All() {
		assert.Equal(t, s.Network(), second.At(i).Network())
	}

	// Mutating after a build affects later builds only.
	b.HiddenUnits(9)
	third, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, third.Len())
	assert.Equal(t, 9, third.At(0).Network().HiddenUnits)
	assert.Equal(t, 3, first.At(0).Network().HiddenUnits, "earlier sequences are unaffected")
}

func TestBuilderScalarVersusList(t *testing.T) {
	seq, err := suite.NewBuilder().
		InputUnits(2).
		OutputUnits(1).
		HiddenUnits(3).
		Minimizer(optim.BFGS{}, optim.LBFGS{}).
		Build()
	require.NoError(t, err)
	require.Equal(t, 2, seq.Len())
	assert.Equal(t, optim.BFGS{}, seq.At(0).Training().Minimizer)
	assert.Equal(t, optim.LBFGS{}, seq.At(1).Training().Minimizer)
}

func TestBuilderActivationCandidates(t *testing.T) {
	sigmoidNet := []network.Activation{network.Identity{}, network.Sigmoid{}, network.Sigmoid{}}
	tanhNet := []network.Activation{network.Identity{}, network.Tanh{}, network.Tanh{}}

	seq, err := suite.NewBuilder().
		InputUnits(2).
		OutputUnits(1).
		HiddenUnits(3).
		Activations(sigmoidNet, tanhNet).
		Build()
	require.NoError(t, err)
	require.Equal(t, 2, seq.Len())
	assert.Equal(t, sigmoidNet, seq.At(0).Network().Activations)
	assert.Equal(t, tanhNet, seq.At(1).Network().Activations)
}

func TestBuilderZeroArgumentSetterIsNoOp(t *testing.T) {
	_, err := suite.NewBuilder().
		InputUnits(4).
		OutputUnits(1).
		HiddenUnits(). // no-op, hidden_units stays missing
		Build()
	require.Error(t, err)

	var missing *suite.MissingSettingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, suite.SettingHiddenUnits, missing.Name)
}
