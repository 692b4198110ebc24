package suite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/mindgrid-ml/mindgrid/internal/network"
	"github.com/mindgrid-ml/mindgrid/internal/optim"
	"github.com/mindgrid-ml/mindgrid/internal/suite"
)

// minimal returns a builder carrying just the required settings.
func minimal() *suite.Builder {
	return suite.NewBuilder().
		InputUnits(4).
		OutputUnits(1).
		HiddenUnits(3)
}

func TestScalarOnlySpaceExpandsToOneSuite(t *testing.T) {
	seq, err := minimal().
		LearningRate(0.1).
		Iterations(100).
		Build()
	require.NoError(t, err)
	assert.Equal(t, 1, seq.Len())

	s := seq.At(0)
	assert.Equal(t, 4, s.Network().InputUnits)
	assert.Equal(t, 1, s.Network().OutputUnits)
	assert.Equal(t, 3, s.Network().HiddenUnits)
	assert.Equal(t, 0.1, s.Training().LearningRate)
	assert.Equal(t, 100, s.Training().Iterations)
}

func TestDefaultsFillAbsentSettings(t *testing.T) {
	seq, err := minimal().Build()
	require.NoError(t, err)

	s := seq.At(0)
	assert.True(t, s.Network().Bias, "bias should default to true")
	assert.Nil(t, s.Network().Activations, "activations should default to nil (network default)")
	assert.Equal(t, float64(0), s.Training().LearningRate)
	assert.Equal(t, 10, s.Training().Iterations)
	assert.Equal(t, network.SquaredError{}, s.Training().ErrorFn)
	assert.Equal(t, optim.BFGS{}, s.Training().Minimizer)
	assert.Nil(t, s.Training().Inputs)
	assert.Nil(t, s.Training().Outputs)
}

func TestMissingRequiredSettingFails(t *testing.T) {
	tests := []struct {
		name    string
		builder *suite.Builder
		missing suite.Name
	}{
		{"no input units", suite.NewBuilder().OutputUnits(1).HiddenUnits(3), suite.SettingInputUnits},
		{"no output units", suite.NewBuilder().InputUnits(4).HiddenUnits(3), suite.SettingOutputUnits},
		{"no hidden units", suite.NewBuilder().InputUnits(4).OutputUnits(1), suite.SettingHiddenUnits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := tt.builder.Build()
			assert.Nil(t, seq)
			require.Error(t, err)
			assert.ErrorIs(t, err, suite.ErrConfiguration)

			var missing *suite.MissingSettingError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.missing, missing.Name)
		})
	}
}

func TestInconsistentListLengthsFail(t *testing.T) {
	seq, err := minimal().
		HiddenUnits(3, 5).
		LearningRate(0.1, 0.2, 0.3).
		Build()
	assert.Nil(t, seq, "no sequence may be produced on validation failure")
	require.Error(t, err)
	assert.ErrorIs(t, err, suite.ErrConfiguration)

	var inconsistent *suite.InconsistentExpansionError
	require.ErrorAs(t, err, &inconsistent)
	assert.Equal(t, suite.SettingLearningRate, inconsistent.Name)
	assert.Equal(t, 3, inconsistent.Len)
	assert.Equal(t, 2, inconsistent.Want)
	assert.Equal(t, suite.SettingHiddenUnits, inconsistent.First)
}

func TestTypeMismatchFails(t *testing.T) {
	seq, err := minimal().
		Set(suite.SettingHiddenUnits, "three").
		Build()
	assert.Nil(t, seq)
	require.Error(t, err)
	assert.ErrorIs(t, err, suite.ErrConfiguration)

	var mismatch *suite.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, suite.SettingHiddenUnits, mismatch.Name)
	assert.Equal(t, suite.KindInt, mismatch.Want)
	assert.Equal(t, "string", mismatch.Got)
}

func TestEmptyListFails(t *testing.T) {
	_, err := minimal().
		Set(suite.SettingHiddenUnits, []int{}).
		Build()
	require.Error(t, err)

	var mismatch *suite.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "empty list", mismatch.Got)
}

func TestUnknownSettingFails(t *testing.T) {
	_, err := minimal().
		Set(suite.Name("bogus"), 1).
		Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, suite.ErrConfiguration)

	var unknown *suite.UnknownSettingError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, suite.Name("bogus"), unknown.Name)
}

func TestValidationHappensAtBuildNotIteration(t *testing.T) {
	// An invalid space must fail at Build; a valid one must never fail
	// while iterating.
	_, err := minimal().HiddenUnits(3, 5).Iterations(1, 2, 3).Build()
	require.Error(t, err)

	seq, err := minimal().HiddenUnits(3, 5).Iterations(1, 2).Build()
	require.NoError(t, err)
	for i, s := range seq.All() {
		assert.Equal(t, i, s.Index())
	}
}

func TestSetOnFrozenSpacePanics(t *testing.T) {
	space := suite.NewSettingSpace()
	space.Set(suite.SettingInputUnits, 4)
	space.Set(suite.SettingOutputUnits, 1)
	space.Set(suite.SettingHiddenUnits, 3)

	frozen, err := space.ValidateAndFreeze()
	require.NoError(t, err)
	assert.True(t, frozen.Frozen())
	assert.False(t, space.Frozen(), "the original space stays mutable")

	assert.Panics(t, func() { frozen.Set(suite.SettingBias, false) })
}

func TestMatrixSettings(t *testing.T) {
	x := mat.NewDense(4, 2, nil)
	y := mat.NewDense(1, 2, nil)

	seq, err := minimal().TrainingData(x, y).Build()
	require.NoError(t, err)

	ts := seq.At(0).Training()
	assert.Same(t, x, ts.Inputs)
	assert.Same(t, y, ts.Outputs)
}
