// Copyright 2026 Mindgrid ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package suite is the public API for declaring spaces of network and
// training settings and expanding them into suite sequences.
//
// See the internal suite package for the full documentation; this
// package re-exports its surface.
package suite

import (
	"github.com/mindgrid-ml/mindgrid/internal/suite"
)

// Name identifies one setting in the fixed schema.
type Name = suite.Name

// Setting names.
const (
	SettingInputUnits   = suite.SettingInputUnits
	SettingOutputUnits  = suite.SettingOutputUnits
	SettingHiddenUnits  = suite.SettingHiddenUnits
	SettingBias         = suite.SettingBias
	SettingActivations  = suite.SettingActivations
	SettingTrainInputs  = suite.SettingTrainInputs
	SettingTrainOutputs = suite.SettingTrainOutputs
	SettingLearningRate = suite.SettingLearningRate
	SettingErrorFn      = suite.SettingErrorFn
	SettingMinimizer    = suite.SettingMinimizer
	SettingIterations   = suite.SettingIterations
)

// Kind is the declared value kind of a setting.
type Kind = suite.Kind

// Setting kinds.
const (
	KindInt         = suite.KindInt
	KindFloat       = suite.KindFloat
	KindBool        = suite.KindBool
	KindActivations = suite.KindActivations
	KindMatrix      = suite.KindMatrix
	KindErrorFunc   = suite.KindErrorFunc
	KindMinimizer   = suite.KindMinimizer
)

// SettingSpace holds raw, possibly multi-valued settings before expansion.
type SettingSpace = suite.SettingSpace

// NewSettingSpace creates an empty, mutable SettingSpace.
func NewSettingSpace() *SettingSpace {
	return suite.NewSettingSpace()
}

// Builder assembles a SettingSpace through method chaining.
type Builder = suite.Builder

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return suite.NewBuilder()
}

// Suite is one fully resolved configuration.
type Suite = suite.Suite

// TrainingSettings is the training half of a resolved suite.
type TrainingSettings = suite.TrainingSettings

// Sequence is a finite, ordered, lazy, restartable sequence of Suites.
type Sequence = suite.Sequence

// ErrConfiguration is the sentinel wrapped by every configuration error.
var ErrConfiguration = suite.ErrConfiguration

// Configuration error causes, matchable with errors.As.
type (
	// MissingSettingError reports a required setting with no default.
	MissingSettingError = suite.MissingSettingError

	// TypeMismatchError reports a value of the wrong kind.
	TypeMismatchError = suite.TypeMismatchError

	// InconsistentExpansionError reports disagreeing list lengths.
	InconsistentExpansionError = suite.InconsistentExpansionError

	// UnknownSettingError reports a name outside the fixed schema.
	UnknownSettingError = suite.UnknownSettingError
)
