// Copyright 2026 Mindgrid ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train is the public API for training suite-built networks and
// driving the fold over a suite sequence.
//
// See the internal train package for the full documentation; this
// package re-exports its surface.
package train

import (
	"github.com/mindgrid-ml/mindgrid/internal/suite"
	"github.com/mindgrid-ml/mindgrid/internal/train"
)

// Driver walks a suite sequence, building, training, and folding.
type Driver = train.Driver

// Config configures a Driver; the zero value is usable.
type Config = train.Config

// NewDriver creates a Driver from cfg.
func NewDriver(cfg Config) *Driver {
	return train.NewDriver(cfg)
}

// Trainer trains networks by repeated minimization restarts.
type Trainer = train.Trainer

// TrainerConfig configures a Trainer.
type TrainerConfig = train.TrainerConfig

// NewTrainer creates a Trainer.
func NewTrainer(cfg TrainerConfig) *Trainer {
	return train.NewTrainer(cfg)
}

// BuildFunc constructs a network from suite network settings.
type BuildFunc = train.BuildFunc

// NetworkTrainer trains a constructed network on suite training settings.
type NetworkTrainer = train.NetworkTrainer

// ErrTraining is the sentinel wrapped by per-suite training failures.
var ErrTraining = train.ErrTraining

// Metric evaluates one trained network into a per-suite result.
type Metric[R any] = train.Metric[R]

// Combiner folds one metric result into the accumulated value.
type Combiner[R, A any] = train.Combiner[R, A]

// Report summarizes one driver run.
type Report = train.Report

// Failure records one skipped suite.
type Failure = train.Failure

// Stage identifies where in the per-suite pipeline a failure occurred.
type Stage = train.Stage

// Pipeline stages.
const (
	StageBuild = train.StageBuild
	StageTrain = train.StageTrain
)

// Run drives the sequence with the default append combiner, returning
// the metric results of all successfully trained suites in sequence
// order alongside the run Report.
func Run[R any](d *Driver, seq *suite.Sequence, metric Metric[R]) ([]R, Report) {
	return train.Run(d, seq, metric)
}

// RunFold drives the sequence with an explicit combine function and an
// explicit seed accumulator.
func RunFold[R, A any](d *Driver, seq *suite.Sequence, metric Metric[R], combine Combiner[R, A], seed A) (A, Report) {
	return train.RunFold(d, seq, metric, combine, seed)
}
