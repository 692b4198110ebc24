// Copyright 2026 Mindgrid ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network is the public API for feedforward networks built from
// suite settings.
//
// See the internal network package for the full documentation; this
// package re-exports its surface.
package network

import (
	"github.com/mindgrid-ml/mindgrid/internal/network"
)

// Network is a fully connected feedforward network.
type Network = network.Network

// Settings describes a network architecture resolved from one suite.
type Settings = network.Settings

// New constructs a Network from the given settings.
func New(cfg Settings) (*Network, error) {
	return network.New(cfg)
}

// ErrConstruction is the sentinel wrapped by construction failures.
var ErrConstruction = network.ErrConstruction

// ConstructionError reports an invalid architecture parameter.
type ConstructionError = network.ConstructionError

// Activation is an element-wise activation function with derivative.
type Activation = network.Activation

// Activation functions.
type (
	// Identity passes values through unchanged.
	Identity = network.Identity

	// Sigmoid squashes values into (0, 1).
	Sigmoid = network.Sigmoid

	// Tanh squashes values into (-1, 1).
	Tanh = network.Tanh

	// ReLU rectifies negative values to zero.
	ReLU = network.ReLU
)

// ErrorFunc measures the discrepancy between hypothesis and targets.
type ErrorFunc = network.ErrorFunc

// Loss functions.
type (
	// SquaredError is the half squared error.
	SquaredError = network.SquaredError

	// LogitError is the cross-entropy loss.
	LogitError = network.LogitError
)
