// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is; messages carry
// the constructor name as context.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNameTaken indicates a generated node name already exists in the store;
// constructors never merge into existing nodes.
var ErrNameTaken = errors.New("builder: node name already taken")

// ErrConstructFailed indicates a nil constructor or a store rejection.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an option received an invalid value.
var ErrOptionViolation = errors.New("builder: invalid option value")
