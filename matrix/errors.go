// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrGraphNil indicates that a nil *core.Store was passed into an adapter.
	ErrGraphNil = errors.New("matrix: store is nil")

	// ErrUnknownNode indicates that a referenced node is not in the store or
	// not in the matrix index.
	ErrUnknownNode = errors.New("matrix: unknown node")

	// ErrNegativeCost indicates a negative directional cost under WithCosts.
	ErrNegativeCost = errors.New("matrix: negative link cost")
)
