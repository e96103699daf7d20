// SPDX-License-Identifier: MIT
// Package matrix provides a dense row-major matrix and adapters that read a
// core.Store into it: link-multiplicity adjacency and all-pairs distances
// (Floyd–Warshall), with eccentricity and diameter on top.
//
// Rows and columns follow ascending NodeID over the selected nodes (all
// nodes by default, WithNodes otherwise). Distances are hop counts unless
// WithCosts is given, in which case each direction of a link weighs its
// directional cost and the cheapest parallel link wins.
//
// Errors are package sentinels (ErrBadShape, ErrOutOfRange, ErrNonSquare,
// ErrGraphNil, ErrUnknownNode, ErrNegativeCost), matched with errors.Is.
package matrix
