// SPDX-License-Identifier: MIT
// Package: matrix
//
// floydwarshall.go - dense all-pairs shortest paths with a fixed k → i → j
// loop order.
//
// Contract:
//   - Square matrix; +Inf means "no path"; the diagonal must be 0.

package matrix

import (
	"fmt"
	"math"
)

// floydWarshallInPlace runs the closure on a square *Dense in place.
// Only strict improvements are written, so equal-length alternatives keep
// the first value found.
// Time: O(n^3); extra space: O(1).
func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	for k := range n {
		baseK := k * n
		for i := range n {
			ik := data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := range n {
				kj := data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in place on m.
//
// Errors: ErrNonSquare.
func FloydWarshall(m *Dense) error {
	if m.r != m.c {
		return fmt.Errorf("FloydWarshall: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	floydWarshallInPlace(m)
	return nil
}
