// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// impl_star.go - Star(n) and Wheel(n). Index 0 is the hub at the origin;
// leaves 1..n-1 sit on a circle around it.

package builder

import "github.com/katalvlaran/netgraph/core"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor for a hub joined to n-1 leaves.
func Star(n int) Constructor {
	return func(s *core.Store, cfg builderConfig) ([]core.NodeID, error) {
		if n < minStarNodes {
			return nil, tooFew(methodStar, "n", n, minStarNodes)
		}
		return hubAndRim(s, cfg, methodStar, n, false)
	}
}

// Wheel returns a Constructor for a hub joined to every node of a ring of n-1.
func Wheel(n int) Constructor {
	return func(s *core.Store, cfg builderConfig) ([]core.NodeID, error) {
		if n < minWheelNodes {
			return nil, tooFew(methodWheel, "n", n, minWheelNodes)
		}
		return hubAndRim(s, cfg, methodWheel, n, true)
	}
}

// hubAndRim emits spokes 0→i in index order, then, for a wheel, the rim
// i→i+1 closing back to 1.
func hubAndRim(s *core.Store, cfg builderConfig, method string, n int, rim bool) ([]core.NodeID, error) {
	leaf := onCircle(cfg, n-1)
	ids, err := addNodes(s, cfg, method, n, func(i int) (float64, float64) {
		if i == 0 {
			return 0, 0
		}
		return leaf(i - 1)
	})
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err = addTrunk(s, cfg, method, ids[0], ids[i]); err != nil {
			return nil, err
		}
	}
	if rim {
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err = addTrunk(s, cfg, method, ids[i], ids[next]); err != nil {
				return nil, err
			}
		}
	}
	return ids, nil
}
