// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// impl_cycle.go - Cycle(n): n ≥ 3 nodes on a circle, trunks i→(i+1)%n.

package builder

import "github.com/katalvlaran/netgraph/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the ring C_n.
func Cycle(n int) Constructor {
	return func(s *core.Store, cfg builderConfig) ([]core.NodeID, error) {
		if n < minCycleNodes {
			return nil, tooFew(methodCycle, "n", n, minCycleNodes)
		}
		ids, err := addNodes(s, cfg, methodCycle, n, onCircle(cfg, n))
		if err != nil {
			return nil, err
		}
		for i := range n {
			if err = addTrunk(s, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return nil, err
			}
		}
		return ids, nil
	}
}
