// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// impl_path.go - Path(n): n ≥ 2 nodes on a horizontal line, trunks i→i+1.

package builder

import "github.com/katalvlaran/netgraph/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the path P_n.
func Path(n int) Constructor {
	return func(s *core.Store, cfg builderConfig) ([]core.NodeID, error) {
		if n < minPathNodes {
			return nil, tooFew(methodPath, "n", n, minPathNodes)
		}
		ids, err := addNodes(s, cfg, methodPath, n, func(i int) (float64, float64) {
			return float64(i) * cfg.spacing, 0
		})
		if err != nil {
			return nil, err
		}
		for i := 1; i < n; i++ {
			if err = addTrunk(s, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return nil, err
			}
		}
		return ids, nil
	}
}
