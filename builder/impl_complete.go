// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// impl_complete.go - Complete(n): K_n on a circle, trunks i→j for i<j in
// lexicographic order.

package builder

import "github.com/katalvlaran/netgraph/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the full mesh K_n.
func Complete(n int) Constructor {
	return func(s *core.Store, cfg builderConfig) ([]core.NodeID, error) {
		if n < minCompleteNodes {
			return nil, tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		ids, err := addNodes(s, cfg, methodComplete, n, onCircle(cfg, n))
		if err != nil {
			return nil, err
		}
		for i := range n {
			for j := i + 1; j < n; j++ {
				if err = addTrunk(s, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return nil, err
				}
			}
		}
		return ids, nil
	}
}
