// SPDX-License-Identifier: MIT
// Package: netgraph/builder
//
// helpers.go - node and trunk emission shared by constructors.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netgraph/core"
)

// addNodes creates n nodes named by cfg at pos(i) relative to the origin.
func addNodes(s *core.Store, cfg builderConfig, method string, n int, pos func(i int) (float64, float64)) ([]core.NodeID, error) {
	ids := make([]core.NodeID, n)
	for i := range n {
		x, y := pos(i)
		node, outcome, err := s.NodeFactory(cfg.kind, cfg.name(i), core.WithPosition(cfg.originX+x, cfg.originY+y))
		if err != nil {
			return nil, fmt.Errorf("%s: node %s: %w: %w", method, cfg.name(i), ErrConstructFailed, err)
		}
		if outcome == core.Existing {
			return nil, fmt.Errorf("%s: %q: %w", method, node.Name, ErrNameTaken)
		}
		ids[i] = node.ID
	}
	return ids, nil
}

// addTrunk joins u and v with a trunk carrying cfg's cost and capacity.
func addTrunk(s *core.Store, cfg builderConfig, method string, u, v core.NodeID) error {
	c := cfg.linkCost()
	_, _, err := s.LinkFactory(core.TypeTrunk, "", u, v,
		core.WithCost(c, c),
		core.WithCapacity(cfg.capacity, cfg.capacity),
	)
	if err != nil {
		return fmt.Errorf("%s: trunk %d-%d: %w: %w", method, u, v, ErrConstructFailed, err)
	}
	return nil
}

// onCircle returns the i-th of n points on a circle whose chord between
// neighbors is about spacing.
func onCircle(cfg builderConfig, n int) func(i int) (float64, float64) {
	r := cfg.spacing / (2 * math.Sin(math.Pi/float64(max(n, 2))))
	return func(i int) (float64, float64) {
		a := 2 * math.Pi * float64(i) / float64(n)
		return r * math.Cos(a), r * math.Sin(a)
	}
}

func tooFew(method, param string, got, minimum int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, minimum, ErrTooFewNodes)
}
