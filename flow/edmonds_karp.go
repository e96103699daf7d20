package flow

import (
	"github.com/katalvlaran/netgraph/core"
)

// EdmondsKarp computes the maximum flow from src to sink over the trunk layer
// of s using breadth-first (shortest by hop count) augmenting paths.
//
// The residual graph and the in-place flow update are identical to
// FordFulkerson, so both return the same Value for the same store state.
//
// Complexity: O(V · E²)
// Memory:     O(V)
func EdmondsKarp(s *core.Store, src, sink core.NodeID, opts FlowOptions) (*Result, error) {
	r, err := prepare(AlgEdmondsKarp, s, src, sink, opts)
	if err != nil {
		return nil, err
	}

	for {
		if err = r.opts.Ctx.Err(); err != nil {
			return r.finish(), err
		}
		path := r.bfsPath()
		if path == nil {
			break
		}
		r.augment(path)
	}

	return r.finish(), nil
}

// bfsPath finds the fewest-hop src→sink path of positive residual arcs, or nil.
func (r *run) bfsPath() []arc {
	parent := make(map[core.NodeID]arc)
	visited := map[core.NodeID]bool{r.src: true}
	queue := []core.NodeID{r.src}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, a := range r.arcs(u) {
			v := a.to()
			if visited[v] {
				continue
			}
			visited[v] = true
			parent[v] = a
			if v == r.dst {
				return r.pathTo(parent)
			}
			queue = append(queue, v)
		}
	}

	return nil
}
