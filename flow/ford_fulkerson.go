package flow

import (
	"github.com/katalvlaran/netgraph/core"
)

// FordFulkerson computes the maximum flow from src to sink over the trunk
// layer of s using the Ford–Fulkerson method (DFS-based augmenting paths).
//
// Residual capacity leaving u over trunk l is l.CapacityFrom(u) - l.FlowFrom(u).
// Each augmentation adds the bottleneck to the traversed direction's flow
// field and subtracts it from the opposite one. Flow fields are mutated in
// place and never reset here; call core.Store.ResetFlows first for a fresh run.
//
// Steps:
//  1. Validate endpoints and capacities (prepare).
//  2. Repeat until no augmenting path:
//     a. Check ctx for cancellation.
//     b. Iterative DFS from src over positive-residual arcs.
//     c. If sink not reached, stop.
//     d. Push the bottleneck along the path; log it when Verbose.
//  3. Snapshot trunk flows into the Result.
//
// Complexity:
//
//	Time:   O(E · F) where F is the flow value (integral capacities).
//	Memory: O(V) for the DFS stack and parent map.
func FordFulkerson(s *core.Store, src, sink core.NodeID, opts FlowOptions) (*Result, error) {
	r, err := prepare(AlgFordFulkerson, s, src, sink, opts)
	if err != nil {
		return nil, err
	}

	for {
		if err = r.opts.Ctx.Err(); err != nil {
			return r.finish(), err
		}
		path := r.dfsPath()
		if path == nil {
			break
		}
		r.augment(path)
	}

	return r.finish(), nil
}

// dfsPath finds any src→sink path of positive residual arcs, or nil.
// Arcs are pushed in link-id order, so the last-listed arc is explored first.
func (r *run) dfsPath() []arc {
	parent := make(map[core.NodeID]arc)
	visited := map[core.NodeID]bool{r.src: true}
	stack := []core.NodeID{r.src}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
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
			stack = append(stack, v)
		}
	}

	return nil
}
