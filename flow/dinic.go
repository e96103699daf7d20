package flow

import (
	"math"

	"github.com/katalvlaran/netgraph/core"
)

// Dinic computes the maximum flow from src to sink over the trunk layer of s
// using Dinic’s algorithm (level graph + blocking flows). It shares the
// residual definition and in-place update of FordFulkerson.
//
// Steps:
//  1. Validate endpoints and capacities (prepare).
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS levels over positive-residual arcs.
//     c. Build next[u]: arcs to level(u)+1.
//     d. DFS pushes until blocked, optionally rebuilding levels every
//        LevelRebuildInterval augmentations.
//  3. Snapshot trunk flows into the Result.
//
// Complexity:
//
//	Time:   O(V² · E) in general; O(E · √V) on unit-capacity networks.
//	Memory: O(V + E) for levels and the level-graph adjacency.
func Dinic(s *core.Store, src, sink core.NodeID, opts FlowOptions) (*Result, error) {
	r, err := prepare(AlgDinic, s, src, sink, opts)
	if err != nil {
		return nil, err
	}

	for {
		if err = r.opts.Ctx.Err(); err != nil {
			return r.finish(), err
		}
		next := r.levelGraph()
		if next == nil {
			break
		}
		iter := make(map[core.NodeID]int, len(next))
		pushes := 0
		for {
			if err = r.opts.Ctx.Err(); err != nil {
				return r.finish(), err
			}
			var path []arc
			if r.dfsDinicPush(next, iter, r.src, &path) == 0 {
				break
			}
			r.augment(path)
			pushes++
			if r.opts.LevelRebuildInterval > 0 && pushes%r.opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return r.finish(), nil
}

// levelGraph returns the level-graph adjacency, or nil when the sink is unreachable.
func (r *run) levelGraph() map[core.NodeID][]arc {
	level := map[core.NodeID]int{r.src: 0}
	queue := []core.NodeID{r.src}
	next := make(map[core.NodeID][]arc)
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, a := range r.arcs(u) {
			v := a.to()
			lv, seen := level[v]
			if !seen {
				lv = level[u] + 1
				level[v] = lv
				queue = append(queue, v)
			}
			if lv == level[u]+1 {
				next[u] = append(next[u], a)
			}
		}
	}
	if _, ok := level[r.dst]; !ok {
		return nil
	}
	return next
}

// dfsDinicPush walks the level graph from u, skipping saturated arcs via
// iter, and returns the bottleneck of the first path found (0 if blocked).
// The found arcs are appended to path in order.
func (r *run) dfsDinicPush(next map[core.NodeID][]arc, iter map[core.NodeID]int, u core.NodeID, path *[]arc) int64 {
	if u == r.dst {
		return math.MaxInt64
	}
	for ; iter[u] < len(next[u]); iter[u]++ {
		a := next[u][iter[u]]
		if a.residual() <= 0 {
			continue
		}
		*path = append(*path, a)
		if got := r.dfsDinicPush(next, iter, a.to(), path); got > 0 {
			return min(got, a.residual())
		}
		*path = (*path)[:len(*path)-1]
	}
	return 0
}
