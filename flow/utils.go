package flow

import (
	"math"

	"github.com/katalvlaran/netgraph/core"
)

// arc is one traversal of a trunk, starting at from.
type arc struct {
	link *core.Link
	from core.NodeID
}

func (a arc) to() core.NodeID { return a.link.Other(a.from) }
func (a arc) residual() int64 { return a.link.Residual(a.from) }

// run holds the state shared by every algorithm for one call.
type run struct {
	s        *core.Store
	src, dst core.NodeID
	opts     FlowOptions
	res      *Result
}

// prepare validates endpoints and capacities and returns a ready run.
//
// Steps:
//  1. Normalize options.
//  2. Validate source, sink, and that they differ.
//  3. Scan every trunk for a negative directional capacity.
func prepare(alg Algorithm, s *core.Store, src, dst core.NodeID, opts FlowOptions) (*run, error) {
	opts.normalize()
	if !s.HasNode(src) {
		return nil, ErrSourceNotFound
	}
	if !s.HasNode(dst) {
		return nil, ErrSinkNotFound
	}
	if src == dst {
		return nil, ErrSameEndpoints
	}
	for l := range s.Links(core.TypeTrunk) {
		if l.CapacitySD < 0 {
			return nil, CapacityError{Link: l.ID, Name: l.Name, Cap: l.CapacitySD}
		}
		if l.CapacityDS < 0 {
			return nil, CapacityError{Link: l.ID, Name: l.Name, Cap: l.CapacityDS}
		}
	}

	return &run{
		s:    s,
		src:  src,
		dst:  dst,
		opts: opts,
		res:  &Result{Algorithm: alg},
	}, nil
}

// arcs returns the residual-positive traversals leaving u, ordered by link id.
func (r *run) arcs(u core.NodeID) []arc {
	var out []arc
	for _, l := range r.s.Adjacent(u, core.TypeTrunk) {
		a := arc{link: l, from: u}
		if a.residual() > 0 {
			out = append(out, a)
		}
	}
	return out
}

// augment pushes the bottleneck of path and returns it.
func (r *run) augment(path []arc) int64 {
	delta := int64(math.MaxInt64)
	for _, a := range path {
		delta = min(delta, a.residual())
	}
	for _, a := range path {
		a.link.Push(a.from, delta)
	}
	r.record(path, delta)
	return delta
}

// record accumulates one augmentation and logs it when Verbose is set.
func (r *run) record(path []arc, delta int64) {
	r.res.Value += delta
	r.res.Augmentations++
	if !r.opts.Verbose {
		return
	}
	hops := make([]string, 0, len(path)+1)
	if n, ok := r.s.Node(r.src); ok {
		hops = append(hops, n.Name)
	}
	for _, a := range path {
		if n, ok := r.s.Node(a.to()); ok {
			hops = append(hops, n.Name)
		}
	}
	r.opts.Logger.Debug("augmenting path",
		"algorithm", r.res.Algorithm.String(),
		"path", hops,
		"flow", delta,
		"total", r.res.Value,
	)
}

// pathTo rebuilds the arc sequence from src to dst out of parent arcs.
func (r *run) pathTo(parent map[core.NodeID]arc) []arc {
	var path []arc
	for cur := r.dst; cur != r.src; {
		a := parent[cur]
		path = append(path, a)
		cur = a.from
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// finish snapshots trunk flows into the result.
func (r *run) finish() *Result {
	r.res.Flows = make(map[core.LinkID]LinkFlow)
	for l := range r.s.Links(core.TypeTrunk) {
		if l.FlowSD != 0 || l.FlowDS != 0 {
			r.res.Flows[l.ID] = LinkFlow{SD: l.FlowSD, DS: l.FlowDS}
		}
	}
	return r.res
}

// MaxFlow dispatches to the selected algorithm.
func MaxFlow(alg Algorithm, s *core.Store, src, dst core.NodeID, opts FlowOptions) (*Result, error) {
	switch alg {
	case AlgFordFulkerson:
		return FordFulkerson(s, src, dst, opts)
	case AlgEdmondsKarp:
		return EdmondsKarp(s, src, dst, opts)
	case AlgDinic:
		return Dinic(s, src, dst, opts)
	default:
		return nil, ErrUnknownAlgorithm
	}
}
