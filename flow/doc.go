// Package flow implements maximum-flow algorithms over the trunk layer of a
// core.Store. Every trunk is a pair of directed arcs whose capacities are
// CapacitySD and CapacityDS; parallel trunks are independent arcs.
//
// The algorithms offered are:
//
//   - Ford–Fulkerson: depth-first search for any augmenting path.
//     Time O(E · F) for integral capacities.
//   - Edmonds–Karp: breadth-first search for fewest-hop augmenting paths.
//     Time O(V · E²).
//   - Dinic: level graph + blocking flows. Time O(V² · E).
//
// All three agree on the flow value for the same store state.
//
// # Residual model
//
// Flow is antisymmetric: pushing f from u over trunk l adds f to the flow
// field leaving u and subtracts f from the opposite field. The residual
// capacity leaving u is therefore l.CapacityFrom(u) - l.FlowFrom(u), which
// grows in the reverse direction as flow is pushed forward.
//
// The solvers mutate FlowSD/FlowDS in place and never reset them. A caller
// wanting a fresh computation calls core.Store.ResetFlows first.
//
// # API
//
//	opts := flow.DefaultOptions()
//	opts.Verbose = true // one slog debug record per augmentation
//	res, err := flow.MaxFlow(flow.AlgEdmondsKarp, s, src, dst, opts)
//
// # Errors
//
//	ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints
//	CapacityError - a trunk has a negative capacity in some direction.
//	context.Canceled / context.DeadlineExceeded - returned with the partial Result.
package flow
