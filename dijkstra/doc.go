// Package dijkstra provides constrained shortest-path search over the
// adjacency index of a core.Store.
//
// Overview:
//
//   - ShortestPath(s, src, dst, opts...) returns a *Path (links, nodes, cost)
//     or ErrNoPathFound. A zero-link path from a node to itself is a success,
//     so callers can tell "no path" from "empty path".
//   - Hop count by default; WithCosts() uses the directional cost in the
//     direction of traversal.
//   - Exclusions (WithExcludedNodes, WithExcludedLinks) and predicates
//     (WithNodeFilter, WithLinkFilter) prune the graph before relaxation.
//     Domain-scoped routing is a pair of filters over an AS's pools.
//   - WithWaypoints concatenates per-segment shortest paths.
//
// Determinism:
//
//	The heap orders entries by (distance, push sequence) and the store yields
//	adjacency sorted by LinkID, so equal-cost alternatives resolve identically
//	on every call for the same store.
//
// Example:
//
//	p, err := dijkstra.ShortestPath(s, a, d, dijkstra.WithWaypoints(c))
//	if errors.Is(err, dijkstra.ErrNoPathFound) {
//		// expected outcome, report per query
//	}
package dijkstra
