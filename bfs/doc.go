// Package bfs provides breadth-first search over a core.Store,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (links) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Via: map from node → the link it was reached through
//   - Hooks: OnEnqueue (before a node is queued) and OnVisit (may abort with an error).
//   - Filters individual (node, neighbor, link) triples via WithFilterNeighbor.
//   - Walks only the requested layers (trunk by default).
//   - ConnectedComponents and Clusters are built on the same walker.
//
// Determinism
//
//	core.Store.Adjacent yields links sorted by LinkID, and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Nodes|, E = |Links| in the walked layers)
//
//   - Time:   O(V + E log d)   (adjacency snapshot is sorted per node)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(s, start, bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or a hook error
//	}
//	path, _ := res.PathTo(target)
package bfs
