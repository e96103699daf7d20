// Package prim_kruskal computes minimum spanning trees over the trunk layer
// of a core.Store, the tree a spanning-tree domain converges to.
//
// A trunk weighs the cheaper of its two directional costs. The node set is
// the whole store or the subset given with WithNodes; only trunks with both
// endpoints in the set (and accepted by WithLinkFilter) are candidates.
//
// Algorithms:
//
//   - Kruskal: sort candidate trunks by (weight, id), union-find.
//     O(E log E + α(V)·E).
//   - Prim: grow from a root with a min-heap keyed by (weight, id).
//     O(E log V).
//
// Both return ErrDisconnected unless the tree spans every node of the set,
// and both pick the same tree when weights are distinct.
//
//	tree, err := prim_kruskal.Prim(s, root, prim_kruskal.WithNodes(members))
package prim_kruskal
