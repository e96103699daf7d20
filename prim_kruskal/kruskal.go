package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/netgraph/core"
)

// Kruskal computes a minimum spanning tree of the node set.
//
// Steps:
//  1. Resolve the node set; a set of size ≤ 1 yields an empty tree.
//  2. Collect candidate trunks and sort them by (Weight, id).
//  3. Union-find with path halving and union by rank; accept a trunk
//     when its endpoints are in different sets.
//  4. Stop at |V|-1 trunks; fewer means ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal(s *core.Store, opts ...Option) (*Tree, error) {
	if s == nil {
		return nil, ErrNilGraph
	}
	sc := newScope(s, opts)
	tree := &Tree{}
	if len(sc.nodes) <= 1 {
		return tree, nil
	}

	var links []*core.Link
	for l := range s.Links(core.TypeTrunk) {
		if sc.keep(l) {
			links = append(links, l)
		}
	}
	slices.SortStableFunc(links, func(a, b *core.Link) int {
		return cmp.Or(cmp.Compare(Weight(a), Weight(b)), cmp.Compare(a.ID, b.ID))
	})

	parent := make(map[core.NodeID]core.NodeID, len(sc.nodes))
	rank := make(map[core.NodeID]int, len(sc.nodes))
	for _, id := range sc.nodes {
		parent[id] = id
	}
	find := func(u core.NodeID) core.NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	for _, l := range links {
		ru, rv := find(l.Source), find(l.Destination)
		if ru == rv {
			continue
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		tree.Links = append(tree.Links, l.ID)
		tree.Cost += Weight(l)
		if len(tree.Links) == len(sc.nodes)-1 {
			break
		}
	}

	if len(tree.Links) < len(sc.nodes)-1 {
		return nil, ErrDisconnected
	}
	return tree, nil
}
