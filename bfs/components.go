package bfs

import (
	"slices"

	"github.com/katalvlaran/netgraph/core"
)

// Component is one connected part of the trunk layer, members sorted by id.
type Component []core.NodeID

// ConnectedComponents partitions every node of s by trunk reachability.
// Components are ordered by their smallest member id; isolated nodes form
// singleton components.
//
// Complexity: O(V + E) plus the sort of each component.
func ConnectedComponents(s *core.Store) []Component {
	if s == nil {
		return nil
	}
	seen := make(map[core.NodeID]bool, s.NodeCount())
	var out []Component
	for _, id := range s.NodeIDs() {
		if seen[id] {
			continue
		}
		res, err := BFS(s, id)
		if err != nil {
			// only reachable on a missing start, which NodeIDs rules out
			continue
		}
		comp := Component(slices.Clone(res.Order))
		for _, m := range comp {
			seen[m] = true
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out
}

// Clusters partitions nodes into groups of at most size members by repeated
// trunk BFS from the smallest unassigned id. Expansion never leaves the given
// subset. Unknown ids are ignored; size <= 0 puts every node in its own cluster.
func Clusters(s *core.Store, nodes []core.NodeID, size int) [][]core.NodeID {
	if s == nil || len(nodes) == 0 {
		return nil
	}
	if size <= 0 {
		size = 1
	}
	ids := slices.Clone(nodes)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	pending := make(map[core.NodeID]bool, len(ids))
	for _, id := range ids {
		if s.HasNode(id) {
			pending[id] = true
		}
	}

	var out [][]core.NodeID
	for _, id := range ids {
		if !pending[id] {
			continue
		}
		res, err := BFS(s, id,
			WithMaxVisited(size),
			WithFilterNeighbor(func(_, nb core.NodeID, _ *core.Link) bool { return pending[nb] }),
		)
		if err != nil {
			continue
		}
		for _, m := range res.Order {
			delete(pending, m)
		}
		out = append(out, res.Order)
	}

	return out
}
