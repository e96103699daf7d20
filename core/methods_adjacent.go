// File: methods_adjacent.go
// Role: Adjacency-index queries (Adjacent, Neighbors, LinksBetween, IsConnected, Degree).
// Determinism:
//   - Every sequence is ordered by ascending LinkID across the requested layers.
// Notes:
//   - These are the only neighbor queries algorithms may use; nothing walks the
//     node or link catalogs to discover neighbors.

package core

import (
	"iter"
	"slices"
)

// layersOrDefault returns types, or every layer when types is empty.
func layersOrDefault(types []LinkType) []LinkType {
	if len(types) == 0 {
		return AllLinkTypes
	}
	return types
}

// incident returns the link ids incident to id in the given layers, sorted ascending.
func (s *Store) incident(id NodeID, types []LinkType) []LinkID {
	layers, ok := s.adjacency[id]
	if !ok {
		return nil
	}
	var out []LinkID
	for _, t := range layersOrDefault(types) {
		for lid := range layers[t] {
			out = append(out, lid)
		}
	}
	slices.Sort(out)
	return out
}

// Adjacent yields (neighbor, link) pairs of id in the given layers (all layers when none).
// Parallel links yield the same neighbor more than once; a loop yields the node itself.
//
// Complexity:
//   - Time O(d log d), Space O(d) for the ordering snapshot.
func (s *Store) Adjacent(id NodeID, types ...LinkType) iter.Seq2[*Node, *Link] {
	return func(yield func(*Node, *Link) bool) {
		for _, lid := range s.incident(id, types) {
			l := s.links[lid]
			nb := s.nodes[s.adjacency[id][l.Type][lid]]
			if !yield(nb, l) {
				return
			}
		}
	}
}

// Neighbors yields each distinct neighbor of id once, in order of first incident link.
func (s *Store) Neighbors(id NodeID, types ...LinkType) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		seen := make(map[NodeID]struct{})
		for nb := range s.Adjacent(id, types...) {
			if _, dup := seen[nb.ID]; dup {
				continue
			}
			seen[nb.ID] = struct{}{}
			if !yield(nb) {
				return
			}
		}
	}
}

// LinksBetween yields every link joining a and b, in either orientation.
func (s *Store) LinksBetween(a, b NodeID, types ...LinkType) iter.Seq[*Link] {
	return func(yield func(*Link) bool) {
		for nb, l := range s.Adjacent(a, types...) {
			if nb.ID != b {
				continue
			}
			if !yield(l) {
				return
			}
		}
	}
}

// IsConnected reports whether at least one link of layer typ joins a and b.
// Complexity: O(deg(a)) without allocation.
func (s *Store) IsConnected(a, b NodeID, typ LinkType) bool {
	for _, nb := range s.adjacency[a][typ] {
		if nb == b {
			return true
		}
	}
	return false
}

// Degree counts incident links of id in the given layers (all when none).
func (s *Store) Degree(id NodeID, types ...LinkType) int {
	layers, ok := s.adjacency[id]
	if !ok {
		return 0
	}
	d := 0
	for _, t := range layersOrDefault(types) {
		d += len(layers[t])
	}
	return d
}
