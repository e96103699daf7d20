// File: methods_clone.go
// Role: Deep copies of a Store.
// Determinism:
//   - Clones carry the id counters, so ids allocated on a clone continue the
//     source sequence and never collide with copied ids.
// Notes:
//   - Membership maps are copied, but a clone is not known to any domain.Model.

package core

import "maps"

// CloneEmpty returns a Store with the same loop policy and copies of every
// node, but no links.
//
// Complexity: O(V).
func (s *Store) CloneEmpty() *Store {
	c := NewStore()
	c.allowLoops = s.allowLoops
	c.nextNodeID, c.nextLinkID = s.nextNodeID, s.nextLinkID
	for id, n := range s.nodes {
		cp := *n
		cp.Domains = n.Domains.clone()
		c.nodes[id] = &cp
		c.nodeNames[cp.Name] = id
		c.adjacency[id] = make(map[LinkType]map[LinkID]NodeID)
	}

	return c
}

// Clone returns a deep copy of s: nodes, links (with flows and paths) and
// the adjacency index. Mutating either store never affects the other.
//
// Complexity: O(V + E).
func (s *Store) Clone() *Store {
	c := s.CloneEmpty()
	for id, l := range s.links {
		cp := *l
		cp.Path = append([]LinkID(nil), l.Path...)
		cp.Domains = l.Domains.clone()
		c.links[id] = &cp
		c.linkNames[cp.Name] = id
		c.attachLink(&cp)
	}

	return c
}

func (m Membership) clone() Membership {
	out := make(Membership, len(m))
	for as, areas := range m {
		out[as] = maps.Clone(areas)
	}
	return out
}
