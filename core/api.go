// File: api.go
// Role: Thin read-only facade and bulk maintenance over the store (counts, stats, resets).

package core

// StoreStats is a snapshot of catalog sizes per category and layer.
type StoreStats struct {
	NodeCount    int
	LinkCount    int
	TrunkCount   int
	RouteCount   int
	TrafficCount int
	AllowsLoops  bool
}

// NodeCount returns the number of nodes. O(1).
func (s *Store) NodeCount() int { return len(s.nodes) }

// LinkCount returns the number of links across all layers. O(1).
func (s *Store) LinkCount() int { return len(s.links) }

// Looped reports whether route and traffic self-loops are permitted.
func (s *Store) Looped() bool { return s.allowLoops }

// Stats produces a deterministic snapshot of the store's sizes.
// Complexity: O(E).
func (s *Store) Stats() StoreStats {
	st := StoreStats{
		NodeCount:   len(s.nodes),
		LinkCount:   len(s.links),
		AllowsLoops: s.allowLoops,
	}
	for _, l := range s.links {
		switch l.Type {
		case TypeTrunk:
			st.TrunkCount++
		case TypeRoute:
			st.RouteCount++
		case TypeTraffic:
			st.TrafficCount++
		}
	}

	return st
}

// ResetFlows zeroes both flow fields of every link. Flow solvers never do this themselves.
func (s *Store) ResetFlows() {
	for _, l := range s.links {
		l.FlowSD, l.FlowDS = 0, 0
	}
}

// ResetVelocities zeroes the layout scratch velocity of the given nodes,
// or of every node when none are given.
func (s *Store) ResetVelocities(ids ...NodeID) {
	if len(ids) == 0 {
		for _, n := range s.nodes {
			n.VX, n.VY = 0, 0
		}
		return
	}
	for _, id := range ids {
		if n, ok := s.nodes[id]; ok {
			n.VX, n.VY = 0, 0
		}
	}
}
