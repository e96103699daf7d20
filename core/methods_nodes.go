// File: methods_nodes.go
// Role: Node lifecycle (get-or-create factory, cascade removal, rename) and node queries.
// Determinism:
//   - Nodes() yields in ascending NodeID order.
//   - RemoveNode() returns removed links in ascending LinkID order.

package core

import (
	"fmt"
	"iter"
	"slices"
)

// NodeFactory returns the node called name, creating it if needed.
//
// Implementation:
//   - Stage 1: Reject kinds outside the enumeration (ErrInvalidKind).
//   - Stage 2: If name is known, return the stored node with Existing. Options are not applied.
//   - Stage 3: Allocate the next NodeID, derive "<kind><id>" when name is empty,
//     register the name and bootstrap the adjacency bucket.
//
// Behavior highlights:
//   - Idempotent by name: a second call returns the same *Node identity.
//   - The kind of an existing node is not checked against kind.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (s *Store) NodeFactory(kind NodeKind, name string, opts ...NodeOption) (*Node, Outcome, error) {
	if !kind.Valid() {
		return nil, Created, fmt.Errorf("%w: node kind %d", ErrInvalidKind, int(kind))
	}
	if name != "" {
		if id, ok := s.nodeNames[name]; ok {
			return s.nodes[id], Existing, nil
		}
	}

	s.nextNodeID++
	id := s.nextNodeID
	if name == "" {
		name = s.freeNodeName(kind, id)
	}

	n := &Node{ID: id, Name: name, Kind: kind, Domains: make(Membership)}
	for _, opt := range opts {
		opt(n)
	}
	s.nodes[id] = n
	s.nodeNames[name] = id
	s.adjacency[id] = make(map[LinkType]map[LinkID]NodeID)

	return n, Created, nil
}

// freeNodeName derives an automatic name that does not collide with a user-chosen one.
func (s *Store) freeNodeName(kind NodeKind, id NodeID) string {
	name := fmt.Sprintf("%s%d", kind, id)
	for suffix := 1; ; suffix++ {
		if _, taken := s.nodeNames[name]; !taken {
			return name
		}
		name = fmt.Sprintf("%s%d_%d", kind, id, suffix)
	}
}

// Node returns the node with the given id. The boolean is false when absent.
func (s *Store) Node(id NodeID) (*Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// NodeByName returns the node registered under name.
func (s *Store) NodeByName(name string) (*Node, bool) {
	id, ok := s.nodeNames[name]
	if !ok {
		return nil, false
	}
	return s.nodes[id], true
}

// HasNode reports whether id is in the store.
func (s *Store) HasNode(id NodeID) bool {
	_, ok := s.nodes[id]
	return ok
}

// RemoveNode deletes the node and every incident link of every layer.
//
// Implementation:
//   - Stage 1: Unknown id is a no-op returning nil.
//   - Stage 2: Collect incident links from the adjacency index (loops are seen once).
//   - Stage 3: Remove each link symmetrically, then the node and its name.
//
// Returns:
//   - []*Link: the removed links in ascending id order, so dependent structures
//     (domain pools, canvases) can clean up.
//
// Complexity:
//   - Time O(d log d) where d is the degree over all layers.
func (s *Store) RemoveNode(id NodeID) []*Link {
	n, ok := s.nodes[id]
	if !ok {
		return nil
	}

	var incident []LinkID
	for _, bucket := range s.adjacency[id] {
		for lid := range bucket {
			incident = append(incident, lid)
		}
	}
	slices.Sort(incident)
	incident = slices.Compact(incident)

	removed := make([]*Link, 0, len(incident))
	for _, lid := range incident {
		l := s.links[lid]
		s.detachLink(l)
		removed = append(removed, l)
	}

	delete(s.adjacency, id)
	delete(s.nodeNames, n.Name)
	delete(s.nodes, id)

	return removed
}

// RenameNode changes the user-facing name of a node, updating both index directions.
// Renaming to the current name is a no-op.
func (s *Store) RenameNode(id NodeID, name string) error {
	n, ok := s.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	if name == "" {
		return ErrEmptyName
	}
	if name == n.Name {
		return nil
	}
	if _, taken := s.nodeNames[name]; taken {
		return fmt.Errorf("%w: node %q", ErrDuplicateName, name)
	}
	delete(s.nodeNames, n.Name)
	s.nodeNames[name] = id
	n.Name = name

	return nil
}

// Nodes yields nodes in ascending id order, restricted to kinds when any are given.
// The sequence is lazy and restartable and does not mutate the store. The ids
// are snapshotted when ranging starts; nodes removed mid-range are skipped.
//
// Complexity:
//   - Time O(V log V) per traversal for the id ordering.
func (s *Store) Nodes(kinds ...NodeKind) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		ids := make([]NodeID, 0, len(s.nodes))
		for id, n := range s.nodes {
			if len(kinds) == 0 || slices.Contains(kinds, n.Kind) {
				ids = append(ids, id)
			}
		}
		slices.Sort(ids)
		for _, id := range ids {
			n, ok := s.nodes[id]
			if !ok {
				continue // removed during iteration
			}
			if !yield(n) {
				return
			}
		}
	}
}

// NodeIDs collects the ids of Nodes(kinds...).
func (s *Store) NodeIDs(kinds ...NodeKind) []NodeID {
	out := make([]NodeID, 0, len(s.nodes))
	for n := range s.Nodes(kinds...) {
		out = append(out, n.ID)
	}
	return out
}
