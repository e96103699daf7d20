// File: methods_links.go
// Role: Link lifecycle (get-or-create factory, symmetric removal, rename) and link queries.
// Determinism:
//   - Links() yields in ascending LinkID order.

package core

import (
	"fmt"
	"iter"
	"slices"
)

// LinkFactory returns the link called name, creating it between src and dst if needed.
//
// Implementation:
//   - Stage 1: Reject unknown layers (ErrInvalidKind).
//   - Stage 2: If name is known, return the stored link with Existing.
//   - Stage 3: Validate both endpoints (ErrNodeNotFound) and the loop policy
//     (ErrSelfLoopNotAllowed; trunks never loop, other layers only WithLoops).
//   - Stage 4: Allocate the id, apply options, register the name and insert
//     the link into the adjacency buckets of both endpoints.
//
// Behavior highlights:
//   - Parallel links between the same endpoints are allowed (multigraph).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (s *Store) LinkFactory(typ LinkType, name string, src, dst NodeID, opts ...LinkOption) (*Link, Outcome, error) {
	if !typ.Valid() {
		return nil, Created, fmt.Errorf("%w: link type %d", ErrInvalidKind, int(typ))
	}
	if name != "" {
		if id, ok := s.linkNames[name]; ok {
			return s.links[id], Existing, nil
		}
	}
	if !s.HasNode(src) {
		return nil, Created, fmt.Errorf("%w: source %d", ErrNodeNotFound, src)
	}
	if !s.HasNode(dst) {
		return nil, Created, fmt.Errorf("%w: destination %d", ErrNodeNotFound, dst)
	}
	if src == dst && (typ == TypeTrunk || !s.allowLoops) {
		return nil, Created, fmt.Errorf("%w: %s on node %d", ErrSelfLoopNotAllowed, typ, src)
	}

	s.nextLinkID++
	id := s.nextLinkID
	if name == "" {
		name = s.freeLinkName(typ, id)
	}

	l := &Link{
		ID:          id,
		Name:        name,
		Type:        typ,
		Source:      src,
		Destination: dst,
		CostSD:      1,
		CostDS:      1,
		Domains:     make(Membership),
	}
	for _, opt := range opts {
		opt(l)
	}
	s.links[id] = l
	s.linkNames[name] = id
	s.attachLink(l)

	return l, Created, nil
}

func (s *Store) freeLinkName(typ LinkType, id LinkID) string {
	name := fmt.Sprintf("%s%d", typ, id)
	for suffix := 1; ; suffix++ {
		if _, taken := s.linkNames[name]; !taken {
			return name
		}
		name = fmt.Sprintf("%s%d_%d", typ, id, suffix)
	}
}

// attachLink registers l at both endpoints. A loop occupies a single entry.
func (s *Store) attachLink(l *Link) {
	s.bucket(l.Source, l.Type)[l.ID] = l.Destination
	s.bucket(l.Destination, l.Type)[l.ID] = l.Source
}

// detachLink removes l from both endpoints and from the link catalog.
func (s *Store) detachLink(l *Link) {
	for _, end := range [2]NodeID{l.Source, l.Destination} {
		if layers, ok := s.adjacency[end]; ok {
			delete(layers[l.Type], l.ID)
			if len(layers[l.Type]) == 0 {
				delete(layers, l.Type)
			}
		}
	}
	delete(s.linkNames, l.Name)
	delete(s.links, l.ID)
}

// bucket returns adjacency[n][typ], creating it on first use.
func (s *Store) bucket(n NodeID, typ LinkType) map[LinkID]NodeID {
	layers, ok := s.adjacency[n]
	if !ok {
		layers = make(map[LinkType]map[LinkID]NodeID)
		s.adjacency[n] = layers
	}
	b, ok := layers[typ]
	if !ok {
		b = make(map[LinkID]NodeID)
		layers[typ] = b
	}
	return b
}

// Link returns the link with the given id.
func (s *Store) Link(id LinkID) (*Link, bool) {
	l, ok := s.links[id]
	return l, ok
}

// LinkByName returns the link registered under name.
func (s *Store) LinkByName(name string) (*Link, bool) {
	id, ok := s.linkNames[name]
	if !ok {
		return nil, false
	}
	return s.links[id], true
}

// HasLink reports whether id is in the store.
func (s *Store) HasLink(id LinkID) bool {
	_, ok := s.links[id]
	return ok
}

// RemoveLink deletes the link from both endpoints' adjacency and from the catalog.
// It reports whether anything was removed; unknown ids are a no-op.
// Complexity: O(1).
func (s *Store) RemoveLink(id LinkID) bool {
	l, ok := s.links[id]
	if !ok {
		return false
	}
	s.detachLink(l)
	return true
}

// RenameLink changes the user-facing name of a link.
func (s *Store) RenameLink(id LinkID, name string) error {
	l, ok := s.links[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrLinkNotFound, id)
	}
	if name == "" {
		return ErrEmptyName
	}
	if name == l.Name {
		return nil
	}
	if _, taken := s.linkNames[name]; taken {
		return fmt.Errorf("%w: link %q", ErrDuplicateName, name)
	}
	delete(s.linkNames, l.Name)
	s.linkNames[name] = id
	l.Name = name

	return nil
}

// Links yields links in ascending id order, restricted to types when any are given.
// Lazy and restartable, like Nodes.
func (s *Store) Links(types ...LinkType) iter.Seq[*Link] {
	return func(yield func(*Link) bool) {
		ids := make([]LinkID, 0, len(s.links))
		for id, l := range s.links {
			if len(types) == 0 || slices.Contains(types, l.Type) {
				ids = append(ids, id)
			}
		}
		slices.Sort(ids)
		for _, id := range ids {
			l, ok := s.links[id]
			if !ok {
				continue // removed during iteration
			}
			if !yield(l) {
				return
			}
		}
	}
}
