// File: membership.go
// Role: Membership transitions Unassigned → MemberOfAS → MemberOfArea and back.
// Notes:
//   - Every transition updates the AS/Area pools and the object's own
//     Membership map together.
//   - Removing something that is not present, or touching an unknown Area,
//     is a no-op. Only an unknown AS is an error.

package domain

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// lookup returns the AS or a wrapped ErrASNotFound.
func (m *Model) lookup(as core.ASID) (*AS, error) {
	owner, ok := m.ases[as]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrASNotFound, as)
	}
	return owner, nil
}

// absent reports whether obj is nil, including a nil *core.Node or
// *core.Link held in the interface, as returned by a failed lookup.
func absent(obj core.Object) bool {
	switch v := obj.(type) {
	case nil:
		return true
	case *core.Node:
		return v == nil
	case *core.Link:
		return v == nil
	}
	return false
}

// live reports whether obj is still owned by the store.
func (m *Model) live(obj core.Object) bool {
	if absent(obj) {
		return false
	}
	ref := obj.Ref()
	if ref.IsLink {
		return m.store.HasLink(ref.Link)
	}
	return m.store.HasNode(ref.Node)
}

// inAS reports whether obj is in the pools of as.
func inAS(as *AS, obj core.Object) bool {
	ref := obj.Ref()
	if ref.IsLink {
		return as.HasLink(ref.Link)
	}
	return as.HasNode(ref.Node)
}

// join inserts obj into as and, when area is non-nil, into area.
func join(as *AS, area *Area, obj core.Object) {
	ref := obj.Ref()
	if ref.IsLink {
		as.Links[ref.Link] = struct{}{}
	} else {
		as.Nodes[ref.Node] = struct{}{}
	}
	if area == nil {
		obj.Memberships().Join(as.ID)
		return
	}
	if ref.IsLink {
		area.Links[ref.Link] = struct{}{}
	} else {
		area.Nodes[ref.Node] = struct{}{}
	}
	obj.Memberships().Join(as.ID, area.ID)
}

// dropFromArea removes ref from area's pools.
func dropFromArea(area *Area, ref core.Ref) {
	if ref.IsLink {
		delete(area.Links, ref.Link)
		return
	}
	delete(area.Nodes, ref.Node)
}

// AddToAS inserts objs into as and into the Area named area.
// An empty area selects the default Area; a name the AS does not know
// inserts into the AS only. Objects no longer in the store are skipped.
func (m *Model) AddToAS(as core.ASID, area string, objs ...core.Object) error {
	owner, err := m.lookup(as)
	if err != nil {
		return err
	}
	target := m.areas[owner.Default]
	if area != "" {
		target = nil
		if id, ok := owner.Areas[area]; ok {
			target = m.areas[id]
		}
	}
	for _, obj := range objs {
		if !m.live(obj) {
			continue
		}
		join(owner, target, obj)
	}

	return nil
}

// RemoveFromAS pops as from each object's membership, removes the object
// from every Area of as, from the AS pools and from Edges.
func (m *Model) RemoveFromAS(as core.ASID, objs ...core.Object) error {
	owner, err := m.lookup(as)
	if err != nil {
		return err
	}
	for _, obj := range objs {
		if absent(obj) {
			continue
		}
		m.evict(owner, obj.Ref())
		obj.Memberships().Leave(as)
	}

	return nil
}

// evict removes ref from every pool of owner.
func (m *Model) evict(owner *AS, ref core.Ref) {
	for _, aid := range owner.Areas {
		dropFromArea(m.areas[aid], ref)
	}
	if ref.IsLink {
		delete(owner.Links, ref.Link)
		return
	}
	delete(owner.Nodes, ref.Node)
	delete(owner.Edges, ref.Node)
}

// AddToArea adds objs that are already members of as to the named Area.
// Non-members and unknown Areas are ignored.
func (m *Model) AddToArea(as core.ASID, area string, objs ...core.Object) error {
	owner, err := m.lookup(as)
	if err != nil {
		return err
	}
	id, ok := owner.Areas[area]
	if !ok {
		return nil
	}
	target := m.areas[id]
	for _, obj := range objs {
		if absent(obj) || !inAS(owner, obj) {
			continue
		}
		join(owner, target, obj)
	}

	return nil
}

// RemoveFromArea removes objs from the named Area; they stay in the AS.
func (m *Model) RemoveFromArea(as core.ASID, area string, objs ...core.Object) error {
	owner, err := m.lookup(as)
	if err != nil {
		return err
	}
	id, ok := owner.Areas[area]
	if !ok {
		return nil
	}
	target := m.areas[id]
	for _, obj := range objs {
		if absent(obj) {
			continue
		}
		dropFromArea(target, obj.Ref())
		obj.Memberships().LeaveArea(as, id)
	}

	return nil
}

// AddToEdges designates member nodes as edge nodes of as. Non-members are ignored.
func (m *Model) AddToEdges(as core.ASID, nodes ...core.NodeID) error {
	owner, err := m.lookup(as)
	if err != nil {
		return err
	}
	for _, id := range nodes {
		if owner.HasNode(id) {
			owner.Edges[id] = struct{}{}
		}
	}

	return nil
}

// RemoveFromEdges clears the edge designation; membership is unchanged.
func (m *Model) RemoveFromEdges(as core.ASID, nodes ...core.NodeID) error {
	owner, err := m.lookup(as)
	if err != nil {
		return err
	}
	for _, id := range nodes {
		delete(owner.Edges, id)
	}

	return nil
}

// Detach forgets store objects that have already been removed from the
// store, typically the node and the links returned by core.Store.RemoveNode.
func (m *Model) Detach(nodes []core.NodeID, links []core.LinkID) {
	for _, owner := range m.ases {
		for _, id := range nodes {
			m.evict(owner, core.Ref{Node: id})
		}
		for _, id := range links {
			m.evict(owner, core.Ref{Link: id, IsLink: true})
		}
	}
}
