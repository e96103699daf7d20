// File: model.go
// Role: AS and Area lifecycle: explicit factories, lookups and deletion.
// Notes:
//   - No AS or Area is ever created implicitly by a membership call.

package domain

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/katalvlaran/netgraph/core"
)

// ASFactory returns the AS named name, creating it with a default Area
// (DefaultAreaName) when unknown. An existing AS is returned unchanged even
// if kind differs.
//
// Errors: core.ErrEmptyName, core.ErrInvalidKind.
func (m *Model) ASFactory(kind ASKind, name string) (*AS, core.Outcome, error) {
	if name == "" {
		return nil, core.Created, core.ErrEmptyName
	}
	if id, ok := m.asNames[name]; ok {
		return m.ases[id], core.Existing, nil
	}
	if !kind.Valid() {
		return nil, core.Created, fmt.Errorf("%w: AS kind %d", core.ErrInvalidKind, int(kind))
	}

	m.nextAS++
	as := newAS(m.nextAS, name, kind)
	m.ases[as.ID] = as
	m.asNames[name] = as.ID

	m.nextArea++
	def := newArea(m.nextArea, DefaultAreaName, as.ID)
	m.areas[def.ID] = def
	as.Areas[def.Name] = def.ID
	as.Default = def.ID

	return as, core.Created, nil
}

// AS returns the AS with the given id.
func (m *Model) AS(id core.ASID) (*AS, bool) {
	as, ok := m.ases[id]
	return as, ok
}

// ASByName returns the AS with the given name.
func (m *Model) ASByName(name string) (*AS, bool) {
	id, ok := m.asNames[name]
	if !ok {
		return nil, false
	}
	return m.ases[id], true
}

// ASes yields every AS in id order.
func (m *Model) ASes() iter.Seq[*AS] {
	return func(yield func(*AS) bool) {
		for _, id := range slices.Sorted(maps.Keys(m.ases)) {
			as, ok := m.ases[id]
			if !ok {
				continue
			}
			if !yield(as) {
				return
			}
		}
	}
}

// ASCount returns the number of ASes.
func (m *Model) ASCount() int { return len(m.ases) }

// DeleteAS removes every member from the AS, drops its Areas and forgets it.
func (m *Model) DeleteAS(id core.ASID) error {
	as, ok := m.ases[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrASNotFound, id)
	}
	for nid := range as.Nodes {
		if n, ok := m.store.Node(nid); ok {
			n.Domains.Leave(id)
		}
	}
	for lid := range as.Links {
		if l, ok := m.store.Link(lid); ok {
			l.Domains.Leave(id)
		}
	}
	for _, aid := range as.Areas {
		delete(m.areas, aid)
	}
	delete(m.ases, id)
	delete(m.asNames, as.Name)

	return nil
}

// AreaFactory returns the Area named name inside as, creating it when unknown.
//
// Errors: ErrASNotFound, core.ErrEmptyName.
func (m *Model) AreaFactory(as core.ASID, name string) (*Area, core.Outcome, error) {
	owner, ok := m.ases[as]
	if !ok {
		return nil, core.Created, fmt.Errorf("%w: %d", ErrASNotFound, as)
	}
	if name == "" {
		return nil, core.Created, core.ErrEmptyName
	}
	if id, ok := owner.Areas[name]; ok {
		return m.areas[id], core.Existing, nil
	}

	m.nextArea++
	area := newArea(m.nextArea, name, as)
	m.areas[area.ID] = area
	owner.Areas[name] = area.ID

	return area, core.Created, nil
}

// Area returns the Area with the given id.
func (m *Model) Area(id core.AreaID) (*Area, bool) {
	a, ok := m.areas[id]
	return a, ok
}

// AreaByName returns the Area named name inside as.
func (m *Model) AreaByName(as core.ASID, name string) (*Area, bool) {
	owner, ok := m.ases[as]
	if !ok {
		return nil, false
	}
	id, ok := owner.Areas[name]
	if !ok {
		return nil, false
	}
	return m.areas[id], true
}

// Areas yields the Areas of as in id order; nothing for an unknown AS.
func (m *Model) Areas(as core.ASID) iter.Seq[*Area] {
	return func(yield func(*Area) bool) {
		owner, ok := m.ases[as]
		if !ok {
			return
		}
		for _, id := range slices.Sorted(maps.Values(owner.Areas)) {
			if !yield(m.areas[id]) {
				return
			}
		}
	}
}

// DeleteArea drops the named Area. Members stay in the AS.
//
// Errors: ErrASNotFound, ErrAreaNotFound, ErrDefaultArea.
func (m *Model) DeleteArea(as core.ASID, name string) error {
	owner, ok := m.ases[as]
	if !ok {
		return fmt.Errorf("%w: %d", ErrASNotFound, as)
	}
	id, ok := owner.Areas[name]
	if !ok {
		return fmt.Errorf("%w: %q in %s", ErrAreaNotFound, name, owner.Name)
	}
	if id == owner.Default {
		return ErrDefaultArea
	}
	area := m.areas[id]
	for nid := range area.Nodes {
		if n, ok := m.store.Node(nid); ok {
			n.Domains.LeaveArea(as, id)
		}
	}
	for lid := range area.Links {
		if l, ok := m.store.Link(lid); ok {
			l.Domains.LeaveArea(as, id)
		}
	}
	delete(owner.Areas, name)
	delete(m.areas, id)

	return nil
}
