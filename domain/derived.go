// File: derived.go
// Role: Views recomputed from AS membership and the trunk layer, plus the
//       helpers that write them back, and the invariant checker.

package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/netgraph/core"
)

// FindEdgeNodes returns the member nodes of as having at least one trunk whose
// other endpoint is outside the AS node pool, sorted by id. It is not stored.
//
// Complexity: O(Σ deg(n)) over member nodes.
func (m *Model) FindEdgeNodes(as core.ASID) ([]core.NodeID, error) {
	owner, err := m.lookup(as)
	if err != nil {
		return nil, err
	}
	var out []core.NodeID
	for _, id := range owner.NodeIDs() {
		for nb := range m.store.Neighbors(id, core.TypeTrunk) {
			if !owner.HasNode(nb.ID) {
				out = append(out, id)
				break
			}
		}
	}

	return out, nil
}

// FindDomainLinks returns the trunks whose two endpoints are both member
// nodes of as, sorted by id.
func (m *Model) FindDomainLinks(as core.ASID) ([]core.LinkID, error) {
	owner, err := m.lookup(as)
	if err != nil {
		return nil, err
	}
	seen := make(map[core.LinkID]struct{})
	for id := range owner.Nodes {
		for nb, l := range m.store.Adjacent(id, core.TypeTrunk) {
			if owner.HasNode(nb.ID) {
				seen[l.ID] = struct{}{}
			}
		}
	}

	return slices.Sorted(maps.Keys(seen)), nil
}

// PopulateDefaultArea adds every member node and every domain link of as to
// the AS and its default Area.
func (m *Model) PopulateDefaultArea(as core.ASID) error {
	owner, err := m.lookup(as)
	if err != nil {
		return err
	}
	links, err := m.FindDomainLinks(as)
	if err != nil {
		return err
	}
	def := m.areas[owner.Default]
	for _, id := range owner.NodeIDs() {
		if n, ok := m.store.Node(id); ok {
			join(owner, def, n)
		}
	}
	for _, id := range links {
		if l, ok := m.store.Link(id); ok {
			join(owner, def, l)
		}
	}

	return nil
}

// AutoEdges replaces the edge subset of as with FindEdgeNodes.
func (m *Model) AutoEdges(as core.ASID) error {
	owner, err := m.lookup(as)
	if err != nil {
		return err
	}
	edges, err := m.FindEdgeNodes(as)
	if err != nil {
		return err
	}
	clear(owner.Edges)
	for _, id := range edges {
		owner.Edges[id] = struct{}{}
	}

	return nil
}

// Validate checks that every Area is a subset of its AS, Edges ⊆ Nodes,
// every pooled object still exists, and that object membership maps mirror
// the pools in both directions. All findings are joined; each wraps ErrInvariant.
func (m *Model) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...)))
	}

	for as := range m.ASes() {
		if _, ok := as.Areas[DefaultAreaName]; !ok || m.areas[as.Default] == nil {
			bad("AS %s has no default area", as.Name)
		}
		for id := range as.Edges {
			if !as.HasNode(id) {
				bad("AS %s edge %d is not a member", as.Name, id)
			}
		}
		for id := range as.Nodes {
			n, ok := m.store.Node(id)
			if !ok {
				bad("AS %s holds removed node %d", as.Name, id)
				continue
			}
			if !n.Domains.InAS(as.ID) {
				bad("node %s misses AS %s in its membership", n.Name, as.Name)
			}
		}
		for id := range as.Links {
			l, ok := m.store.Link(id)
			if !ok {
				bad("AS %s holds removed link %d", as.Name, id)
				continue
			}
			if !l.Domains.InAS(as.ID) {
				bad("link %s misses AS %s in its membership", l.Name, as.Name)
			}
		}
		for area := range m.Areas(as.ID) {
			for id := range area.Nodes {
				if !as.HasNode(id) {
					bad("area %s/%s node %d not in AS", as.Name, area.Name, id)
				} else if n, ok := m.store.Node(id); ok && !n.Domains.InArea(as.ID, area.ID) {
					bad("node %s misses area %s/%s in its membership", n.Name, as.Name, area.Name)
				}
			}
			for id := range area.Links {
				if !as.HasLink(id) {
					bad("area %s/%s link %d not in AS", as.Name, area.Name, id)
				} else if l, ok := m.store.Link(id); ok && !l.Domains.InArea(as.ID, area.ID) {
					bad("link %s misses area %s/%s in its membership", l.Name, as.Name, area.Name)
				}
			}
		}
	}

	for n := range m.store.Nodes() {
		m.checkMirror(n.Name, n.Domains, core.Ref{Node: n.ID}, bad)
	}
	for l := range m.store.Links() {
		m.checkMirror(l.Name, l.Domains, core.Ref{Link: l.ID, IsLink: true}, bad)
	}

	return errors.Join(errs...)
}

// checkMirror verifies that every entry of an object's membership map is
// backed by the corresponding pools.
func (m *Model) checkMirror(name string, mem core.Membership, ref core.Ref, bad func(string, ...any)) {
	for asID, areas := range mem {
		owner, ok := m.ases[asID]
		if !ok {
			bad("%s lists unknown AS %d", name, asID)
			continue
		}
		if ref.IsLink && !owner.HasLink(ref.Link) || !ref.IsLink && !owner.HasNode(ref.Node) {
			bad("%s lists AS %s but is not pooled", name, owner.Name)
		}
		for aid := range areas {
			area, ok := m.areas[aid]
			if !ok || area.AS != asID {
				bad("%s lists area %d outside AS %s", name, aid, owner.Name)
				continue
			}
			if ref.IsLink {
				if _, in := area.Links[ref.Link]; !in {
					bad("%s lists area %s/%s but is not pooled", name, owner.Name, area.Name)
				}
			} else if _, in := area.Nodes[ref.Node]; !in {
				bad("%s lists area %s/%s but is not pooled", name, owner.Name, area.Name)
			}
		}
	}
}
