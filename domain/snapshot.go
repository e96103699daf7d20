// File: snapshot.go
// Role: Reconstructable AS/Area tuples keyed by node and link names, and
//       their YAML encoding.
// Notes:
//   - Import rebuilds the whole model: it resolves every name first and only
//     then clears and repopulates, so a failed Import leaves the model intact.

package domain

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netgraph/core"
)

// ASRecord describes one AS by member names.
type ASRecord struct {
	Name  string    `yaml:"name"`
	Kind  string    `yaml:"kind"`
	ID    core.ASID `yaml:"id"`
	Nodes []string  `yaml:"nodes,omitempty"`
	Links []string  `yaml:"links,omitempty"`
	Edges []string  `yaml:"edges,omitempty"`
}

// AreaRecord describes one Area by member names and owning AS name.
type AreaRecord struct {
	Name  string      `yaml:"name"`
	AS    string      `yaml:"as"`
	ID    core.AreaID `yaml:"id"`
	Nodes []string    `yaml:"nodes,omitempty"`
	Links []string    `yaml:"links,omitempty"`
}

// Snapshot is the full membership state of a Model.
type Snapshot struct {
	ASes  []ASRecord   `yaml:"autonomous_systems"`
	Areas []AreaRecord `yaml:"areas"`
}

func (m *Model) nodeNames(ids []core.NodeID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if n, ok := m.store.Node(id); ok {
			out = append(out, n.Name)
		}
	}
	return out
}

func (m *Model) linkNames(ids []core.LinkID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if l, ok := m.store.Link(id); ok {
			out = append(out, l.Name)
		}
	}
	return out
}

// Export returns the ASes and Areas in id order with members in id order.
func (m *Model) Export() Snapshot {
	var snap Snapshot
	for as := range m.ASes() {
		snap.ASes = append(snap.ASes, ASRecord{
			Name:  as.Name,
			Kind:  as.Kind.String(),
			ID:    as.ID,
			Nodes: m.nodeNames(as.NodeIDs()),
			Links: m.linkNames(as.LinkIDs()),
			Edges: m.nodeNames(as.EdgeIDs()),
		})
	}
	for _, id := range slices.Sorted(maps.Keys(m.areas)) {
		area := m.areas[id]
		snap.Areas = append(snap.Areas, AreaRecord{
			Name:  area.Name,
			AS:    m.ases[area.AS].Name,
			ID:    area.ID,
			Nodes: m.nodeNames(area.NodeIDs()),
			Links: m.linkNames(area.LinkIDs()),
		})
	}

	return snap
}

// resolved holds a record's members as store objects.
type resolved struct {
	nodes []*core.Node
	links []*core.Link
	edges []core.NodeID
}

func (m *Model) resolve(nodes, links, edges []string) (resolved, error) {
	var r resolved
	for _, name := range nodes {
		n, ok := m.store.NodeByName(name)
		if !ok {
			return r, fmt.Errorf("%w: node %q", ErrUnknownMember, name)
		}
		r.nodes = append(r.nodes, n)
	}
	for _, name := range links {
		l, ok := m.store.LinkByName(name)
		if !ok {
			return r, fmt.Errorf("%w: link %q", ErrUnknownMember, name)
		}
		r.links = append(r.links, l)
	}
	for _, name := range edges {
		n, ok := m.store.NodeByName(name)
		if !ok {
			return r, fmt.Errorf("%w: edge node %q", ErrUnknownMember, name)
		}
		r.edges = append(r.edges, n.ID)
	}
	return r, nil
}

// Import replaces the model's state with snap. Non-zero record ids are kept;
// records with id 0 get fresh ids after the largest imported one, in record
// order. An AS without a DefaultAreaName Area record gets a fresh one.
//
// Errors: core.ErrInvalidKind, core.ErrEmptyName, core.ErrDuplicateName (AS
// name, AS id, Area id or Area name within an AS repeated), ErrASNotFound (Area record naming an
// unknown AS), ErrUnknownMember. On error the model is unchanged.
func (m *Model) Import(snap Snapshot) error {
	kinds := make([]ASKind, len(snap.ASes))
	asMembers := make([]resolved, len(snap.ASes))
	byName := make(map[string]int, len(snap.ASes))
	asIDs := make(map[core.ASID]struct{}, len(snap.ASes))
	for i, rec := range snap.ASes {
		if rec.Name == "" {
			return core.ErrEmptyName
		}
		if _, dup := byName[rec.Name]; dup {
			return fmt.Errorf("%w: AS %q", core.ErrDuplicateName, rec.Name)
		}
		if rec.ID != 0 {
			if _, dup := asIDs[rec.ID]; dup {
				return fmt.Errorf("%w: AS id %d", core.ErrDuplicateName, rec.ID)
			}
			asIDs[rec.ID] = struct{}{}
		}
		k, err := ParseASKind(rec.Kind)
		if err != nil {
			return err
		}
		kinds[i] = k
		if asMembers[i], err = m.resolve(rec.Nodes, rec.Links, rec.Edges); err != nil {
			return fmt.Errorf("AS %s: %w", rec.Name, err)
		}
		byName[rec.Name] = i
	}
	areaMembers := make([]resolved, len(snap.Areas))
	areaIDs := make(map[core.AreaID]struct{}, len(snap.Areas))
	areaNames := make(map[[2]string]struct{}, len(snap.Areas))
	for i, rec := range snap.Areas {
		if rec.Name == "" {
			return core.ErrEmptyName
		}
		key := [2]string{rec.AS, rec.Name}
		if _, dup := areaNames[key]; dup {
			return fmt.Errorf("%w: area %s/%s", core.ErrDuplicateName, rec.AS, rec.Name)
		}
		areaNames[key] = struct{}{}
		if rec.ID != 0 {
			if _, dup := areaIDs[rec.ID]; dup {
				return fmt.Errorf("%w: area id %d", core.ErrDuplicateName, rec.ID)
			}
			areaIDs[rec.ID] = struct{}{}
		}
		if _, ok := byName[rec.AS]; !ok {
			return fmt.Errorf("%w: %q owns area %q", ErrASNotFound, rec.AS, rec.Name)
		}
		var err error
		if areaMembers[i], err = m.resolve(rec.Nodes, rec.Links, nil); err != nil {
			return fmt.Errorf("area %s/%s: %w", rec.AS, rec.Name, err)
		}
	}

	m.reset()
	for id := range asIDs {
		m.nextAS = max(m.nextAS, id)
	}
	for id := range areaIDs {
		m.nextArea = max(m.nextArea, id)
	}

	ids := make([]core.ASID, len(snap.ASes))
	for i, rec := range snap.ASes {
		id := rec.ID
		if id == 0 {
			m.nextAS++
			id = m.nextAS
		}
		as := newAS(id, rec.Name, kinds[i])
		m.ases[as.ID] = as
		m.asNames[as.Name] = as.ID
		ids[i] = as.ID
	}
	for i, rec := range snap.Areas {
		owner := m.ases[ids[byName[rec.AS]]]
		id := rec.ID
		if id == 0 {
			m.nextArea++
			id = m.nextArea
		}
		area := newArea(id, rec.Name, owner.ID)
		m.areas[area.ID] = area
		owner.Areas[area.Name] = area.ID
		if area.Name == DefaultAreaName {
			owner.Default = area.ID
		}
		for _, n := range areaMembers[i].nodes {
			join(owner, area, n)
		}
		for _, l := range areaMembers[i].links {
			join(owner, area, l)
		}
	}
	for i := range snap.ASes {
		owner := m.ases[ids[i]]
		if _, ok := owner.Areas[DefaultAreaName]; !ok {
			m.nextArea++
			def := newArea(m.nextArea, DefaultAreaName, owner.ID)
			m.areas[def.ID] = def
			owner.Areas[def.Name] = def.ID
			owner.Default = def.ID
		}
		for _, n := range asMembers[i].nodes {
			join(owner, nil, n)
		}
		for _, l := range asMembers[i].links {
			join(owner, nil, l)
		}
		for _, id := range asMembers[i].edges {
			if owner.HasNode(id) {
				owner.Edges[id] = struct{}{}
			}
		}
	}

	return nil
}

// reset drops every AS and clears the membership maps of pooled objects.
func (m *Model) reset() {
	for as := range m.ASes() {
		_ = m.DeleteAS(as.ID)
	}
	clear(m.ases)
	clear(m.asNames)
	clear(m.areas)
	m.nextAS, m.nextArea = 0, 0
}

// EncodeYAML writes the model snapshot to w.
func (m *Model) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m.Export()); err != nil {
		return fmt.Errorf("domain: failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// DecodeYAML reads a snapshot from r and imports it.
func (m *Model) DecodeYAML(r io.Reader) error {
	var snap Snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		return fmt.Errorf("domain: failed to parse YAML: %w", err)
	}
	return m.Import(snap)
}
