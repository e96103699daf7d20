// File: types.go
// Role: Autonomous System and Area records, closed AS kind enumeration, sentinel errors.
// Determinism:
//   - ASID and AreaID are allocated from increasing counters; all pool
//     accessors return ids sorted ascending.
// Concurrency:
//   - None. A Model shares the single-owner discipline of its core.Store.

package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/netgraph/core"
)

// DefaultAreaName is the name of the Area every AS is created with.
const DefaultAreaName = "Backbone"

// Sentinel errors for domain model operations.
var (
	// ErrASNotFound indicates an operation referenced an unknown AS.
	ErrASNotFound = errors.New("domain: AS not found")

	// ErrAreaNotFound indicates an operation referenced an unknown Area.
	ErrAreaNotFound = errors.New("domain: area not found")

	// ErrDefaultArea indicates an attempt to delete an AS's default Area.
	ErrDefaultArea = errors.New("domain: default area cannot be deleted")

	// ErrInvariant is wrapped by every Validate finding.
	ErrInvariant = errors.New("domain: invariant violated")

	// ErrUnknownMember indicates an imported record names a node or link absent from the store.
	ErrUnknownMember = errors.New("domain: unknown member")
)

// ASKind is the protocol family tag of an AS. It does not change the graph
// structure; callers use it to choose solver variants.
type ASKind int

const (
	KindRIP ASKind = iota + 1
	KindOSPF
	KindISIS
	KindBGP
	KindSTP
	KindVLAN
)

var asKindNames = map[ASKind]string{
	KindRIP:  "rip",
	KindOSPF: "ospf",
	KindISIS: "isis",
	KindBGP:  "bgp",
	KindSTP:  "stp",
	KindVLAN: "vlan",
}

func (k ASKind) String() string {
	if s, ok := asKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ASKind(%d)", int(k))
}

// Valid reports whether k belongs to the enumeration.
func (k ASKind) Valid() bool {
	_, ok := asKindNames[k]
	return ok
}

// ParseASKind maps a protocol name to its ASKind; core.ErrInvalidKind otherwise.
func ParseASKind(s string) (ASKind, error) {
	for k, name := range asKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: AS kind %q", core.ErrInvalidKind, s)
}

// AS is an Autonomous System: member pools of store ids, a designated edge
// subset of its nodes, and its Areas by name.
type AS struct {
	ID   core.ASID
	Name string
	Kind ASKind

	Nodes map[core.NodeID]struct{}
	Links map[core.LinkID]struct{}
	// Edges ⊆ Nodes: ingress/egress points for domain routing.
	Edges map[core.NodeID]struct{}

	Areas   map[string]core.AreaID
	Default core.AreaID
}

// HasNode reports whether id is in the node pool.
func (a *AS) HasNode(id core.NodeID) bool {
	_, ok := a.Nodes[id]
	return ok
}

// HasLink reports whether id is in the link pool.
func (a *AS) HasLink(id core.LinkID) bool {
	_, ok := a.Links[id]
	return ok
}

// IsEdge reports whether id is a designated edge node.
func (a *AS) IsEdge(id core.NodeID) bool {
	_, ok := a.Edges[id]
	return ok
}

// NodeIDs returns the node pool sorted.
func (a *AS) NodeIDs() []core.NodeID { return slices.Sorted(maps.Keys(a.Nodes)) }

// LinkIDs returns the link pool sorted.
func (a *AS) LinkIDs() []core.LinkID { return slices.Sorted(maps.Keys(a.Links)) }

// EdgeIDs returns the edge subset sorted.
func (a *AS) EdgeIDs() []core.NodeID { return slices.Sorted(maps.Keys(a.Edges)) }

// Area is a named subset of its AS's pools.
type Area struct {
	ID    core.AreaID
	Name  string
	AS    core.ASID
	Nodes map[core.NodeID]struct{}
	Links map[core.LinkID]struct{}
}

// NodeIDs returns the node pool sorted.
func (a *Area) NodeIDs() []core.NodeID { return slices.Sorted(maps.Keys(a.Nodes)) }

// LinkIDs returns the link pool sorted.
func (a *Area) LinkIDs() []core.LinkID { return slices.Sorted(maps.Keys(a.Links)) }

// Model owns every AS and Area layered over one core.Store.
type Model struct {
	store *core.Store

	nextAS   core.ASID
	nextArea core.AreaID

	ases    map[core.ASID]*AS
	asNames map[string]core.ASID
	areas   map[core.AreaID]*Area
}

// NewModel creates an empty Model over s.
func NewModel(s *core.Store) *Model {
	return &Model{
		store:   s,
		ases:    make(map[core.ASID]*AS),
		asNames: make(map[string]core.ASID),
		areas:   make(map[core.AreaID]*Area),
	}
}

// Store returns the underlying topology store.
func (m *Model) Store() *core.Store { return m.store }

func newArea(id core.AreaID, name string, as core.ASID) *Area {
	return &Area{
		ID:    id,
		Name:  name,
		AS:    as,
		Nodes: make(map[core.NodeID]struct{}),
		Links: make(map[core.LinkID]struct{}),
	}
}

func newAS(id core.ASID, name string, kind ASKind) *AS {
	return &AS{
		ID:    id,
		Name:  name,
		Kind:  kind,
		Nodes: make(map[core.NodeID]struct{}),
		Links: make(map[core.LinkID]struct{}),
		Edges: make(map[core.NodeID]struct{}),
		Areas: make(map[string]core.AreaID),
	}
}
