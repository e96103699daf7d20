// File: types.go
// Role: Node, Link, identifiers, closed kind enumerations, sentinel errors and options.
// Determinism:
//   - Identifiers are allocated from monotonically increasing counters and never reused.
// Concurrency:
//   - None. A Store is owned by a single control goroutine; callers must not
//     interleave conflicting mutations.

package core

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for topology store operations.
var (
	// ErrInvalidKind indicates a factory was given an unrecognized node kind or link type.
	ErrInvalidKind = errors.New("core: invalid kind")

	// ErrNodeNotFound indicates an operation referenced a node id that is not in the store.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrLinkNotFound indicates an operation referenced a link id that is not in the store.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrSelfLoopNotAllowed indicates source == destination for a link that forbids it.
	ErrSelfLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateName indicates a rename collided with an existing object of the same category.
	ErrDuplicateName = errors.New("core: duplicate name")

	// ErrEmptyName indicates a rename to the empty string.
	ErrEmptyName = errors.New("core: name is empty")
)

// NodeID is the stable internal key of a node. It never changes after creation.
type NodeID int

// LinkID is the stable internal key of a link.
type LinkID int

// ASID identifies an Autonomous System owned by the domain model.
type ASID int

// AreaID identifies an Area owned by the domain model.
type AreaID int

// Outcome tells whether a get-or-create factory allocated a new object.
type Outcome int

const (
	// Created means the factory allocated a fresh object.
	Created Outcome = iota
	// Existing means the name was already known and the stored object was returned.
	Existing
)

func (o Outcome) String() string {
	if o == Created {
		return "created"
	}
	return "existing"
}

// NodeKind is the closed enumeration of node subtypes.
type NodeKind int

const (
	KindRouter NodeKind = iota + 1
	KindSwitch
	KindOXC
	KindHost
	KindAntenna
	KindRegenerator
	KindSplitter
	KindCloud
	KindFirewall
	KindLoadBalancer
	KindServer
	KindSite
)

var nodeKindNames = map[NodeKind]string{
	KindRouter:       "router",
	KindSwitch:       "switch",
	KindOXC:          "oxc",
	KindHost:         "host",
	KindAntenna:      "antenna",
	KindRegenerator:  "regenerator",
	KindSplitter:     "splitter",
	KindCloud:        "cloud",
	KindFirewall:     "firewall",
	KindLoadBalancer: "load_balancer",
	KindServer:       "server",
	KindSite:         "site",
}

// String returns the lower-case name of the kind.
func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Valid reports whether k belongs to the enumeration.
func (k NodeKind) Valid() bool {
	_, ok := nodeKindNames[k]
	return ok
}

// ParseNodeKind maps a kind name to its NodeKind.
// Returns ErrInvalidKind for unknown names.
func ParseNodeKind(s string) (NodeKind, error) {
	for k, name := range nodeKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: node kind %q", ErrInvalidKind, s)
}

// LinkType is the closed enumeration of link layers. Each layer has its own
// bucket in the adjacency index.
type LinkType int

const (
	// TypeTrunk is a physical link.
	TypeTrunk LinkType = iota + 1
	// TypeRoute is a domain-scoped virtual link realized by a path of trunks.
	TypeRoute
	// TypeTraffic is a demand between two nodes.
	TypeTraffic
)

var linkTypeNames = map[LinkType]string{
	TypeTrunk:   "trunk",
	TypeRoute:   "route",
	TypeTraffic: "traffic",
}

// AllLinkTypes lists every layer in declaration order.
var AllLinkTypes = []LinkType{TypeTrunk, TypeRoute, TypeTraffic}

func (t LinkType) String() string {
	if s, ok := linkTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("LinkType(%d)", int(t))
}

// Valid reports whether t belongs to the enumeration.
func (t LinkType) Valid() bool {
	_, ok := linkTypeNames[t]
	return ok
}

// ParseLinkType maps a layer name to its LinkType.
func ParseLinkType(s string) (LinkType, error) {
	for t, name := range linkTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: link type %q", ErrInvalidKind, s)
}

// Membership maps an Autonomous System to the set of its Areas an object belongs to.
// An entry with an empty set means "member of the AS, no Area".
type Membership map[ASID]map[AreaID]struct{}

// InAS reports whether the object is a member of as.
func (m Membership) InAS(as ASID) bool {
	_, ok := m[as]
	return ok
}

// InArea reports whether the object is a member of area inside as.
func (m Membership) InArea(as ASID, area AreaID) bool {
	areas, ok := m[as]
	if !ok {
		return false
	}
	_, ok = areas[area]
	return ok
}

// Join records membership of as and, if given, of the listed areas.
func (m Membership) Join(as ASID, areas ...AreaID) {
	set, ok := m[as]
	if !ok {
		set = make(map[AreaID]struct{})
		m[as] = set
	}
	for _, a := range areas {
		set[a] = struct{}{}
	}
}

// LeaveArea drops area from the set under as, keeping the AS entry.
func (m Membership) LeaveArea(as ASID, area AreaID) {
	if set, ok := m[as]; ok {
		delete(set, area)
	}
}

// Leave pops the AS entry and returns the Areas the object was in, sorted.
func (m Membership) Leave(as ASID) []AreaID {
	set, ok := m[as]
	if !ok {
		return nil
	}
	delete(m, as)
	out := make([]AreaID, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// Ref is a typed reference to a store object.
type Ref struct {
	Node NodeID
	Link LinkID
	// IsLink selects which of Node/Link is meaningful.
	IsLink bool
}

// Object is implemented by *Node and *Link so that domain operations can take
// mixed node and link arguments.
type Object interface {
	Ref() Ref
	Memberships() Membership
}

// Node is a vertex of the topology.
type Node struct {
	// ID is assigned at creation and never changes.
	ID NodeID
	// Name is the user-facing unique key; see Store.RenameNode.
	Name string
	Kind NodeKind

	X, Y float64
	// VX, VY are layout scratch state; any layout run may reset them.
	VX, VY float64

	Domains Membership
}

// Ref implements Object. A nil node yields the zero Ref, which names no node.
func (n *Node) Ref() Ref {
	if n == nil {
		return Ref{}
	}
	return Ref{Node: n.ID}
}

// Memberships implements Object.
func (n *Node) Memberships() Membership {
	if n == nil {
		return nil
	}
	return n.Domains
}

// Link is an edge of the multigraph. Directional fields are named after the
// orientation Source→Destination (SD) and Destination→Source (DS).
type Link struct {
	ID          LinkID
	Name        string
	Type        LinkType
	Source      NodeID
	Destination NodeID

	CostSD, CostDS         int64
	CapacitySD, CapacityDS int64
	// FlowSD, FlowDS are mutated only by the flow solvers.
	FlowSD, FlowDS int64

	// Path is the ordered sequence of lower-layer links realizing a route or traffic link.
	Path []LinkID

	Domains Membership
}

// Ref implements Object. A nil link yields a Ref to link id 0, which never exists.
func (l *Link) Ref() Ref {
	if l == nil {
		return Ref{IsLink: true}
	}
	return Ref{Link: l.ID, IsLink: true}
}

// Memberships implements Object.
func (l *Link) Memberships() Membership {
	if l == nil {
		return nil
	}
	return l.Domains
}

// Other returns the endpoint opposite to n. If n is not an endpoint the source is returned.
func (l *Link) Other(n NodeID) NodeID {
	if n == l.Source {
		return l.Destination
	}
	return l.Source
}

// forward reports whether traversing from n follows the SD orientation.
func (l *Link) forward(n NodeID) bool { return n == l.Source }

// CostFrom returns the cost of traversing the link starting at n.
func (l *Link) CostFrom(n NodeID) int64 {
	if l.forward(n) {
		return l.CostSD
	}
	return l.CostDS
}

// CapacityFrom returns the capacity in the direction leaving n.
func (l *Link) CapacityFrom(n NodeID) int64 {
	if l.forward(n) {
		return l.CapacitySD
	}
	return l.CapacityDS
}

// FlowFrom returns the flow in the direction leaving n.
func (l *Link) FlowFrom(n NodeID) int64 {
	if l.forward(n) {
		return l.FlowSD
	}
	return l.FlowDS
}

// Residual returns capacity minus flow in the direction leaving n.
func (l *Link) Residual(n NodeID) int64 {
	return l.CapacityFrom(n) - l.FlowFrom(n)
}

// Push adds f to the flow leaving n and subtracts it from the opposite direction.
func (l *Link) Push(n NodeID, f int64) {
	if l.forward(n) {
		l.FlowSD += f
		l.FlowDS -= f
		return
	}
	l.FlowDS += f
	l.FlowSD -= f
}

// StoreOption configures a Store before first use.
type StoreOption func(s *Store)

// WithLoops permits self-loops for route and traffic links. Trunks never allow them.
func WithLoops() StoreOption {
	return func(s *Store) { s.allowLoops = true }
}

// NodeOption sets attributes of a node created by NodeFactory.
type NodeOption func(*Node)

// WithPosition places the node at (x, y).
func WithPosition(x, y float64) NodeOption {
	return func(n *Node) { n.X, n.Y = x, y }
}

// LinkOption sets attributes of a link created by LinkFactory.
type LinkOption func(*Link)

// WithCost sets the directional costs.
func WithCost(sd, ds int64) LinkOption {
	return func(l *Link) { l.CostSD, l.CostDS = sd, ds }
}

// WithCapacity sets the directional capacities.
func WithCapacity(sd, ds int64) LinkOption {
	return func(l *Link) { l.CapacitySD, l.CapacityDS = sd, ds }
}

// WithPath sets the lower-layer realization of a route or traffic link.
func WithPath(ids ...LinkID) LinkOption {
	return func(l *Link) { l.Path = append([]LinkID(nil), ids...) }
}

// Store owns every node and link, the name indexes and the adjacency index.
//
// adjacency[node][layer][link] = neighbor
type Store struct {
	allowLoops bool

	nextNodeID NodeID
	nextLinkID LinkID

	nodes map[NodeID]*Node
	links map[LinkID]*Link

	nodeNames map[string]NodeID
	linkNames map[string]LinkID

	adjacency map[NodeID]map[LinkType]map[LinkID]NodeID
}

// NewStore creates an empty Store. By default self-loops are rejected for every layer.
// Complexity: O(1)
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		nodes:     make(map[NodeID]*Node),
		links:     make(map[LinkID]*Link),
		nodeNames: make(map[string]NodeID),
		linkNames: make(map[string]LinkID),
		adjacency: make(map[NodeID]map[LinkType]map[LinkID]NodeID),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}
