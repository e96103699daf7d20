package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/netgraph/core"
)

// ErrNilGraph indicates a nil store.
var ErrNilGraph = errors.New("prim_kruskal: store is nil")

// ErrRootNotFound indicates Prim was given a root outside the node set.
var ErrRootNotFound = errors.New("prim_kruskal: root not in node set")

// ErrDisconnected indicates no tree spans the node set.
var ErrDisconnected = errors.New("prim_kruskal: node set is disconnected")

// ErrUnknownMethod indicates Compute was given an unknown method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm.
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm.
const MethodKruskal = "kruskal"

// MSTOptions configures a spanning-tree computation.
//
//	Method     - MethodPrim or MethodKruskal (Compute only).
//	Root       - start node for Prim; ignored by Kruskal.
//	Nodes      - node set; nil means every node of the store.
//	LinkFilter - optional predicate on candidate trunks.
type MSTOptions struct {
	Method     string
	Root       core.NodeID
	Nodes      []core.NodeID
	LinkFilter func(*core.Link) bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod selects the algorithm used by Compute.
func WithMethod(m string) Option {
	return func(o *MSTOptions) { o.Method = m }
}

// WithRoot sets the start node used by Compute with MethodPrim.
func WithRoot(root core.NodeID) Option {
	return func(o *MSTOptions) { o.Root = root }
}

// WithNodes restricts the tree to the given node set.
func WithNodes(ids []core.NodeID) Option {
	return func(o *MSTOptions) { o.Nodes = ids }
}

// WithLinkFilter restricts candidate trunks.
func WithLinkFilter(f func(*core.Link) bool) Option {
	return func(o *MSTOptions) { o.LinkFilter = f }
}

// DefaultOptions returns Kruskal over the whole store.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Tree is a spanning tree.
type Tree struct {
	// Links in the order they were accepted.
	Links []core.LinkID
	// Cost is the sum of trunk weights.
	Cost int64
}

// Weight is the cost a trunk contributes to a tree.
func Weight(l *core.Link) int64 { return min(l.CostSD, l.CostDS) }

// Compute runs the algorithm selected by opts.
func Compute(s *core.Store, opts ...Option) (*Tree, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(s, opts...)
	case MethodPrim:
		return Prim(s, o.Root, opts...)
	default:
		return nil, ErrUnknownMethod
	}
}

// scope is the resolved node set and candidate predicate.
type scope struct {
	nodes []core.NodeID
	in    map[core.NodeID]struct{}
	keep  func(*core.Link) bool
}

func newScope(s *core.Store, opts []Option) scope {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sc := scope{in: make(map[core.NodeID]struct{})}
	ids := o.Nodes
	if ids == nil {
		ids = s.NodeIDs()
	}
	for _, id := range ids {
		if _, dup := sc.in[id]; dup || !s.HasNode(id) {
			continue
		}
		sc.in[id] = struct{}{}
		sc.nodes = append(sc.nodes, id)
	}
	sc.keep = func(l *core.Link) bool {
		if l.Source == l.Destination {
			return false
		}
		_, a := sc.in[l.Source]
		_, b := sc.in[l.Destination]
		return a && b && (o.LinkFilter == nil || o.LinkFilter(l))
	}
	return sc
}
