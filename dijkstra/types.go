// Package dijkstra defines types and configuration options for the
// constrained shortest-path search over a core.Store.
//
// Weights:
//
//	– Hop count (every traversed link weighs 1) by default.
//	– WithCosts() switches to the directional cost of traversal:
//	  CostSD when leaving the link's Source, CostDS otherwise.
//
// Constraints:
//
//	– Excluded nodes and links are dropped before relaxation, never after.
//	– Node and link filters are predicates applied at the same point.
//	– Waypoints turn one query into the concatenation of the segments
//	  [src]+waypoints+[dst]; any unreachable segment fails the whole call.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided store pointer is nil.
//	– ErrNodeNotFound    if src, dst or a waypoint is not in the store.
//	– ErrNoPathFound     if no admissible path exists.
//	– ErrNegativeWeight  if WithCosts() meets a negative directional cost.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/netgraph/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Store was passed.
	ErrNilGraph = errors.New("dijkstra: store is nil")

	// ErrNodeNotFound indicates that an endpoint or waypoint does not exist.
	ErrNodeNotFound = errors.New("dijkstra: node not found")

	// ErrNoPathFound indicates that the query cannot be satisfied. It is an
	// expected, per-query outcome.
	ErrNoPathFound = errors.New("dijkstra: no path found")

	// ErrNegativeWeight indicates a negative directional cost under WithCosts.
	ErrNegativeWeight = errors.New("dijkstra: negative link cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a ShortestPath call.
//
// UseCosts      – weigh links by directional cost instead of hop count.
// LinkTypes     – layers walked; default trunk only.
// ExcludedNodes – nodes that may not be entered (nor start or end a segment).
// ExcludedLinks – links that may not be traversed.
// Waypoints     – ordered intermediate nodes the path must visit.
// NodeFilter    – optional admission predicate for neighbors.
// LinkFilter    – optional admission predicate for links.
// MaxDistance   – segments whose cost would exceed it are unreachable. Default math.MaxInt64.
type Options struct {
	UseCosts      bool
	LinkTypes     []core.LinkType
	ExcludedNodes map[core.NodeID]struct{}
	ExcludedLinks map[core.LinkID]struct{}
	Waypoints     []core.NodeID
	NodeFilter    func(*core.Node) bool
	LinkFilter    func(*core.Link) bool
	MaxDistance   int64

	err error
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// DefaultOptions returns Options initialized with:
//   - hop-count weights
//   - trunk layer only
//   - no exclusions, waypoints or filters
//   - no distance cap.
func DefaultOptions() Options {
	return Options{
		LinkTypes:     []core.LinkType{core.TypeTrunk},
		ExcludedNodes: make(map[core.NodeID]struct{}),
		ExcludedLinks: make(map[core.LinkID]struct{}),
		MaxDistance:   math.MaxInt64,
	}
}

// WithCosts weighs each traversal by the link's directional cost.
func WithCosts() Option {
	return func(o *Options) { o.UseCosts = true }
}

// WithLinkTypes selects the layers to walk.
func WithLinkTypes(types ...core.LinkType) Option {
	return func(o *Options) {
		if len(types) > 0 {
			o.LinkTypes = types
		}
	}
}

// WithExcludedNodes forbids entering the given nodes.
func WithExcludedNodes(ids ...core.NodeID) Option {
	return func(o *Options) {
		for _, id := range ids {
			o.ExcludedNodes[id] = struct{}{}
		}
	}
}

// WithExcludedLinks forbids traversing the given links.
func WithExcludedLinks(ids ...core.LinkID) Option {
	return func(o *Options) {
		for _, id := range ids {
			o.ExcludedLinks[id] = struct{}{}
		}
	}
}

// WithWaypoints forces the path through ids, in order.
func WithWaypoints(ids ...core.NodeID) Option {
	return func(o *Options) { o.Waypoints = append(o.Waypoints, ids...) }
}

// WithNodeFilter admits only neighbors for which fn returns true.
func WithNodeFilter(fn func(*core.Node) bool) Option {
	return func(o *Options) { o.NodeFilter = fn }
}

// WithLinkFilter admits only links for which fn returns true.
func WithLinkFilter(fn func(*core.Link) bool) Option {
	return func(o *Options) { o.LinkFilter = fn }
}

// WithMaxDistance caps the cost of every segment.
// Negative values are recorded and surface as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// admitsNode reports whether the search may enter n.
func (o *Options) admitsNode(n *core.Node) bool {
	if _, ex := o.ExcludedNodes[n.ID]; ex {
		return false
	}
	return o.NodeFilter == nil || o.NodeFilter(n)
}

// admitsLink reports whether the search may traverse l.
func (o *Options) admitsLink(l *core.Link) bool {
	if _, ex := o.ExcludedLinks[l.ID]; ex {
		return false
	}
	return o.LinkFilter == nil || o.LinkFilter(l)
}

// Path is a successful search result. A path from a node to itself has no
// links, a single node and zero cost.
type Path struct {
	// Links in traversal order.
	Links []core.LinkID
	// Nodes visited, len(Nodes) == len(Links)+1.
	Nodes []core.NodeID
	// Cost is the hop count, or the summed directional cost under WithCosts.
	Cost int64
}

// Hops returns the number of traversed links.
func (p *Path) Hops() int { return len(p.Links) }

// extend appends seg, whose first node must equal p's last node.
func (p *Path) extend(seg *Path) {
	p.Links = append(p.Links, seg.Links...)
	p.Nodes = append(p.Nodes, seg.Nodes[1:]...)
	p.Cost += seg.Cost
}
