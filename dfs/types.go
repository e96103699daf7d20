// Package dfs defines types and options for depth-first search over the
// adjacency index of a core.Store, including cancellation, pre-/post-order
// hooks, depth limiting, neighbor filtering and forest traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// Visitation state of a node during a walk.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil store is passed.
	ErrGraphNil = errors.New("dfs: store is nil")

	// ErrStartVertexNotFound indicates that the start node is not in the store.
	ErrStartVertexNotFound = errors.New("dfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS, DetectLoops and Bridges.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for depth-first walks.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// LinkTypes are the layers walked. Default: trunk only.
	LinkTypes []core.LinkType

	// OnVisit, if non-nil, runs when a node is discovered (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(id core.NodeID, depth int) error

	// OnExit, if non-nil, runs after all descendants of a node have been
	// explored (post-order), before the node is appended to Order.
	OnExit func(id core.NodeID) error

	// MaxDepth, if non-negative, limits recursion. 0 visits only the start
	// node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each (curr, neighbor, link)
	// triple. Return false to skip that link.
	FilterNeighbor func(curr, neighbor core.NodeID, link *core.Link) bool

	// Nodes, when non-empty, restricts every walk to these nodes.
	Nodes []core.NodeID

	// FullTraversal restarts from every unvisited node, covering the whole
	// store (or the Nodes subset) as a forest.
	FullTraversal bool

	err error
}

// DefaultOptions returns Background context, trunk layer only, no hooks,
// no depth limit, no filter and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:       context.Background(),
		LinkTypes: []core.LinkType{core.TypeTrunk},
		MaxDepth:  -1,
	}
}

// WithContext sets the context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLinkTypes selects the layers to walk.
func WithLinkTypes(types ...core.LinkType) Option {
	return func(o *DFSOptions) {
		for _, t := range types {
			if !t.Valid() {
				o.err = fmt.Errorf("%w: link type %d", ErrOptionViolation, int(t))
				return
			}
		}
		if len(types) > 0 {
			o.LinkTypes = types
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id core.NodeID) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. A negative limit is rejected.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips links for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID, link *core.Link) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithNodes restricts walks to the given node subset.
func WithNodes(ids ...core.NodeID) Option {
	return func(o *DFSOptions) {
		o.Nodes = ids
	}
}

// WithFullTraversal enables forest traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first walk.
type DFSResult struct {
	// Order records nodes in the sequence they finished (post-order).
	Order []core.NodeID

	// Depth maps each reached node to its tree depth from its root.
	Depth map[core.NodeID]int

	// Parent maps each non-root node to the node it was discovered from.
	Parent map[core.NodeID]core.NodeID

	// Via maps each non-root node to the link it was discovered through.
	Via map[core.NodeID]core.LinkID

	// SkippedNeighbors counts links to unvisited nodes rejected by WithNodes
	// or FilterNeighbor.
	SkippedNeighbors int
}

// Loop is one closed walk through the selected layers: Nodes starts and ends
// on the same node, and Links[i] joins Nodes[i] to Nodes[i+1].
type Loop struct {
	Nodes []core.NodeID
	Links []core.LinkID
}

// resolve applies opts over the defaults and checks the store.
func resolve(s *core.Store, opts []Option) (DFSOptions, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if s == nil {
		return o, ErrGraphNil
	}
	return o, nil
}

// scope returns the membership test and the ordered roots of a walk.
func (o DFSOptions) scope(s *core.Store) (func(core.NodeID) bool, []core.NodeID) {
	if len(o.Nodes) == 0 {
		return s.HasNode, s.NodeIDs()
	}
	in := make(map[core.NodeID]bool, len(o.Nodes))
	for _, id := range o.Nodes {
		if s.HasNode(id) {
			in[id] = true
		}
	}
	roots := make([]core.NodeID, 0, len(in))
	for _, id := range s.NodeIDs() {
		if in[id] {
			roots = append(roots, id)
		}
	}
	return func(id core.NodeID) bool { return in[id] }, roots
}

// follow reports whether the walk may cross l from curr to nb.
func (o DFSOptions) follow(in func(core.NodeID) bool, curr, nb core.NodeID, l *core.Link) bool {
	if !in(nb) {
		return false
	}
	return o.FilterNeighbor == nil || o.FilterNeighbor(curr, nb, l)
}
