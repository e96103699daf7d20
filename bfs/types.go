// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Store.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil store pointer is passed.
	ErrGraphNil = errors.New("bfs: store is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// LinkTypes are the layers walked. Default: trunk only.
	LinkTypes []core.LinkType

	// OnEnqueue is called when a node is enqueued, before visiting.
	OnEnqueue func(id core.NodeID, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.NodeID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// MaxVisited, if > 0, caps the number of enqueued nodes. Used to grow
	// bounded-size clusters.
	MaxVisited int

	// FilterNeighbor can skip traversals by returning false.
	// Called for each (curr, neighbor, link) triple.
	FilterNeighbor func(curr, neighbor core.NodeID, link *core.Link) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - trunk layer only
//   - no depth or size limit
//   - no filtering, no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		LinkTypes:      []core.LinkType{core.TypeTrunk},
		OnEnqueue:      func(core.NodeID, int) {},
		OnVisit:        func(core.NodeID, int) error { return nil },
		FilterNeighbor: func(_, _ core.NodeID, _ *core.Link) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLinkTypes selects the layers to walk.
func WithLinkTypes(types ...core.LinkType) Option {
	return func(o *BFSOptions) {
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

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id core.NodeID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxVisited stops enqueuing once n nodes have been reached.
func WithMaxVisited(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisited cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisited = n
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.NodeID, link *core.Link) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: distance (in links) from the start.
//   - Parent: predecessor in the BFS tree.
//   - Via: the link used to reach each non-start node.
type BFSResult struct {
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
	Via    map[core.NodeID]core.LinkID
}

// PathTo reconstructs the node path from the start to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest core.NodeID) ([]core.NodeID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	// build reversed path
	path := []core.NodeID{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
