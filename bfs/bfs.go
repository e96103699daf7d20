// Package bfs provides breadth-first search over a core.Store,
// returning hop distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node through the
// adjacency index, with optional hooks, depth and size limiting, and
// neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	store   *core.Store
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on s starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(s *core.Store, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if s == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !s.HasNode(start) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		store:   s,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[core.NodeID]bool),
		res: &BFSResult{
			Depth:  make(map[core.NodeID]int),
			Parent: make(map[core.NodeID]core.NodeID),
			Via:    make(map[core.NodeID]core.LinkID),
		},
	}

	w.enqueue(start, 0)
	return w.res, w.loop()
}

// full reports whether the MaxVisited cap has been reached.
func (w *walker) full() bool {
	return w.opts.MaxVisited > 0 && len(w.visited) >= w.opts.MaxVisited
}

// enqueue marks id visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(id core.NodeID, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors walks the adjacency of item, applying filter, depth and size limits.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for nb, l := range w.store.Adjacent(item.id, w.opts.LinkTypes...) {
		if w.full() {
			return
		}
		if w.visited[nb.ID] || !w.opts.FilterNeighbor(item.id, nb.ID, l) {
			continue
		}
		w.res.Parent[nb.ID] = item.id
		w.res.Via[nb.ID] = l.ID
		w.enqueue(nb.ID, nextDepth)
	}
}
