// Package dfs implements depth-first search (single-source and forest) over
// the adjacency index of a core.Store.
//
// Complexity:
//
//   - Time:   O(V + E log d) (the adjacency index yields links sorted by id).
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if s is nil.
//   - ErrStartVertexNotFound    if start is missing or outside WithNodes.
//   - ErrOptionViolation        for a bad Option.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
)

// walker encapsulates state during DFS.
type walker struct {
	store *core.Store
	opts  DFSOptions
	in    func(core.NodeID) bool
	seen  map[core.NodeID]bool
	res   *DFSResult
}

// DFS performs depth-first search on s from start. With WithFullTraversal it
// covers every node in scope, restarting from the smallest unvisited id.
// Neighbors are explored in ascending link id.
func DFS(s *core.Store, start core.NodeID, opts ...Option) (*DFSResult, error) {
	o, err := resolve(s, opts)
	if err != nil {
		return nil, err
	}
	in, roots := o.scope(s)
	if !o.FullTraversal && !in(start) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		store: s,
		opts:  o,
		in:    in,
		seen:  make(map[core.NodeID]bool, len(roots)),
		res: &DFSResult{
			Order:  make([]core.NodeID, 0, len(roots)),
			Depth:  make(map[core.NodeID]int, len(roots)),
			Parent: make(map[core.NodeID]core.NodeID),
			Via:    make(map[core.NodeID]core.LinkID),
		},
	}

	if !o.FullTraversal {
		return w.res, w.traverse(start, 0)
	}
	if in(start) {
		if err = w.traverse(start, 0); err != nil {
			return w.res, err
		}
	}
	for _, id := range roots {
		if w.seen[id] {
			continue
		}
		if err = w.traverse(id, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits id at the given depth and recurses into its neighbors.
func (w *walker) traverse(id core.NodeID, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.seen[id] = true
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for nb, l := range w.store.Adjacent(id, w.opts.LinkTypes...) {
			if w.seen[nb.ID] {
				continue
			}
			if !w.opts.follow(w.in, id, nb.ID, l) {
				w.res.SkippedNeighbors++
				continue
			}
			w.res.Parent[nb.ID] = id
			w.res.Via[nb.ID] = l.ID
			if err := w.traverse(nb.ID, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
