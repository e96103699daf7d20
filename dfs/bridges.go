// Package dfs: bridges and articulation points by Tarjan's low-link walk.
//
// A bridge is a link whose removal disconnects its endpoints; an articulation
// point is a node whose removal splits its component. Both are single points
// of failure of the walked layers. Parallel links are never bridges because
// the walk skips only the exact link it arrived on.
//
// Complexity: O(V + E log d) time, O(V) memory.
package dfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/netgraph/core"
)

// Critical lists the single points of failure of the walked subgraph.
type Critical struct {
	// Bridges are link ids sorted ascending.
	Bridges []core.LinkID
	// Articulations are node ids sorted ascending.
	Articulations []core.NodeID
}

type lowLink struct {
	store *core.Store
	opts  DFSOptions
	in    func(core.NodeID) bool
	timer int
	disc  map[core.NodeID]int
	low   map[core.NodeID]int
	cut   map[core.NodeID]bool
	res   Critical
}

// FindCritical computes bridges and articulation points over every component
// in scope. Honors WithContext, WithLinkTypes, WithNodes and WithFilterNeighbor.
func FindCritical(s *core.Store, opts ...Option) (*Critical, error) {
	o, err := resolve(s, opts)
	if err != nil {
		return nil, err
	}
	in, roots := o.scope(s)
	w := &lowLink{
		store: s,
		opts:  o,
		in:    in,
		disc:  make(map[core.NodeID]int, len(roots)),
		low:   make(map[core.NodeID]int, len(roots)),
		cut:   make(map[core.NodeID]bool),
	}
	for _, id := range roots {
		if _, ok := w.disc[id]; ok {
			continue
		}
		if err = w.visit(id, 0, true); err != nil {
			return nil, fmt.Errorf("dfs: FindCritical: %w", err)
		}
	}
	for id := range w.cut {
		w.res.Articulations = append(w.res.Articulations, id)
	}
	slices.Sort(w.res.Articulations)
	slices.Sort(w.res.Bridges)

	return &w.res, nil
}

func (w *lowLink) visit(id core.NodeID, arrived core.LinkID, root bool) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.timer++
	w.disc[id], w.low[id] = w.timer, w.timer
	children := 0

	for nb, l := range w.store.Adjacent(id, w.opts.LinkTypes...) {
		if l.ID == arrived || nb.ID == id || !w.opts.follow(w.in, id, nb.ID, l) {
			continue
		}
		if d, seen := w.disc[nb.ID]; seen {
			w.low[id] = min(w.low[id], d)
			continue
		}
		children++
		if err := w.visit(nb.ID, l.ID, false); err != nil {
			return err
		}
		w.low[id] = min(w.low[id], w.low[nb.ID])
		if w.low[nb.ID] > w.disc[id] {
			w.res.Bridges = append(w.res.Bridges, l.ID)
		}
		if !root && w.low[nb.ID] >= w.disc[id] {
			w.cut[id] = true
		}
	}
	if root && children > 1 {
		w.cut[id] = true
	}

	return nil
}
