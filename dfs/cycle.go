// Package dfs: loop detection over the undirected adjacency of a core.Store.
//
// DetectLoops colours nodes White/Gray/Black and records one Loop for every
// back link, i.e. a link reaching a Gray ancestor other than through the link
// the walk arrived on. Parallel links therefore form two-node loops and a
// self-looped link forms a one-node loop. The result is the fundamental cycle
// basis of the DFS forest: its size is E - V + C over the walked subgraph.
//
// Complexity:
//
//   - Time:   O(V + E log d + B·L)   (B = back links, L = loop length)
//   - Memory: O(V + L_max)
package dfs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/netgraph/core"
)

// loopFinder carries the colouring and the current DFS path.
type loopFinder struct {
	store *core.Store
	opts  DFSOptions
	in    func(core.NodeID) bool
	state map[core.NodeID]int
	path  []core.NodeID
	// via[i] is the link that reached path[i]; via[0] is unused.
	via   []core.LinkID
	loops []Loop
}

// DetectLoops reports the independent loops of the selected layers.
// Returns (false, nil, nil) when the walked subgraph is a forest.
// Each Loop is canonical: rotated to start at its smallest node id, oriented
// towards the smaller neighbor. Loops are sorted by length, then nodes, then links.
func DetectLoops(s *core.Store, opts ...Option) (bool, []Loop, error) {
	o, err := resolve(s, opts)
	if err != nil {
		return false, nil, err
	}
	in, roots := o.scope(s)
	f := &loopFinder{
		store: s,
		opts:  o,
		in:    in,
		state: make(map[core.NodeID]int, len(roots)),
	}
	for _, id := range roots {
		if f.state[id] != White {
			continue
		}
		if err = f.visit(id, 0); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectLoops: %w", err)
		}
	}

	if len(f.loops) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(f.loops, func(a, b Loop) int {
		return cmp.Or(
			cmp.Compare(len(a.Nodes), len(b.Nodes)),
			slices.Compare(a.Nodes, b.Nodes),
			slices.Compare(a.Links, b.Links),
		)
	})

	return true, f.loops, nil
}

// visit explores id, which was reached through arrived (0 for a root).
func (f *loopFinder) visit(id core.NodeID, arrived core.LinkID) error {
	select {
	case <-f.opts.Ctx.Done():
		return f.opts.Ctx.Err()
	default:
	}

	f.state[id] = Gray
	f.path = append(f.path, id)
	f.via = append(f.via, arrived)

	for nb, l := range f.store.Adjacent(id, f.opts.LinkTypes...) {
		if l.ID == arrived || !f.opts.follow(f.in, id, nb.ID, l) {
			continue
		}
		switch f.state[nb.ID] {
		case White:
			if err := f.visit(nb.ID, l.ID); err != nil {
				return err
			}
		case Gray:
			f.record(nb.ID, l.ID)
		}
		// Black: the far side of a back link already recorded from below.
	}

	f.path = f.path[:len(f.path)-1]
	f.via = f.via[:len(f.via)-1]
	f.state[id] = Black

	return nil
}

// record closes the loop from the Gray ancestor start down the current path
// and back through the link closing.
func (f *loopFinder) record(start core.NodeID, closing core.LinkID) {
	idx := slices.Index(f.path, start)
	nodes := slices.Clone(f.path[idx:])
	links := append(slices.Clone(f.via[idx+1:]), closing)
	f.loops = append(f.loops, canonical(nodes, links))
}

// canonical rotates the open loop (nodes[i] --links[i]--> nodes[i+1 mod n])
// to its minimal rotation, picks the smaller of the two orientations and
// closes it by repeating the first node.
func canonical(nodes []core.NodeID, links []core.LinkID) Loop {
	n := len(nodes)
	k := minimalRotation(nodes)
	fwdN := rotate(nodes, k)
	fwdL := rotate(links, k)

	// Reversed orientation: nodes r[i] = nodes[n-1-i], and the link joining
	// r[i] to r[i+1] is links[n-2-i] (wrapping to links[n-1] at the end).
	revN := reverse(nodes)
	revL := make([]core.LinkID, n)
	for i := range n {
		revL[i] = links[(2*n-2-i)%n]
	}
	kr := minimalRotation(revN)
	bwdN := rotate(revN, kr)
	bwdL := rotate(revL, kr)

	pickN, pickL := fwdN, fwdL
	if c := cmp.Or(slices.Compare(bwdN, fwdN), slices.Compare(bwdL, fwdL)); c < 0 {
		pickN, pickL = bwdN, bwdL
	}

	return Loop{Nodes: append(pickN, pickN[0]), Links: pickL}
}
