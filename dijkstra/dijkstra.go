// Package dijkstra implements constrained shortest-path search on a core.Store.
//
// It processes nodes in order of increasing distance using a min-heap keyed
// by (distance, push sequence), relaxing the links of the requested layers
// through the store's adjacency index.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per segment
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Ties on distance are broken by push order: the first-seen entry wins,
//     which makes results stable across calls on the same store.
//   - The search for a segment stops as soon as its target is finalized.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/netgraph/core"
)

// ShortestPath returns the shortest path from src to dst under opts.
//
// Preconditions and validation (in order):
//  1. s must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrBadMaxDistance).
//  3. src, dst and every waypoint must exist (ErrNodeNotFound).
//
// Failure to reach any segment target yields ErrNoPathFound and no partial path.
// src == dst with no waypoints succeeds with a zero-link path.
func ShortestPath(s *core.Store, src, dst core.NodeID, opts ...Option) (*Path, error) {
	if s == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	stops := make([]core.NodeID, 0, len(cfg.Waypoints)+2)
	stops = append(stops, src)
	stops = append(stops, cfg.Waypoints...)
	stops = append(stops, dst)
	for _, id := range stops {
		if !s.HasNode(id) {
			return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
		}
	}

	r := &runner{store: s, options: &cfg}
	total := &Path{Nodes: []core.NodeID{src}}
	for i := 1; i < len(stops); i++ {
		seg, err := r.segment(stops[i-1], stops[i])
		if err != nil {
			return nil, err
		}
		total.extend(seg)
	}

	return total, nil
}

// runner holds the mutable state for one segment search.
type runner struct {
	store   *core.Store
	options *Options
	dist    map[core.NodeID]int64
	via     map[core.NodeID]core.LinkID
	visited map[core.NodeID]bool
	pq      nodePQ
	seq     int
}

// segment runs one Dijkstra search from a to b.
func (r *runner) segment(a, b core.NodeID) (*Path, error) {
	for _, id := range []core.NodeID{a, b} {
		n, _ := r.store.Node(id)
		if !r.options.admitsNode(n) {
			return nil, fmt.Errorf("%w: %d is excluded", ErrNoPathFound, id)
		}
	}
	if a == b {
		return &Path{Nodes: []core.NodeID{a}}, nil
	}

	r.dist = map[core.NodeID]int64{a: 0}
	r.via = make(map[core.NodeID]core.LinkID)
	r.visited = make(map[core.NodeID]bool)
	r.pq = r.pq[:0]
	r.seq = 0
	r.push(a, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == b {
			return r.reconstruct(a, b), nil
		}
		if err := r.relax(u); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %d → %d", ErrNoPathFound, a, b)
}

// relax improves distances to the admissible neighbors of u.
func (r *runner) relax(u core.NodeID) error {
	du := r.dist[u]
	for nb, l := range r.store.Adjacent(u, r.options.LinkTypes...) {
		if r.visited[nb.ID] || !r.options.admitsLink(l) || !r.options.admitsNode(nb) {
			continue
		}
		w := int64(1)
		if r.options.UseCosts {
			w = l.CostFrom(u)
			if w < 0 {
				return fmt.Errorf("%w: link %s weight=%d", ErrNegativeWeight, l.Name, w)
			}
		}
		if w > math.MaxInt64-du {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.dist[nb.ID]; seen && nd >= cur {
			continue
		}
		r.dist[nb.ID] = nd
		r.via[nb.ID] = l.ID
		r.push(nb.ID, nd)
	}

	return nil
}

// push inserts a heap entry stamped with the next sequence number.
func (r *runner) push(id core.NodeID, d int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// reconstruct walks predecessor links back from b to a.
func (r *runner) reconstruct(a, b core.NodeID) *Path {
	var links []core.LinkID
	nodes := []core.NodeID{b}
	for cur := b; cur != a; {
		lid := r.via[cur]
		l, _ := r.store.Link(lid)
		links = append(links, lid)
		cur = l.Other(cur)
		nodes = append(nodes, cur)
	}
	for i, j := 0, len(links)-1; i < j; i, j = i+1, j-1 {
		links[i], links[j] = links[j], links[i]
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return &Path{Links: links, Nodes: nodes, Cost: r.dist[b]}
}

// nodeItem is a heap entry: a node, its tentative distance, and the order it was pushed in.
type nodeItem struct {
	id   core.NodeID
	dist int64
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
// Stale entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
