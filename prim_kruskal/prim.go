package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/netgraph/core"
)

// Prim grows a minimum spanning tree of the node set from root.
//
// Steps:
//  1. Resolve the node set; root must belong to it.
//  2. Mark root and push its candidate trunks.
//  3. Pop the lightest trunk; skip it if its far end is already in the tree,
//     otherwise accept it and push the far end's candidates.
//  4. Fewer than |V|-1 accepted trunks means ErrDisconnected.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(s *core.Store, root core.NodeID, opts ...Option) (*Tree, error) {
	if s == nil {
		return nil, ErrNilGraph
	}
	sc := newScope(s, opts)
	if _, ok := sc.in[root]; !ok {
		return nil, ErrRootNotFound
	}
	tree := &Tree{}
	visited := map[core.NodeID]bool{root: true}
	pq := &edgePQ{}

	push := func(u core.NodeID) {
		for nb, l := range s.Adjacent(u, core.TypeTrunk) {
			if !visited[nb.ID] && sc.keep(l) {
				heap.Push(pq, edgeItem{link: l, to: nb.ID, w: Weight(l)})
			}
		}
	}
	push(root)
	for pq.Len() > 0 && len(tree.Links) < len(sc.nodes)-1 {
		e := heap.Pop(pq).(edgeItem)
		if visited[e.to] {
			continue
		}
		visited[e.to] = true
		tree.Links = append(tree.Links, e.link.ID)
		tree.Cost += e.w
		push(e.to)
	}

	if len(tree.Links) < len(sc.nodes)-1 {
		return nil, ErrDisconnected
	}
	return tree, nil
}

// edgeItem is a candidate trunk leading to to.
type edgeItem struct {
	link *core.Link
	to   core.NodeID
	w    int64
}

// edgePQ is a min-heap of candidates ordered by (w, link id).
type edgePQ []edgeItem

func (pq edgePQ) Len() int { return len(pq) }
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].w != pq[j].w {
		return pq[i].w < pq[j].w
	}
	return pq[i].link.ID < pq[j].link.ID
}
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x any)   { *pq = append(*pq, x.(edgeItem)) }
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
