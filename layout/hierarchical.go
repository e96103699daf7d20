// File: hierarchical.go
// Role: Two-level BFS-clusterization layout built on the spring model.
// Notes:
//   - Virtual nodes and links live only for the duration of one Step.

package layout

import (
	"github.com/katalvlaran/netgraph/bfs"
	"github.com/katalvlaran/netgraph/core"
)

// Hierarchical relaxes bounded BFS clusters independently and then moves
// whole clusters as weighted virtual nodes.
type Hierarchical struct {
	store  *core.Store
	params HierarchicalParams
	spring *Spring
}

// NewHierarchical validates p and binds the layout to s.
func NewHierarchical(s *core.Store, p HierarchicalParams) (*Hierarchical, error) {
	if err := check(p); err != nil {
		return nil, err
	}
	sp, err := NewSpring(s, p.Spring)
	if err != nil {
		return nil, err
	}
	return &Hierarchical{store: s, params: p, spring: sp}, nil
}

// Name implements Layout.
func (h *Hierarchical) Name() string { return NameHierarchical }

// Step runs one two-level iteration.
//
// Steps:
//  1. Partition nodes into BFS clusters of at most ClusterSize.
//  2. Run InnerIterations spring steps inside each cluster; outside
//     neighbors take part as fixed bodies.
//  3. Collapse each cluster to a virtual node at its centroid with weight
//     equal to its size; link virtual nodes of trunk-adjacent clusters when
//     ConnectClusters is set.
//  4. Run one spring iteration on the virtual graph.
//  5. Shift every member by its virtual node's displacement.
//
// A node set that fits in one cluster reduces to InnerIterations plain
// spring steps: a lone virtual node feels no force.
func (h *Hierarchical) Step(nodes []core.NodeID) error {
	set, err := resolve(h.store, nodes)
	if err != nil {
		return err
	}
	ids := make([]core.NodeID, len(set))
	for i, n := range set {
		ids[i] = n.ID
	}
	clusters := bfs.Clusters(h.store, ids, h.params.ClusterSize)

	for _, c := range clusters {
		for range h.params.InnerIterations {
			if err = h.spring.Step(c); err != nil {
				return err
			}
		}
	}

	owner := make(map[core.NodeID]int, len(ids))
	virtual := make([]*body, len(clusters))
	for ci, c := range clusters {
		v := &body{weight: float64(len(c))}
		for _, id := range c {
			n, _ := h.store.Node(id)
			v.x += n.X
			v.y += n.Y
			owner[id] = ci
		}
		v.x /= float64(len(c))
		v.y /= float64(len(c))
		virtual[ci] = v
	}

	adjacent := make(map[[2]int]struct{})
	if h.params.ConnectClusters {
		for ci, c := range clusters {
			for _, id := range c {
				for nb := range h.store.Neighbors(id, core.TypeTrunk) {
					cj, ok := owner[nb.ID]
					if ok && cj != ci {
						adjacent[[2]int{min(ci, cj), max(ci, cj)}] = struct{}{}
					}
				}
			}
		}
	}
	index := make(map[*body]int, len(virtual))
	for i, v := range virtual {
		index[v] = i
	}
	linked := func(a, b *body) bool {
		i, j := index[a], index[b]
		_, ok := adjacent[[2]int{min(i, j), max(i, j)}]
		return ok
	}

	centroids := make([]vec, len(virtual))
	for i, v := range virtual {
		centroids[i] = vec{v.x, v.y}
	}
	h.params.Spring.relax(virtual, len(virtual), linked)

	for ci, c := range clusters {
		dx, dy := virtual[ci].x-centroids[ci].x, virtual[ci].y-centroids[ci].y
		if dx == 0 && dy == 0 {
			continue
		}
		for _, id := range c {
			n, _ := h.store.Node(id)
			n.X += dx
			n.Y += dy
		}
	}

	return nil
}
