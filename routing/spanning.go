package routing

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/dfs"
	"github.com/katalvlaran/netgraph/domain"
	"github.com/katalvlaran/netgraph/prim_kruskal"
)

// DomainSpanningTree returns the spanning tree a spanning-tree domain
// converges to: Prim over the AS member trunks, rooted at the member node
// with the lowest id. An AS without nodes yields an empty tree.
//
// Errors: domain.ErrASNotFound, prim_kruskal.ErrDisconnected.
func DomainSpanningTree(m *domain.Model, as core.ASID) (*prim_kruskal.Tree, error) {
	owner, ok := m.AS(as)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrASNotFound, as)
	}
	nodes := owner.NodeIDs()
	if len(nodes) == 0 {
		return &prim_kruskal.Tree{}, nil
	}
	tree, err := prim_kruskal.Prim(m.Store(), nodes[0],
		prim_kruskal.WithNodes(nodes),
		prim_kruskal.WithLinkFilter(func(l *core.Link) bool { return owner.HasLink(l.ID) }),
	)
	if err != nil {
		return nil, fmt.Errorf("routing: spanning tree of %s: %w", owner.Name, err)
	}
	return tree, nil
}

// DomainLoops lists the independent trunk loops among the AS members, i.e.
// what a spanning-tree domain has to block. Only trunks in the AS link pool
// count. The result has one loop per AS trunk beyond a spanning forest of
// the members.
//
// Errors: domain.ErrASNotFound.
func DomainLoops(m *domain.Model, as core.ASID) ([]dfs.Loop, error) {
	owner, ok := m.AS(as)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrASNotFound, as)
	}
	nodes := owner.NodeIDs()
	if len(nodes) == 0 {
		return nil, nil
	}
	_, loops, err := dfs.DetectLoops(m.Store(),
		dfs.WithNodes(nodes...),
		dfs.WithFilterNeighbor(func(_, _ core.NodeID, l *core.Link) bool { return owner.HasLink(l.ID) }),
	)
	if err != nil {
		return nil, fmt.Errorf("routing: loops of %s: %w", owner.Name, err)
	}
	return loops, nil
}
