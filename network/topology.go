package network

import (
	"github.com/katalvlaran/netgraph/bfs"
	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/dfs"
)

// RemoveNode removes a node and every incident link from the store, then
// from every AS and Area. It returns the removed link ids, sorted, and false
// when the node is unknown.
func (n *Network) RemoveNode(id core.NodeID) ([]core.LinkID, bool) {
	node, ok := n.store.Node(id)
	if !ok {
		return nil, false
	}
	name := node.Name
	removed := n.store.RemoveNode(id)
	links := make([]core.LinkID, len(removed))
	for i, l := range removed {
		links[i] = l.ID
	}
	n.domains.Detach([]core.NodeID{id}, links)
	n.refresh()

	n.log.Info("node removed", "node", name, "links", len(links))
	return links, true
}

// RemoveLink removes a link from the store and from every AS and Area.
func (n *Network) RemoveLink(id core.LinkID) bool {
	l, ok := n.store.Link(id)
	if !ok {
		return false
	}
	name := l.Name
	n.store.RemoveLink(id)
	n.domains.Detach(nil, []core.LinkID{id})
	n.refresh()

	n.log.Info("link removed", "link", name)
	return true
}

// Components partitions the nodes by trunk reachability.
func (n *Network) Components() []bfs.Component {
	return bfs.ConnectedComponents(n.store)
}

// Critical returns the trunk bridges and articulation points of the whole store.
func (n *Network) Critical() (*dfs.Critical, error) {
	c, err := dfs.FindCritical(n.store)
	if err != nil {
		return nil, err
	}
	if len(c.Bridges) > 0 {
		n.log.Debug("single points of failure", "bridges", len(c.Bridges), "articulations", len(c.Articulations))
	}
	return c, nil
}

// Validate checks the domain model against the store.
func (n *Network) Validate() error {
	if err := n.domains.Validate(); err != nil {
		n.log.Warn("domain model invalid", "error", err)
		return err
	}
	return nil
}
