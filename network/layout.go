package network

import (
	"time"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/layout"
)

// LayoutStep runs one iteration of the named layout algorithm over nodes,
// or over every node when nodes is empty. Layouts are built once per name
// from the config's layout section.
//
// Errors: layout.ErrUnknownAlgorithm, layout.ErrInvalidParams, layout.ErrNodeNotFound.
func (n *Network) LayoutStep(name string, nodes []core.NodeID) error {
	l, ok := n.layouts[name]
	if !ok {
		var err error
		if l, err = layout.New(name, n.store, n.cfg.Layout); err != nil {
			return err
		}
		n.layouts[name] = l
	}
	if len(nodes) == 0 {
		nodes = n.store.NodeIDs()
	}

	start := time.Now()
	if err := l.Step(nodes); err != nil {
		return err
	}
	n.metrics.RecordLayoutStep(l.Name(), time.Since(start))
	return nil
}
