package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/netgraph/bfs"
	"github.com/katalvlaran/netgraph/core"
)

// ExampleBFS demonstrates layering on a small star with a tail.
func ExampleBFS() {
	s := core.NewStore()
	name := func(id core.NodeID) string { n, _ := s.Node(id); return n.Name }

	hub, _, _ := s.NodeFactory(core.KindSwitch, "hub")
	for _, leaf := range []string{"a", "b", "c"} {
		n, _, _ := s.NodeFactory(core.KindHost, leaf)
		s.LinkFactory(core.TypeTrunk, "", hub.ID, n.ID)
	}
	c, _ := s.NodeByName("c")
	tail, _, _ := s.NodeFactory(core.KindHost, "tail")
	s.LinkFactory(core.TypeTrunk, "", c.ID, tail.ID)

	res, _ := bfs.BFS(s, hub.ID)
	for _, id := range res.Order {
		fmt.Printf("%s@%d ", name(id), res.Depth[id])
	}
	fmt.Println()
	// Output:
	// hub@0 a@1 b@1 c@1 tail@2
}

// ExampleConnectedComponents shows that only trunks connect components.
func ExampleConnectedComponents() {
	s := core.NewStore()
	a, _, _ := s.NodeFactory(core.KindRouter, "a")
	b, _, _ := s.NodeFactory(core.KindRouter, "b")
	c, _, _ := s.NodeFactory(core.KindRouter, "c")
	s.LinkFactory(core.TypeTrunk, "", a.ID, b.ID)
	s.LinkFactory(core.TypeTraffic, "", b.ID, c.ID)

	fmt.Println(len(bfs.ConnectedComponents(s)))
	// Output:
	// 2
}
