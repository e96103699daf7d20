package network_test

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netgraph/builder"
	"github.com/katalvlaran/netgraph/flow"
	"github.com/katalvlaran/netgraph/network"
)

// ExampleNetwork_MaxFlow measures the capacity between opposite corners of
// a 3x3 grid of 10-unit trunks.
func ExampleNetwork_MaxFlow() {
	s, _ := builder.BuildStore(nil, []builder.BuilderOption{builder.WithCapacity(10)}, builder.Grid(3, 3))
	net, _ := network.New(network.WithStore(s), network.WithLogger(slog.New(slog.DiscardHandler)))

	src, _ := s.NodeByName("n0")
	dst, _ := s.NodeByName("n8")
	res, _ := net.MaxFlow(context.Background(), flow.AlgEdmondsKarp, src.ID, dst.ID)
	fmt.Println(res.Value)

	removed, _ := net.RemoveNode(src.ID)
	fmt.Println(len(removed), len(net.Components()))
	// Output:
	// 20
	// 2 1
}
