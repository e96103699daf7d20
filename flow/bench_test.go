package flow_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/flow"
)

// layered builds width-wide layers fully connected to the next layer, with a
// source feeding the first layer and a sink draining the last.
func layered(b *testing.B, layers, width int) (*core.Store, core.NodeID, core.NodeID) {
	b.Helper()
	s := core.NewStore()
	node := func(name string) core.NodeID {
		n, _, err := s.NodeFactory(core.KindRouter, name)
		if err != nil {
			b.Fatal(err)
		}
		return n.ID
	}
	link := func(u, v core.NodeID, c int64) {
		if _, _, err := s.LinkFactory(core.TypeTrunk, "", u, v, core.WithCapacity(c, 0)); err != nil {
			b.Fatal(err)
		}
	}
	src, dst := node("src"), node("dst")
	prev := []core.NodeID{src}
	for l := 0; l < layers; l++ {
		cur := make([]core.NodeID, width)
		for w := range cur {
			cur[w] = node(fmt.Sprintf("n%d_%d", l, w))
			for i, p := range prev {
				link(p, cur[w], int64(1+(i+w)%7))
			}
		}
		prev = cur
	}
	for _, p := range prev {
		link(p, dst, 10)
	}
	return s, src, dst
}

func benchAlgorithm(b *testing.B, alg flow.Algorithm) {
	s, src, dst := layered(b, 6, 8)
	opts := flow.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ResetFlows()
		if _, err := flow.MaxFlow(alg, s, src, dst, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFordFulkerson(b *testing.B) { benchAlgorithm(b, flow.AlgFordFulkerson) }
func BenchmarkEdmondsKarp(b *testing.B)   { benchAlgorithm(b, flow.AlgEdmondsKarp) }
func BenchmarkDinic(b *testing.B)         { benchAlgorithm(b, flow.AlgDinic) }
