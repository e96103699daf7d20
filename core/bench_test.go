package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/netgraph/core"
)

// BenchmarkLinkFactory measures trunk creation on a star.
func BenchmarkLinkFactory(b *testing.B) {
	s := core.NewStore()
	hub, _, _ := s.NodeFactory(core.KindRouter, "hub")
	leaves := make([]core.NodeID, 100)
	for i := range leaves {
		n, _, _ := s.NodeFactory(core.KindRouter, fmt.Sprintf("leaf%d", i))
		leaves[i] = n.ID
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = s.LinkFactory(core.TypeTrunk, "", hub.ID, leaves[i%len(leaves)])
	}
}

// BenchmarkNeighbors measures neighbor iteration in a star of 1000 leaves.
func BenchmarkNeighbors(b *testing.B) {
	s := core.NewStore()
	hub, _, _ := s.NodeFactory(core.KindRouter, "hub")
	for i := 0; i < 1000; i++ {
		n, _, _ := s.NodeFactory(core.KindRouter, fmt.Sprintf("leaf%d", i))
		_, _, _ = s.LinkFactory(core.TypeTrunk, "", hub.ID, n.ID)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range s.Neighbors(hub.ID, core.TypeTrunk) {
		}
	}
}
