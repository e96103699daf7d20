package layout_test

import (
	"fmt"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/layout"
)

// ExampleSpring_Step drives the spring model for a few ticks.
func ExampleSpring_Step() {
	s := core.NewStore()
	a, _, _ := s.NodeFactory(core.KindRouter, "a", core.WithPosition(0, 0))
	b, _, _ := s.NodeFactory(core.KindRouter, "b", core.WithPosition(600, 0))
	_, _, _ = s.LinkFactory(core.TypeTrunk, "", a.ID, b.ID)

	sp, _ := layout.NewSpring(s, layout.DefaultSpringParams())
	for range 3 {
		_ = sp.Step([]core.NodeID{a.ID, b.ID})
	}
	fmt.Println(b.X-a.X < 600)
	// Output: true
}
