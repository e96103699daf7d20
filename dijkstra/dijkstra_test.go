package dijkstra_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/dijkstra"
)

// fixture builds routers named in names and trunks given as "x-y" pairs.
type fixture struct {
	s     *core.Store
	nodes map[string]core.NodeID
	links map[string]core.LinkID
}

func build(t *testing.T, names []string, trunks ...string) *fixture {
	t.Helper()
	f := &fixture{s: core.NewStore(), nodes: map[string]core.NodeID{}, links: map[string]core.LinkID{}}
	for _, n := range names {
		node, _, err := f.s.NodeFactory(core.KindRouter, n)
		require.NoError(t, err)
		f.nodes[n] = node.ID
	}
	for _, tr := range trunks {
		a, b, ok := strings.Cut(tr, "-")
		require.True(t, ok)
		l, _, err := f.s.LinkFactory(core.TypeTrunk, tr, f.nodes[a], f.nodes[b])
		require.NoError(t, err)
		f.links[tr] = l.ID
	}
	return f
}

func (f *fixture) names(ids []core.NodeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		n, _ := f.s.Node(id)
		out[i] = n.Name
	}
	return out
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_Validation(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, 1, 2)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	f := build(t, []string{"A", "B"}, "A-B")
	_, err = dijkstra.ShortestPath(f.s, f.nodes["A"], 77)
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	_, err = dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["B"], dijkstra.WithWaypoints(77))
	require.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	_, err = dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["B"], dijkstra.WithMaxDistance(-1))
	require.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

// ------------------------------------------------------------------------
// 2. Basic behavior
// ------------------------------------------------------------------------

func TestShortestPath_SameNode(t *testing.T) {
	f := build(t, []string{"A"})
	p, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["A"])
	require.NoError(t, err)
	require.Empty(t, p.Links)
	require.Equal(t, []core.NodeID{f.nodes["A"]}, p.Nodes)
	require.Zero(t, p.Cost)
}

func TestShortestPath_Disconnected(t *testing.T) {
	f := build(t, []string{"A", "B"})
	_, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["B"])
	require.ErrorIs(t, err, dijkstra.ErrNoPathFound)
}

func TestShortestPath_HopsVersusCosts(t *testing.T) {
	// A-D is one expensive hop, A-B-C-D three cheap ones.
	f := build(t, []string{"A", "B", "C", "D"}, "A-B", "B-C", "C-D")
	_, _, err := f.s.LinkFactory(core.TypeTrunk, "direct", f.nodes["A"], f.nodes["D"], core.WithCost(10, 10))
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["D"])
	require.NoError(t, err)
	require.Equal(t, 1, p.Hops())
	require.Equal(t, int64(1), p.Cost)

	p, err = dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["D"], dijkstra.WithCosts())
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D"}, f.names(p.Nodes))
	require.Equal(t, int64(3), p.Cost)
}

func TestShortestPath_DirectionalCost(t *testing.T) {
	f := build(t, []string{"A", "B"})
	l, _, err := f.s.LinkFactory(core.TypeTrunk, "ab", f.nodes["A"], f.nodes["B"], core.WithCost(2, 9))
	require.NoError(t, err)

	p, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["B"], dijkstra.WithCosts())
	require.NoError(t, err)
	require.Equal(t, int64(2), p.Cost)
	require.Equal(t, []core.LinkID{l.ID}, p.Links)

	p, err = dijkstra.ShortestPath(f.s, f.nodes["B"], f.nodes["A"], dijkstra.WithCosts())
	require.NoError(t, err)
	require.Equal(t, int64(9), p.Cost)
}

func TestShortestPath_NegativeCost(t *testing.T) {
	f := build(t, []string{"A", "B"})
	_, _, err := f.s.LinkFactory(core.TypeTrunk, "ab", f.nodes["A"], f.nodes["B"], core.WithCost(-1, 1))
	require.NoError(t, err)
	_, err = dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["B"], dijkstra.WithCosts())
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestShortestPath_TieBreakStable(t *testing.T) {
	// Square A-B-D and A-C-D: both two hops; B is pushed first.
	f := build(t, []string{"A", "B", "C", "D"}, "A-B", "A-C", "B-D", "C-D")
	for i := 0; i < 5; i++ {
		p, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["D"])
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "D"}, f.names(p.Nodes))
	}
}

func TestShortestPath_LayerSelection(t *testing.T) {
	f := build(t, []string{"A", "B"})
	_, _, err := f.s.LinkFactory(core.TypeRoute, "r", f.nodes["A"], f.nodes["B"])
	require.NoError(t, err)

	_, err = dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["B"])
	require.ErrorIs(t, err, dijkstra.ErrNoPathFound)

	p, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["B"], dijkstra.WithLinkTypes(core.TypeRoute))
	require.NoError(t, err)
	require.Equal(t, 1, p.Hops())
}

// ------------------------------------------------------------------------
// 3. Constraints
// ------------------------------------------------------------------------

func TestShortestPath_ExcludedNode(t *testing.T) {
	f := build(t, []string{"A", "B", "C"}, "A-B", "B-C")
	_, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["C"], dijkstra.WithExcludedNodes(f.nodes["B"]))
	require.ErrorIs(t, err, dijkstra.ErrNoPathFound)

	// excluding an endpoint is also unsatisfiable
	_, err = dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["C"], dijkstra.WithExcludedNodes(f.nodes["A"]))
	require.ErrorIs(t, err, dijkstra.ErrNoPathFound)
}

func TestShortestPath_ExcludedLink(t *testing.T) {
	f := build(t, []string{"A", "B", "C"}, "A-B", "B-C", "A-C")
	p, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["C"], dijkstra.WithExcludedLinks(f.links["A-C"]))
	require.NoError(t, err)
	require.Equal(t, []core.LinkID{f.links["A-B"], f.links["B-C"]}, p.Links)
}

func TestShortestPath_Filters(t *testing.T) {
	f := build(t, []string{"A", "B", "C", "D"}, "A-B", "B-D", "A-C", "C-D")
	p, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["D"],
		dijkstra.WithNodeFilter(func(n *core.Node) bool { return n.Name != "B" }))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C", "D"}, f.names(p.Nodes))

	_, err = dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["D"],
		dijkstra.WithLinkFilter(func(l *core.Link) bool { return l.Name != "B-D" && l.Name != "C-D" }))
	require.ErrorIs(t, err, dijkstra.ErrNoPathFound)
}

func TestShortestPath_Waypoint(t *testing.T) {
	f := build(t, []string{"A", "B", "C", "D"}, "A-B", "B-C", "C-D")
	p, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["D"], dijkstra.WithWaypoints(f.nodes["C"]))
	require.NoError(t, err)
	require.Equal(t, 3, p.Hops())
	require.Equal(t, []string{"A", "B", "C", "D"}, f.names(p.Nodes))
	require.Len(t, p.Nodes, len(p.Links)+1)
}

func TestShortestPath_WaypointDetour(t *testing.T) {
	// Going A→C via waypoint D forces a back-and-forth over C-D.
	f := build(t, []string{"A", "B", "C", "D"}, "A-B", "B-C", "C-D")
	p, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["C"], dijkstra.WithWaypoints(f.nodes["D"]))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "C"}, f.names(p.Nodes))
	require.Equal(t, int64(4), p.Cost)
}

func TestShortestPath_UnreachableWaypoint(t *testing.T) {
	f := build(t, []string{"A", "B", "C", "Z"}, "A-B", "B-C")
	p, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["C"], dijkstra.WithWaypoints(f.nodes["Z"]))
	require.ErrorIs(t, err, dijkstra.ErrNoPathFound)
	require.Nil(t, p)
}

func TestShortestPath_MaxDistance(t *testing.T) {
	f := build(t, []string{"A", "B", "C"}, "A-B", "B-C")
	_, err := dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["C"], dijkstra.WithMaxDistance(1))
	require.ErrorIs(t, err, dijkstra.ErrNoPathFound)
	_, err = dijkstra.ShortestPath(f.s, f.nodes["A"], f.nodes["C"], dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
}
