package routing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/dijkstra"
	"github.com/katalvlaran/netgraph/domain"
	"github.com/katalvlaran/netgraph/prim_kruskal"
	"github.com/katalvlaran/netgraph/routing"
)

// topo is a square a–b–c–d–a with a shortcut a–c outside the AS,
// plus an isolated member e.
type topo struct {
	s  *core.Store
	m  *domain.Model
	as *domain.AS
	n  map[string]*core.Node
	l  map[string]*core.Link
}

func newTopo(t *testing.T) *topo {
	t.Helper()
	tp := &topo{s: core.NewStore(), n: map[string]*core.Node{}, l: map[string]*core.Link{}}
	tp.m = domain.NewModel(tp.s)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		n, _, err := tp.s.NodeFactory(core.KindRouter, name)
		require.NoError(t, err)
		tp.n[name] = n
	}
	for _, pair := range []string{"ab", "bc", "cd", "da", "ac"} {
		l, _, err := tp.s.LinkFactory(core.TypeTrunk, pair, tp.n[pair[:1]].ID, tp.n[pair[1:]].ID)
		require.NoError(t, err)
		tp.l[pair] = l
	}
	as, _, err := tp.m.ASFactory(domain.KindOSPF, "core")
	require.NoError(t, err)
	tp.as = as
	require.NoError(t, tp.m.AddToAS(as.ID, "", tp.n["a"], tp.n["b"], tp.n["c"], tp.n["d"], tp.n["e"]))
	require.NoError(t, tp.m.AddToAS(as.ID, "", tp.l["ab"], tp.l["bc"], tp.l["cd"], tp.l["da"]))
	return tp
}

func TestDomainShortestPath(t *testing.T) {
	tp := newTopo(t)

	// the global shortest path uses the non-member shortcut
	p, err := dijkstra.ShortestPath(tp.s, tp.n["a"].ID, tp.n["c"].ID)
	require.NoError(t, err)
	require.Equal(t, []core.LinkID{tp.l["ac"].ID}, p.Links)

	p, err = routing.DomainShortestPath(tp.m, tp.n["a"].ID, tp.n["c"].ID, tp.as.ID)
	require.NoError(t, err)
	require.Equal(t, 2, p.Hops())
	require.NotContains(t, p.Links, tp.l["ac"].ID)

	_, err = routing.DomainShortestPath(tp.m, tp.n["a"].ID, tp.n["e"].ID, tp.as.ID)
	require.ErrorIs(t, err, dijkstra.ErrNoPathFound)

	_, err = routing.DomainShortestPath(tp.m, tp.n["a"].ID, tp.n["c"].ID, 404)
	require.ErrorIs(t, err, domain.ErrASNotFound)
}

func TestBuildDomainRoutes(t *testing.T) {
	tp := newTopo(t)
	require.NoError(t, tp.m.AddToEdges(tp.as.ID, tp.n["a"].ID, tp.n["c"].ID, tp.n["e"].ID))

	res, err := routing.BuildDomainRoutes(tp.m, tp.as.ID)
	require.NoError(t, err)
	require.Len(t, res, 3) // (a,c) (a,e) (c,e)

	ac := res[0]
	require.Equal(t, tp.n["a"].ID, ac.A)
	require.Equal(t, tp.n["c"].ID, ac.B)
	require.NoError(t, ac.Err)
	require.True(t, ac.ForwardCreated)
	require.True(t, ac.ReverseCreated)
	require.Equal(t, "route:core:a-c", ac.Forward.Name)
	require.Equal(t, "route:core:c-a", ac.Reverse.Name)
	require.Equal(t, core.TypeRoute, ac.Forward.Type)
	require.Len(t, ac.Forward.Path, 2)
	require.NotContains(t, ac.Forward.Path, tp.l["ac"].ID)
	require.True(t, tp.as.HasLink(ac.Forward.ID))

	// pairs with the isolated edge fail individually
	for _, r := range res[1:] {
		require.ErrorIs(t, r.Err, dijkstra.ErrNoPathFound)
		require.Nil(t, r.Forward)
		require.Nil(t, r.Reverse)
	}
	require.NoError(t, tp.m.Validate())

	// a second run creates nothing new
	routes := tp.s.Stats().RouteCount
	res, err = routing.BuildDomainRoutes(tp.m, tp.as.ID)
	require.NoError(t, err)
	require.False(t, res[0].ForwardCreated)
	require.False(t, res[0].ReverseCreated)
	require.Same(t, ac.Forward, res[0].Forward)
	require.Equal(t, routes, tp.s.Stats().RouteCount)

	_, err = routing.BuildDomainRoutes(tp.m, 404)
	require.ErrorIs(t, err, domain.ErrASNotFound)
}

func TestBuildDomainRoutes_OnlyMissingDirection(t *testing.T) {
	tp := newTopo(t)
	require.NoError(t, tp.m.AddToEdges(tp.as.ID, tp.n["b"].ID, tp.n["d"].ID))

	res, err := routing.BuildDomainRoutes(tp.m, tp.as.ID)
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.True(t, tp.s.RemoveLink(res[0].Reverse.ID))
	tp.m.Detach(nil, []core.LinkID{res[0].Reverse.ID})

	res, err = routing.BuildDomainRoutes(tp.m, tp.as.ID)
	require.NoError(t, err)
	require.False(t, res[0].ForwardCreated)
	require.True(t, res[0].ReverseCreated)
	require.Equal(t, tp.n["d"].ID, res[0].Reverse.Source)
}

func TestRouteNameEscapesSeparators(t *testing.T) {
	s := core.NewStore()
	m := domain.NewModel(s)
	as, _, err := m.ASFactory(domain.KindOSPF, "x")
	require.NoError(t, err)
	var nodes []*core.Node
	for _, name := range []string{"a-b", "c", "a", "b-c"} {
		n, _, err := s.NodeFactory(core.KindRouter, name)
		require.NoError(t, err)
		nodes = append(nodes, n)
		require.NoError(t, m.AddToAS(as.ID, "", n))
	}
	for i := 1; i < len(nodes); i++ {
		l, _, err := s.LinkFactory(core.TypeTrunk, "", nodes[i-1].ID, nodes[i].ID)
		require.NoError(t, err)
		require.NoError(t, m.AddToAS(as.ID, "", l))
	}

	require.Equal(t, `route:x:a\-b-c`, routing.RouteName(as, nodes[0], nodes[1]))
	require.Equal(t, `route:x:a-b\-c`, routing.RouteName(as, nodes[2], nodes[3]))

	require.NoError(t, m.AddToEdges(as.ID, nodes[0].ID, nodes[1].ID, nodes[2].ID, nodes[3].ID))
	res, err := routing.BuildDomainRoutes(m, as.ID)
	require.NoError(t, err)
	require.Len(t, res, 6)
	for _, r := range res {
		require.NoError(t, r.Err)
		require.True(t, r.ForwardCreated)
		require.True(t, r.ReverseCreated)
	}
	require.Equal(t, 12, s.Stats().RouteCount)
	require.NoError(t, m.Validate())
}

func TestRouteTraffic(t *testing.T) {
	tp := newTopo(t)
	demand, _, err := tp.s.LinkFactory(core.TypeTraffic, "demand", tp.n["b"].ID, tp.n["d"].ID)
	require.NoError(t, err)

	p, err := routing.RouteTraffic(tp.s, demand.ID)
	require.NoError(t, err)
	require.Equal(t, 2, p.Hops())
	require.Equal(t, p.Links, demand.Path)

	_, err = routing.RouteTraffic(tp.s, tp.l["ab"].ID)
	require.ErrorIs(t, err, routing.ErrNotTraffic)
	_, err = routing.RouteTraffic(tp.s, 9999)
	require.ErrorIs(t, err, core.ErrLinkNotFound)

	lonely, _, err := tp.s.LinkFactory(core.TypeTraffic, "lonely", tp.n["a"].ID, tp.n["e"].ID)
	require.NoError(t, err)
	_, err = routing.RouteTraffic(tp.s, lonely.ID)
	require.ErrorIs(t, err, dijkstra.ErrNoPathFound)
	require.Empty(t, lonely.Path)
}

func TestDomainSpanningTree(t *testing.T) {
	tp := newTopo(t)
	_, err := routing.DomainSpanningTree(tp.m, tp.as.ID)
	require.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	require.NoError(t, tp.m.RemoveFromAS(tp.as.ID, tp.n["e"]))
	tp.l["da"].CostSD, tp.l["da"].CostDS = 5, 5
	tree, err := routing.DomainSpanningTree(tp.m, tp.as.ID)
	require.NoError(t, err)
	require.Equal(t, int64(3), tree.Cost)
	require.ElementsMatch(t, []core.LinkID{tp.l["ab"].ID, tp.l["bc"].ID, tp.l["cd"].ID}, tree.Links)
	require.NotContains(t, tree.Links, tp.l["ac"].ID)

	empty, _, err := tp.m.ASFactory(domain.KindSTP, "empty")
	require.NoError(t, err)
	tree, err = routing.DomainSpanningTree(tp.m, empty.ID)
	require.NoError(t, err)
	require.Empty(t, tree.Links)

	_, err = routing.DomainSpanningTree(tp.m, 404)
	require.ErrorIs(t, err, domain.ErrASNotFound)
}

func TestDomainLoops(t *testing.T) {
	tp := newTopo(t)
	loops, err := routing.DomainLoops(tp.m, tp.as.ID)
	require.NoError(t, err)
	require.Len(t, loops, 1)
	require.Equal(t,
		[]core.NodeID{tp.n["a"].ID, tp.n["b"].ID, tp.n["c"].ID, tp.n["d"].ID, tp.n["a"].ID},
		loops[0].Nodes)
	require.NotContains(t, loops[0].Links, tp.l["ac"].ID)

	require.NoError(t, tp.m.RemoveFromAS(tp.as.ID, tp.l["da"]))
	loops, err = routing.DomainLoops(tp.m, tp.as.ID)
	require.NoError(t, err)
	require.Empty(t, loops)

	_, err = routing.DomainLoops(tp.m, 404)
	require.ErrorIs(t, err, domain.ErrASNotFound)
}
