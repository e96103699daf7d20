package routing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/dijkstra"
	"github.com/katalvlaran/netgraph/domain"
)

// ErrNotTraffic indicates RouteTraffic was given a link outside the traffic layer.
var ErrNotTraffic = errors.New("routing: link is not a traffic link")

// DomainShortestPath runs dijkstra.ShortestPath over the trunks of as,
// entering only member nodes and traversing only member links. opts are
// applied after the domain restriction, so a caller filter replaces it.
//
// Errors: domain.ErrASNotFound, plus every dijkstra error.
func DomainShortestPath(m *domain.Model, src, dst core.NodeID, as core.ASID, opts ...dijkstra.Option) (*dijkstra.Path, error) {
	owner, ok := m.AS(as)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrASNotFound, as)
	}
	scoped := []dijkstra.Option{
		dijkstra.WithLinkTypes(core.TypeTrunk),
		dijkstra.WithNodeFilter(func(n *core.Node) bool { return owner.HasNode(n.ID) }),
		dijkstra.WithLinkFilter(func(l *core.Link) bool { return owner.HasLink(l.ID) }),
	}

	return dijkstra.ShortestPath(m.Store(), src, dst, append(scoped, opts...)...)
}

// PairResult reports what BuildDomainRoutes did for one pair of edge nodes.
type PairResult struct {
	A, B core.NodeID
	// Forward realizes A→B and Reverse B→A; nil when the direction failed.
	Forward, Reverse *core.Link
	// ForwardCreated and ReverseCreated are false when the route already existed.
	ForwardCreated, ReverseCreated bool
	// Err joins the per-direction failures, typically dijkstra.ErrNoPathFound.
	Err error
}

// routeEscaper escapes the separators of a route name inside its parts, so
// distinct (AS, a, b) triples never share a name.
var routeEscaper = strings.NewReplacer(`\`, `\\`, `:`, `\:`, `-`, `\-`)

// RouteName returns the deterministic name of the route from a to b in as:
// route:<AS>:<a>-<b>, with '\', ':' and '-' inside the names backslash-escaped.
func RouteName(as *domain.AS, a, b *core.Node) string {
	return "route:" + routeEscaper.Replace(as.Name) + ":" +
		routeEscaper.Replace(a.Name) + "-" + routeEscaper.Replace(b.Name)
}

// findRoute returns a route link of as oriented a→b, if any.
func findRoute(s *core.Store, as core.ASID, a, b core.NodeID) *core.Link {
	for l := range s.LinksBetween(a, b, core.TypeRoute) {
		if l.Source == a && l.Domains.InAS(as) {
			return l
		}
	}
	return nil
}

// BuildDomainRoutes creates, for every unordered pair of distinct edge nodes
// of as (ordered by id), the missing route links in each direction. Each new
// route gets the scoped path as its Path, the path cost as its cost in both
// directions, and joins the AS's default Area.
//
// Only an unknown AS is an error; per-pair failures land in PairResult.Err.
func BuildDomainRoutes(m *domain.Model, as core.ASID, opts ...dijkstra.Option) ([]PairResult, error) {
	owner, ok := m.AS(as)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrASNotFound, as)
	}
	edges := owner.EdgeIDs()
	var out []PairResult
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			res := PairResult{A: edges[i], B: edges[j]}
			var errF, errR error
			res.Forward, res.ForwardCreated, errF = ensureRoute(m, owner, res.A, res.B, opts)
			res.Reverse, res.ReverseCreated, errR = ensureRoute(m, owner, res.B, res.A, opts)
			res.Err = errors.Join(errF, errR)
			out = append(out, res)
		}
	}

	return out, nil
}

// ensureRoute returns the a→b route of owner, creating it when missing.
func ensureRoute(m *domain.Model, owner *domain.AS, a, b core.NodeID, opts []dijkstra.Option) (*core.Link, bool, error) {
	s := m.Store()
	if l := findRoute(s, owner.ID, a, b); l != nil {
		return l, false, nil
	}
	p, err := DomainShortestPath(m, a, b, owner.ID, opts...)
	if err != nil {
		return nil, false, err
	}
	na, _ := s.Node(a)
	nb, _ := s.Node(b)
	l, outcome, err := s.LinkFactory(core.TypeRoute, RouteName(owner, na, nb), a, b,
		core.WithPath(p.Links...),
		core.WithCost(p.Cost, p.Cost),
	)
	if err != nil {
		return nil, false, err
	}
	if outcome == core.Existing && (l.Type != core.TypeRoute || l.Source != a || l.Destination != b) {
		return nil, false, fmt.Errorf("routing: name %q is taken by link %d", l.Name, l.ID)
	}
	if err := m.AddToAS(owner.ID, "", l); err != nil {
		return nil, false, err
	}

	return l, outcome == core.Created, nil
}

// RouteTraffic sets the Path of a traffic link to the shortest trunk path
// between its endpoints and returns that path. The link is left untouched on error.
//
// Errors: core.ErrLinkNotFound, ErrNotTraffic, plus every dijkstra error.
func RouteTraffic(s *core.Store, traffic core.LinkID, opts ...dijkstra.Option) (*dijkstra.Path, error) {
	l, ok := s.Link(traffic)
	if !ok {
		return nil, fmt.Errorf("%w: %d", core.ErrLinkNotFound, traffic)
	}
	if l.Type != core.TypeTraffic {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotTraffic, l.Name, l.Type)
	}
	p, err := dijkstra.ShortestPath(s, l.Source, l.Destination, append([]dijkstra.Option{dijkstra.WithLinkTypes(core.TypeTrunk)}, opts...)...)
	if err != nil {
		return nil, err
	}
	l.Path = append([]core.LinkID(nil), p.Links...)

	return p, nil
}
