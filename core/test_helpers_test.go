// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/core"
)

// mustNode creates (or fetches) a router called name.
func mustNode(t testing.TB, s *core.Store, name string) *core.Node {
	t.Helper()
	n, _, err := s.NodeFactory(core.KindRouter, name)
	require.NoError(t, err)
	return n
}

// mustTrunk joins a and b with a trunk called name.
func mustTrunk(t testing.TB, s *core.Store, name string, a, b *core.Node, opts ...core.LinkOption) *core.Link {
	t.Helper()
	l, _, err := s.LinkFactory(core.TypeTrunk, name, a.ID, b.ID, opts...)
	require.NoError(t, err)
	return l
}

// triangle builds a trunk triangle whose node names carry prefix.
func triangle(t testing.TB, s *core.Store, prefix string) []*core.Node {
	t.Helper()
	a := mustNode(t, s, prefix+"1")
	b := mustNode(t, s, prefix+"2")
	c := mustNode(t, s, prefix+"3")
	mustTrunk(t, s, prefix+"12", a, b)
	mustTrunk(t, s, prefix+"23", b, c)
	mustTrunk(t, s, prefix+"31", c, a)
	return []*core.Node{a, b, c}
}

// linkIDs drains a sequence of links into their ids.
func linkIDs(seq iter.Seq[*core.Link]) []core.LinkID {
	var out []core.LinkID
	for l := range seq {
		out = append(out, l.ID)
	}
	return out
}

// nodeNames drains a sequence of nodes into their names.
func nodeNames(seq iter.Seq[*core.Node]) []string {
	var out []string
	for n := range seq {
		out = append(out, n.Name)
	}
	return out
}

// adjacencyHolds reports whether link l is present in the adjacency of node id.
func adjacencyHolds(s *core.Store, id core.NodeID, l core.LinkID) bool {
	for _, link := range s.Adjacent(id) {
		if link.ID == l {
			return true
		}
	}
	return false
}
