package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/dfs"
)

// TestFindCritical_Dumbbell joins two triangles with a single trunk.
func TestFindCritical_Dumbbell(t *testing.T) {
	s, ids, links := topo(t,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"},
		[2]string{"C", "D"},
		[2]string{"D", "E"}, [2]string{"E", "F"}, [2]string{"F", "D"})
	c, err := dfs.FindCritical(s)
	require.NoError(t, err)
	assert.Equal(t, []core.LinkID{links[3]}, c.Bridges)
	assert.Equal(t, []core.NodeID{ids["C"], ids["D"]}, c.Articulations)
}

func TestFindCritical_PathAndParallel(t *testing.T) {
	s, ids, links := topo(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"B", "C"})
	c, err := dfs.FindCritical(s)
	require.NoError(t, err)
	assert.Equal(t, []core.LinkID{links[0]}, c.Bridges, "parallel trunks back each other up")
	assert.Equal(t, []core.NodeID{ids["B"]}, c.Articulations)

	c, err = dfs.FindCritical(s, dfs.WithNodes(ids["B"], ids["C"]))
	require.NoError(t, err)
	assert.Empty(t, c.Bridges)
	assert.Empty(t, c.Articulations)

	_, err = dfs.FindCritical(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
