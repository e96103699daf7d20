package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/builder"
	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/matrix"
)

func TestDense(t *testing.T) {
	_, err := matrix.NewDense(0, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	c := m.Clone()
	require.NoError(t, c.Set(1, 2, 0))
	v, _ = m.At(1, 2)
	require.Equal(t, 4.5, v)
	require.Equal(t, "[0, 0, 0]\n[0, 0, 4.5]\n", m.String())

	require.ErrorIs(t, matrix.FloydWarshall(m), matrix.ErrNonSquare)
}

func TestFloydWarshall(t *testing.T) {
	inf := math.Inf(1)
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	rows := [][]float64{
		{0, 4, 1},
		{inf, 0, inf},
		{inf, 2, 0},
	}
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	require.NoError(t, matrix.FloydWarshall(m))
	v, _ := m.At(0, 1)
	require.Equal(t, 3.0, v)
	v, _ = m.At(1, 0)
	require.True(t, math.IsInf(v, 1))
}

func TestAdjacency(t *testing.T) {
	s := core.NewStore()
	groups, err := builder.Apply(s, nil, builder.Star(4))
	require.NoError(t, err)
	ids := groups[0]
	// a parallel spoke and a route that must be ignored
	_, _, err = s.LinkFactory(core.TypeTrunk, "", ids[0], ids[1])
	require.NoError(t, err)
	_, _, err = s.LinkFactory(core.TypeRoute, "", ids[1], ids[2])
	require.NoError(t, err)

	a, err := matrix.NewAdjacency(s)
	require.NoError(t, err)
	require.Equal(t, ids, a.Nodes)
	v, _ := a.Mat.At(0, 1)
	require.Equal(t, 2.0, v)
	v, _ = a.Mat.At(1, 2)
	require.Zero(t, v)

	d, err := a.Degree(ids[0])
	require.NoError(t, err)
	require.Equal(t, 4, d)

	a, err = matrix.NewAdjacency(s, matrix.WithLinkTypes(core.TypeTrunk, core.TypeRoute), matrix.WithNodes(ids[1], ids[2]))
	require.NoError(t, err)
	d, err = a.Degree(ids[2])
	require.NoError(t, err)
	require.Equal(t, 1, d)
	_, err = a.Degree(ids[0])
	require.ErrorIs(t, err, matrix.ErrUnknownNode)

	_, err = matrix.NewAdjacency(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
	_, err = matrix.NewAdjacency(s, matrix.WithNodes(999))
	require.ErrorIs(t, err, matrix.ErrUnknownNode)
	_, err = matrix.NewAdjacency(core.NewStore())
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDistances(t *testing.T) {
	s := core.NewStore()
	groups, err := builder.Apply(s, nil, builder.Path(4))
	require.NoError(t, err)
	ids := groups[0]

	d, err := matrix.NewDistances(s)
	require.NoError(t, err)
	v, ok := d.Between(ids[0], ids[3])
	require.True(t, ok)
	require.Equal(t, 3.0, v)
	require.Equal(t, 3.0, d.Diameter())
	e, err := d.Eccentricity(ids[1])
	require.NoError(t, err)
	require.Equal(t, 2.0, e)

	// directional costs: forward cheap, backward expensive
	for l := range s.Links(core.TypeTrunk) {
		l.CostSD, l.CostDS = 1, 5
	}
	d, err = matrix.NewDistances(s, matrix.WithCosts())
	require.NoError(t, err)
	v, _ = d.Between(ids[0], ids[3])
	require.Equal(t, 3.0, v)
	v, _ = d.Between(ids[3], ids[0])
	require.Equal(t, 15.0, v)

	// a filtered link disconnects the selection
	d, err = matrix.NewDistances(s, matrix.WithLinkFilter(func(l *core.Link) bool {
		return !(l.Source == ids[1] && l.Destination == ids[2])
	}))
	require.NoError(t, err)
	_, ok = d.Between(ids[0], ids[3])
	require.False(t, ok)
	require.True(t, math.IsInf(d.Diameter(), 1))

	for l := range s.Links(core.TypeTrunk) {
		l.CostDS = -1
		break
	}
	_, err = matrix.NewDistances(s, matrix.WithCosts())
	require.ErrorIs(t, err, matrix.ErrNegativeCost)
}
