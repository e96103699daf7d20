// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/bfs"
	"github.com/katalvlaran/netgraph/builder"
	"github.com/katalvlaran/netgraph/core"
)

func TestShapes(t *testing.T) {
	cases := []struct {
		name          string
		con           builder.Constructor
		nodes, trunks int
	}{
		{"path", builder.Path(5), 5, 4},
		{"cycle", builder.Cycle(6), 6, 6},
		{"star", builder.Star(5), 5, 4},
		{"wheel", builder.Wheel(5), 5, 8},
		{"complete", builder.Complete(5), 5, 10},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"single", builder.Complete(1), 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := builder.BuildStore(nil, nil, tc.con)
			require.NoError(t, err)
			st := s.Stats()
			require.Equal(t, tc.nodes, st.NodeCount)
			require.Equal(t, tc.trunks, st.TrunkCount)
			require.Len(t, bfs.ConnectedComponents(s), 1)
		})
	}
}

func TestTooFew(t *testing.T) {
	for _, con := range []builder.Constructor{
		builder.Path(1), builder.Cycle(2), builder.Star(1),
		builder.Wheel(3), builder.Complete(0), builder.Grid(0, 3), builder.Grid(2, 0),
	} {
		_, err := builder.BuildStore(nil, nil, con)
		require.ErrorIs(t, err, builder.ErrTooFewNodes)
	}
}

func TestOptions(t *testing.T) {
	s, err := builder.BuildStore(nil, []builder.BuilderOption{
		builder.WithNamePrefix("sw"),
		builder.WithNodeKind(core.KindSwitch),
		builder.WithCost(7),
		builder.WithCapacity(40),
		builder.WithOrigin(10, 20),
		builder.WithSpacing(50),
	}, builder.Path(3))
	require.NoError(t, err)

	n, ok := s.NodeByName("sw2")
	require.True(t, ok)
	require.Equal(t, core.KindSwitch, n.Kind)
	require.Equal(t, 110.0, n.X)
	require.Equal(t, 20.0, n.Y)
	for l := range s.Links(core.TypeTrunk) {
		require.Equal(t, int64(7), l.CostSD)
		require.Equal(t, int64(7), l.CostDS)
		require.Equal(t, int64(40), l.CapacitySD)
		require.Equal(t, int64(40), l.CapacityDS)
	}
}

func TestCostRangeIsDeterministic(t *testing.T) {
	costs := func() []int64 {
		s, err := builder.BuildStore(nil, []builder.BuilderOption{
			builder.WithSeed(42), builder.WithCostRange(1, 9),
		}, builder.Complete(6))
		require.NoError(t, err)
		var out []int64
		for l := range s.Links() {
			require.GreaterOrEqual(t, l.CostSD, int64(1))
			require.LessOrEqual(t, l.CostSD, int64(9))
			out = append(out, l.CostSD)
		}
		return out
	}
	require.Equal(t, costs(), costs())

	_, err := builder.BuildStore(nil, []builder.BuilderOption{builder.WithCostRange(1, 9)}, builder.Path(2))
	require.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestOptionViolations(t *testing.T) {
	for _, opt := range []builder.BuilderOption{
		builder.WithNamePrefix(""),
		builder.WithNodeKind(core.NodeKind(99)),
		builder.WithCost(-1),
		builder.WithCapacity(-1),
		builder.WithCostRange(5, 2),
		builder.WithSpacing(0),
	} {
		_, err := builder.BuildStore(nil, []builder.BuilderOption{opt}, builder.Path(2))
		require.ErrorIs(t, err, builder.ErrOptionViolation)
	}
}

func TestApplyRejectsNameClashAndNil(t *testing.T) {
	s := core.NewStore()
	ids, err := builder.Apply(s, nil, builder.Path(2))
	require.NoError(t, err)
	require.Len(t, ids, 1)

	_, err = builder.Apply(s, nil, builder.Cycle(3))
	require.ErrorIs(t, err, builder.ErrNameTaken)

	_, err = builder.Apply(s, []builder.BuilderOption{builder.WithNamePrefix("x")}, builder.Cycle(3), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}
