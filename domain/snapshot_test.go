package domain_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/domain"
)

// populated returns a world with memberships in both ASes and an edge.
func populated(t *testing.T) *world {
	t.Helper()
	w := newWorld()
	// objs alternate nodes and links: r0, r1, r0-r1, r2, r1-r2, r3, ...
	// r0, r1 and their link go to as0/x; r2 to as0's default area; r3 to as1 only
	require.NoError(t, w.m.AddToAS(w.ases[0], "x", w.objs[0], w.objs[1], w.objs[2]))
	require.NoError(t, w.m.AddToAS(w.ases[0], "", w.objs[3]))
	require.NoError(t, w.m.AddToAS(w.ases[1], "nowhere", w.objs[5]))
	require.NoError(t, w.m.AddToEdges(w.ases[0], w.objs[3].Ref().Node))
	require.NoError(t, w.m.Validate())
	return w
}

func TestExportImportRoundTrip(t *testing.T) {
	src := populated(t)
	want := src.m.Export()
	require.Len(t, want.ASes, 2)
	require.Len(t, want.Areas, 6)
	require.Equal(t, []string{"r2"}, want.ASes[0].Edges)

	var buf bytes.Buffer
	require.NoError(t, src.m.EncodeYAML(&buf))
	require.Contains(t, buf.String(), "autonomous_systems:")

	// decode into a fresh model over the same store
	fresh := domain.NewModel(src.s)
	require.NoError(t, src.m.DeleteAS(src.ases[0]))
	require.NoError(t, src.m.DeleteAS(src.ases[1]))
	require.NoError(t, fresh.DecodeYAML(&buf))
	require.NoError(t, fresh.Validate())

	if diff := cmp.Diff(want, fresh.Export()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}

	r0, _ := src.s.NodeByName("r0")
	as0, ok := fresh.ASByName("as0")
	require.True(t, ok)
	x, _ := fresh.AreaByName(as0.ID, "x")
	require.True(t, r0.Domains.InArea(as0.ID, x.ID))

	// counters continue after the imported ids
	as2, _, err := fresh.ASFactory(domain.KindBGP, "as2")
	require.NoError(t, err)
	require.Greater(t, as2.ID, as0.ID)
}

func TestImportRejectsUnknownMember(t *testing.T) {
	w := populated(t)
	before := w.m.Export()

	snap := w.m.Export()
	snap.ASes[0].Nodes = append(snap.ASes[0].Nodes, "ghost")
	require.ErrorIs(t, w.m.Import(snap), domain.ErrUnknownMember)

	snap = w.m.Export()
	snap.Areas[0].AS = "nope"
	require.ErrorIs(t, w.m.Import(snap), domain.ErrASNotFound)

	snap = w.m.Export()
	snap.ASes[1].Kind = "eigrp"
	require.ErrorIs(t, w.m.Import(snap), core.ErrInvalidKind)

	if diff := cmp.Diff(before, w.m.Export()); diff != "" {
		t.Fatalf("failed import changed the model (-before +after):\n%s", diff)
	}
}

func TestImportCreatesMissingDefaultArea(t *testing.T) {
	s := core.NewStore()
	m := domain.NewModel(s)
	doc := `
autonomous_systems:
  - name: core
    kind: isis
    id: 7
areas: []
`
	require.NoError(t, m.DecodeYAML(strings.NewReader(doc)))
	as, ok := m.ASByName("core")
	require.True(t, ok)
	require.Equal(t, core.ASID(7), as.ID)
	_, ok = m.AreaByName(as.ID, domain.DefaultAreaName)
	require.True(t, ok)
	require.NoError(t, m.Validate())
}

func TestImportAssignsIDsToRecordsWithoutOne(t *testing.T) {
	s := core.NewStore()
	for _, name := range []string{"r1", "r2"} {
		_, _, err := s.NodeFactory(core.KindRouter, name)
		require.NoError(t, err)
	}
	m := domain.NewModel(s)
	doc := `
autonomous_systems:
  - name: east
    kind: ospf
    nodes: [r1]
  - name: west
    kind: ospf
    nodes: [r2]
  - name: core
    kind: bgp
    id: 4
areas:
  - name: dmz
    as: east
`
	require.NoError(t, m.DecodeYAML(strings.NewReader(doc)))
	require.NoError(t, m.Validate())
	require.Equal(t, 3, m.ASCount())

	east, ok := m.ASByName("east")
	require.True(t, ok)
	west, ok := m.ASByName("west")
	require.True(t, ok)
	require.Equal(t, core.ASID(5), east.ID)
	require.Equal(t, core.ASID(6), west.ID)

	r1, _ := s.NodeByName("r1")
	r2, _ := s.NodeByName("r2")
	require.Equal(t, []core.NodeID{r1.ID}, east.NodeIDs())
	require.Equal(t, []core.NodeID{r2.ID}, west.NodeIDs())

	_, ok = m.AreaByName(east.ID, "dmz")
	require.True(t, ok)
}

func TestImportRejectsDuplicateIDs(t *testing.T) {
	w := populated(t)
	before := w.m.Export()

	snap := w.m.Export()
	snap.ASes[1].ID = snap.ASes[0].ID
	require.ErrorIs(t, w.m.Import(snap), core.ErrDuplicateName)

	snap = w.m.Export()
	snap.Areas[1].ID = snap.Areas[0].ID
	require.ErrorIs(t, w.m.Import(snap), core.ErrDuplicateName)

	snap = w.m.Export()
	snap.Areas = append(snap.Areas, domain.AreaRecord{Name: snap.Areas[0].Name, AS: snap.Areas[0].AS})
	require.ErrorIs(t, w.m.Import(snap), core.ErrDuplicateName)

	if diff := cmp.Diff(before, w.m.Export()); diff != "" {
		t.Fatalf("failed import changed the model (-before +after):\n%s", diff)
	}
}
