package domain_test

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/domain"
)

const (
	opKinds   = 6
	areaSlots = 3 // "", "x", "y"
	asSlots   = 2
)

var areaNames = [areaSlots]string{"", "x", "y"}

// world is a line of five routers with four trunks and two ASes.
type world struct {
	s    *core.Store
	m    *domain.Model
	objs []core.Object
	ases [asSlots]core.ASID
}

func newWorld() *world {
	w := &world{s: core.NewStore()}
	w.m = domain.NewModel(w.s)
	var prev *core.Node
	for i := 0; i < 5; i++ {
		n, _, _ := w.s.NodeFactory(core.KindRouter, fmt.Sprintf("r%d", i))
		w.objs = append(w.objs, n)
		if prev != nil {
			l, _, _ := w.s.LinkFactory(core.TypeTrunk, "", prev.ID, n.ID)
			w.objs = append(w.objs, l)
		}
		prev = n
	}
	for i := range w.ases {
		as, _, _ := w.m.ASFactory(domain.KindOSPF, fmt.Sprintf("as%d", i))
		w.ases[i] = as.ID
		for _, name := range areaNames[1:] {
			_, _, _ = w.m.AreaFactory(as.ID, name)
		}
	}
	return w
}

// apply decodes op into one model mutation. It returns the AS and object
// of the mutation; removed reports whether it was a RemoveFromAS.
func (w *world) apply(op int) (as core.ASID, obj core.Object, removed bool) {
	kind := op % opKinds
	op /= opKinds
	obj = w.objs[op%len(w.objs)]
	op /= len(w.objs)
	area := areaNames[op%areaSlots]
	op /= areaSlots
	as = w.ases[op%asSlots]

	switch kind {
	case 0:
		_ = w.m.AddToAS(as, area, obj)
	case 1:
		_ = w.m.RemoveFromAS(as, obj)
		return as, obj, true
	case 2:
		_ = w.m.AddToArea(as, area, obj)
	case 3:
		_ = w.m.RemoveFromArea(as, area, obj)
	case 4:
		if ref := obj.Ref(); !ref.IsLink {
			_ = w.m.AddToEdges(as, ref.Node)
		}
	case 5:
		if area == "" {
			return as, obj, false
		}
		if _, ok := w.m.AreaByName(as, area); ok {
			_ = w.m.DeleteArea(as, area)
		} else {
			_, _, _ = w.m.AreaFactory(as, area)
		}
	}
	return as, obj, false
}

// TestMembershipInvariants drives random membership sequences and checks
// Area ⊆ AS after every mutation.
func TestMembershipInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	maxOp := opKinds*9*areaSlots*asSlots - 1

	properties.Property("validate holds after every mutation", prop.ForAll(
		func(ops []int) bool {
			w := newWorld()
			for _, op := range ops {
				w.apply(op)
				if err := w.m.Validate(); err != nil {
					t.Log(err)
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, maxOp)),
	))

	properties.Property("removed object leaves the AS and every area", prop.ForAll(
		func(ops []int) bool {
			w := newWorld()
			for _, op := range ops {
				asID, obj, removed := w.apply(op)
				if !removed {
					continue
				}
				if obj.Memberships().InAS(asID) {
					return false
				}
				ref := obj.Ref()
				for area := range w.m.Areas(asID) {
					if ref.IsLink {
						if _, in := area.Links[ref.Link]; in {
							return false
						}
					} else if _, in := area.Nodes[ref.Node]; in {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, maxOp)),
	))

	properties.TestingRun(t)
}
