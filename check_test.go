package sketchnet

import (
	"testing"

	"github.com/db47h/sketchnet/domain"
	"github.com/db47h/sketchnet/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// labelPair draws label A driving label B through wire w.
func labelPair() (*shape.Graph, shape.ID) {
	g := shape.NewGraph()
	a := g.Add(shape.Shape{Name: "A", Type: domain.Text, Bounds: shape.R(0, 0, 10, 10)})
	b := g.Add(shape.Shape{Name: "B", Type: domain.Text, Bounds: shape.R(60, 0, 70, 10)})
	w := g.Add(shape.Shape{Name: "w", Type: domain.Wire, Endpoints: []shape.Endpoint{
		{Pos: shape.Pt(10, 5), Connected: a},
		{Pos: shape.Pt(60, 5), Connected: b},
	}})
	if err := g.Connect(w, a); err != nil {
		panic(err)
	}
	if err := g.Connect(w, b); err != nil {
		panic(err)
	}
	return g, w
}

func TestCheckCircuit_reciprocity(t *testing.T) {
	data := []struct {
		name    string
		corrupt func(p *Parser, w *WireMesh)
		want    int
	}{
		{"output_edge", func(p *Parser, w *WireMesh) {
			p.comps[w.source.Comp].outputs = map[int][]ComponentID{}
		}, 1},
		{"input_edge", func(p *Parser, w *WireMesh) {
			p.comps[w.dependents[0]].inputs = map[int]Port{}
		}, 1},
		{"net_dependent", func(p *Parser, w *WireMesh) {
			p.comps[w.dependents[0]].inWires = nil
		}, 1},
		{"net_source", func(p *Parser, w *WireMesh) {
			p.comps[w.source.Comp].outWires = nil
		}, 1},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			g, wid := labelPair()
			p := NewParser(nil, nil)
			_, err := p.Parse(g)
			require.NoError(t, err)
			w, _ := p.NetFor(wid)
			d.corrupt(p, w)
			p.errs = nil
			p.checkCircuit()
			rec := p.errs.Kind(ReciprocityError)
			assert.Len(t, rec, d.want, "%v", p.errs)
			for _, e := range rec {
				assert.Equal(t, CodeNotReciprocal, e.Code)
			}
		})
	}
}

func TestCheckCircuit_feedsInput(t *testing.T) {
	g, wid := labelPair()
	p := NewParser(nil, nil)
	_, err := p.Parse(g)
	require.NoError(t, err)
	w, _ := p.NetFor(wid)
	a := p.comps[w.source.Comp]
	w.ConnectDependent(a.id)
	a.connectInputWire(w.id)
	p.errs = nil
	p.checkCircuit()
	assert.True(t, p.errs.Has(CodeFeedsInput, "w"))
	assert.True(t, p.errs.Has(CodeInputLabelArity, "A"))
}

func TestSortEntries(t *testing.T) {
	es := []portEntry{
		{pos: shape.Pt(0, 20), owner: 1},
		{pos: shape.Pt(0, 10), owner: 2},
		{pos: shape.Pt(5, 10), owner: 3},
		{pos: shape.Pt(0, 10), owner: 2, index: 1},
		{pos: shape.Pt(0, 10), owner: 1, index: 1},
	}
	sortEntries(es, 0)
	var got []shape.EndpointRef
	for _, e := range es {
		got = append(got, shape.EndpointRef{Shape: e.owner, Index: e.index})
	}
	assert.Equal(t, []shape.EndpointRef{{Shape: 1, Index: 1}, {Shape: 2, Index: 0}, {Shape: 2, Index: 1}, {Shape: 3, Index: 0}, {Shape: 1, Index: 0}}, got)
}
