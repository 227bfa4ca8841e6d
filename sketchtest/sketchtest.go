// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package sketchtest provides utility functions for testing sketch parsing.
//
// Shapes are referred to by name. Gates are 40x30 boxes with their top left
// corner at the given position, labels are 10x10 boxes and inversion markers
// 8x8 boxes centered on the given position with an endpoint on their left and
// right edges.
package sketchtest

import (
	"math"
	"testing"

	"github.com/db47h/sketchnet"
	"github.com/db47h/sketchnet/domain"
	"github.com/db47h/sketchnet/shape"
)

// Sketch builds a shape graph.
type Sketch struct {
	g *shape.Graph
}

// New returns an empty sketch.
func New() *Sketch {
	return &Sketch{g: shape.NewGraph()}
}

// ID returns the ID of the named shape. It panics if there is no such shape.
func (s *Sketch) ID(name string) shape.ID {
	sh, ok := s.g.Lookup(name)
	if !ok {
		panic("no shape named " + name)
	}
	return sh.ID
}

// Graph returns the sketch's shape graph.
func (s *Sketch) Graph() *shape.Graph { return s.g }

// Gate adds a gate of the given type with its top left corner at (x, y).
func (s *Sketch) Gate(name string, typ shape.Type, x, y float64) *Sketch {
	s.g.Add(shape.Shape{Name: name, Type: typ, Bounds: shape.R(x, y, x+40, y+30)})
	return s
}

// Sub adds a w x h subcircuit instance of definition def.
func (s *Sketch) Sub(name, def string, x, y, w, h float64) *Sketch {
	s.g.Add(shape.Shape{Name: name, Type: domain.Subcircuit, Subcircuit: def, Bounds: shape.R(x, y, x+w, y+h)})
	return s
}

// Text adds a label with its top left corner at (x, y).
func (s *Sketch) Text(name string, x, y float64) *Sketch {
	s.g.Add(shape.Shape{Name: name, Type: domain.Text, Bounds: shape.R(x, y, x+10, y+10)})
	return s
}

// Bubble adds an inversion marker centered on (x, y), oriented left to
// right.
func (s *Sketch) Bubble(name string, x, y float64) *Sketch {
	s.g.Add(shape.Shape{
		Name:      name,
		Type:      domain.NotBubble,
		Bounds:    shape.R(x-4, y-4, x+4, y+4),
		Endpoints: []shape.Endpoint{{Pos: shape.Pt(x-4, y)}, {Pos: shape.Pt(x+4, y)}},
	})
	return s
}

// Wire adds a wire from a to b. ends optionally names the shapes the first
// and second endpoints attach to; an empty name leaves an endpoint unbound.
func (s *Sketch) Wire(name string, a, b shape.Point, ends ...string) *Sketch {
	id := s.g.Add(shape.Shape{
		Name:      name,
		Type:      domain.Wire,
		Endpoints: []shape.Endpoint{{Pos: a}, {Pos: b}},
	})
	for i, n := range ends {
		if n == "" {
			continue
		}
		o := s.ID(n)
		s.g.Shape(id).Endpoints[i].Connected = o
		s.connect(id, o)
	}
	return s
}

// Glue connects shapes a and b and binds the endpoint of a closest to b, if
// any.
func (s *Sketch) Glue(a, b string) *Sketch {
	ia, ib := s.ID(a), s.ID(b)
	s.connect(ia, ib)
	sa := s.g.Shape(ia)
	if i := sa.ClosestEndpointFrom(s.g.Shape(ib)); i >= 0 {
		sa.Endpoints[i].Connected = ib
	}
	return s
}

// Connect connects the named shapes without binding endpoints.
func (s *Sketch) Connect(a, b string) *Sketch {
	s.connect(s.ID(a), s.ID(b))
	return s
}

func (s *Sketch) connect(a, b shape.ID) {
	if err := s.g.Connect(a, b); err != nil {
		panic(err)
	}
}

// Rotated returns a copy of g rotated by angle around the center of its
// shapes.
func Rotated(g *shape.Graph, angle float64) *shape.Graph {
	r := g.Clone()
	if r.Len() == 0 {
		return r
	}
	lo := shape.Pt(math.Inf(1), math.Inf(1))
	hi := shape.Pt(math.Inf(-1), math.Inf(-1))
	for _, s := range r.Shapes() {
		c := s.Center()
		lo = shape.Pt(math.Min(lo.X, c.X), math.Min(lo.Y, c.Y))
		hi = shape.Pt(math.Max(hi.X, c.X), math.Max(hi.Y, c.Y))
	}
	r.Rotate(angle, shape.Pt((lo.X+hi.X)/2, (lo.Y+hi.Y)/2))
	return r
}

// AndGate returns a sketch of a 2 input AND gate g with input labels A and
// B on wires wa and wb, and output label Y on wire wy.
func AndGate() *Sketch {
	return New().
		Text("A", 40, 100).
		Text("B", 40, 120).
		Gate("g", domain.And, 100, 100).
		Text("Y", 190, 110).
		Wire("wa", shape.Pt(50, 105), shape.Pt(100, 105), "A", "g").
		Wire("wb", shape.Pt(50, 125), shape.Pt(100, 125), "B", "g").
		Wire("wy", shape.Pt(140, 115), shape.Pt(190, 115), "g", "Y")
}

// CheckReciprocal checks that every input edge recorded by the parser is
// mirrored by an output edge on its source, and vice versa.
func CheckReciprocal(t *testing.T, p *sketchnet.Parser) {
	t.Helper()
	for _, c := range p.Components() {
		for port, src := range c.InputComponents() {
			if !p.Component(src.Comp).HasOutput(c.ID(), src.Index) {
				t.Errorf("%s input %d reads %s:%d which does not list it", c.Name, port, p.Component(src.Comp).Name, src.Index)
			}
		}
		for port, dsts := range c.OutputComponents() {
			for _, d := range dsts {
				if !p.Component(d).HasInput(c.ID(), port) {
					t.Errorf("%s output %d drives %s which does not read it", c.Name, port, p.Component(d).Name)
				}
			}
		}
	}
}

// CheckArity checks that every gate of the last parse has port counts within
// the range declared by the domain.
func CheckArity(t *testing.T, p *sketchnet.Parser) {
	t.Helper()
	d := p.Domain
	for _, c := range p.Components() {
		if c.Kind() != sketchnet.Gate {
			continue
		}
		if r := d.Inputs(c.Type); !r.Contains(c.InputCount()) {
			t.Errorf("%s: %d inputs, want %s", c.Name, c.InputCount(), r)
		}
		if r := d.Outputs(c.Type); !r.Contains(c.OutputCount()) {
			t.Errorf("%s: %d outputs, want %s", c.Name, c.OutputCount(), r)
		}
	}
}
