// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package shape

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnknownShape is returned when an ID does not refer to a shape of the
	// graph.
	ErrUnknownShape = errors.New("unknown shape")

	// ErrNotReciprocal is returned by Validate when a shape lists another as
	// connected but the other shape does not list it back.
	ErrNotReciprocal = errors.New("connection is not reciprocal")

	// ErrSelfConnection is returned by Validate when a shape lists itself as
	// connected.
	ErrSelfConnection = errors.New("shape connected to itself")
)

// Graph is a snapshot of classified shapes and their raw adjacency.
//
// The zero value is an empty graph ready to use. A Graph is not safe for
// concurrent use.
type Graph struct {
	shapes []*Shape
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// Add adds a copy of s to the graph, assigns it the next ID and returns that
// ID. The ID and Connected fields of s are ignored: use Connect to add
// adjacency.
func (g *Graph) Add(s Shape) ID {
	id := ID(len(g.shapes) + 1)
	s.ID = id
	s.Connected = nil
	s.Endpoints = append([]Endpoint(nil), s.Endpoints...)
	g.shapes = append(g.shapes, &s)
	return id
}

// Shape returns the shape with the given ID, or nil if there is no such shape.
// The returned pointer refers to the graph's own shape.
func (g *Graph) Shape(id ID) *Shape {
	if id <= None || int(id) > len(g.shapes) {
		return nil
	}
	return g.shapes[id-1]
}

// Lookup returns the first shape with the given name.
func (g *Graph) Lookup(name string) (*Shape, bool) {
	for _, s := range g.shapes {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Shapes returns all shapes in ID order.
func (g *Graph) Shapes() []*Shape {
	return append([]*Shape(nil), g.shapes...)
}

// Len returns the number of shapes in the graph.
func (g *Graph) Len() int { return len(g.shapes) }

// Connect records that shapes a and b touch. Connecting already connected
// shapes is a no-op.
func (g *Graph) Connect(a, b ID) error {
	sa, sb := g.Shape(a), g.Shape(b)
	if sa == nil || sb == nil {
		return ErrUnknownShape
	}
	if a == b {
		return ErrSelfConnection
	}
	if !sa.IsConnectedTo(b) {
		sa.Connected = append(sa.Connected, b)
	}
	if !sb.IsConnectedTo(a) {
		sb.Connected = append(sb.Connected, a)
	}
	return nil
}

// Neighbors returns the shapes adjacent to id, in the order they were
// connected.
func (g *Graph) Neighbors(id ID) []*Shape {
	s := g.Shape(id)
	if s == nil {
		return nil
	}
	out := make([]*Shape, 0, len(s.Connected))
	for _, c := range s.Connected {
		if n := g.Shape(c); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Validate checks the raw adjacency of the graph: every connection must
// refer to an existing shape other than itself and must be listed on both
// sides.
func (g *Graph) Validate() error {
	for _, s := range g.shapes {
		for _, c := range s.Connected {
			o := g.Shape(c)
			switch {
			case o == nil:
				return errors.Wrapf(ErrUnknownShape, "%s lists shape id %d", s, c)
			case o == s:
				return errors.Wrapf(ErrSelfConnection, "%s", s)
			case !o.IsConnectedTo(s.ID):
				return errors.Wrapf(ErrNotReciprocal, "%s lists %s", s, o)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of g. Shape IDs are preserved.
func (g *Graph) Clone() *Graph {
	c := &Graph{shapes: make([]*Shape, len(g.shapes))}
	for i, s := range g.shapes {
		t := *s
		t.Endpoints = append([]Endpoint(nil), s.Endpoints...)
		t.Connected = append([]ID(nil), s.Connected...)
		c.shapes[i] = &t
	}
	return c
}

// Rotate rotates every shape of the graph by angle around center: positions,
// bounds and orientations.
func (g *Graph) Rotate(angle float64, center Point) {
	for _, s := range g.shapes {
		s.Orientation += angle
		s.Bounds = s.Bounds.Rotate(angle, center)
		for i := range s.Endpoints {
			s.Endpoints[i].Pos = s.Endpoints[i].Pos.Rotate(angle, center)
		}
	}
}
