// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sketchnet

import "github.com/db47h/sketchnet/shape"

// CircuitPart binds a node of the circuit graph to the shape it was built
// from.
type CircuitPart struct {
	Shape  shape.ID
	Name   string
	Type   shape.Type
	Bounds shape.Rect
}

func newPart(s *shape.Shape) CircuitPart {
	return CircuitPart{
		Shape:  s.ID,
		Name:   s.String(),
		Type:   s.Type,
		Bounds: s.Bounds,
	}
}

func (p *CircuitPart) String() string { return p.Name }
