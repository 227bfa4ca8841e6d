// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sketchnet

import "github.com/db47h/sketchnet/shape"

// splice records a direct edge from output side of src to input side of dst.
func splice(src, dst *Component) {
	src.outDirect = addComponent(src.outDirect, dst.id)
	dst.inDirect = addComponent(dst.inDirect, src.id)
}

// resolveBubbles resolves inversion markers.
//
// A marker glued onto a gate sits on the gate's input side if its attaching
// endpoint projects behind the gate center: it then drives the gate directly
// and its wire becomes its input. Otherwise the gate drives the marker and the
// marker's wire is its output. Two markers glued together are resolved once,
// from the one with the lowest shape ID. A marker touching no gate is a
// plain component with one net on each side.
func (p *Parser) resolveBubbles() {
	d := p.domain()
	for _, b := range p.comps {
		if !d.IsNotBubble(b.Type) {
			continue
		}
		bs := p.shapeOf(b)
		var gs *shape.Shape
		for _, n := range p.g.Neighbors(b.Shape) {
			if d.IsGate(n.Type) {
				gs = n
				break
			}
		}
		if gs == nil {
			continue
		}
		g := p.comps[p.compOf[gs.ID]]
		if !d.IsNotBubble(gs.Type) {
			at, _ := attachPoint(bs, gs)
			if g.ShouldBeInput(at) {
				splice(b, g)
			} else {
				splice(g, b)
			}
			continue
		}
		if bs.ID > gs.ID {
			continue
		}
		at, _ := attachPoint(gs, bs)
		if b.ShouldBeInput(at) {
			splice(g, b)
		} else {
			splice(b, g)
		}
	}

	for _, b := range p.comps {
		if !d.IsNotBubble(b.Type) {
			continue
		}
		for _, n := range p.g.Neighbors(b.Shape) {
			if !d.IsWire(n.Type) {
				continue
			}
			w := p.nets[p.netOf[n.ID]]
			at := p.attach(b, w)
			var input bool
			switch {
			case len(b.outDirect) > 0:
				input = true
			case len(b.inDirect) > 0:
				input = false
			default:
				input = b.ShouldBeInput(at)
			}
			if input {
				p.connectInputWire(b, w)
			} else {
				b.connectOutputWire(w.id)
			}
		}
	}
}
