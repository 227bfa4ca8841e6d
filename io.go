// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sketchnet

// classifyLabels turns text labels into circuit inputs and outputs.
//
// A label touching a net that already has a source reads it: it becomes an
// Output, and the other nets it touches are driven by it. A label touching
// only unsourced nets becomes an Input driving all of them. Labels are
// classified in shape order, so the first of two labels sharing a bare wire
// is the input. Labels touching nothing are ignored.
func (p *Parser) classifyLabels() {
	d := p.domain()
	for _, s := range p.g.Shapes() {
		if !d.IsText(s.Type) || len(s.Connected) == 0 {
			continue
		}
		var nets []*WireMesh
		sourced := false
		for _, n := range p.g.Neighbors(s.ID) {
			if id, ok := p.netOf[n.ID]; ok {
				w := p.nets[id]
				nets = append(nets, w)
				sourced = sourced || w.HasSource()
			}
		}
		if !sourced {
			c := p.newComponent(Input, s)
			for _, w := range nets {
				p.attach(c, w)
				c.connectOutputWire(w.id)
				w.claim(Port{c.id, 0})
			}
			continue
		}
		c := p.newComponent(Output, s)
		for _, w := range nets {
			p.attach(c, w)
			if w.HasSource() {
				p.connectInputWire(c, w)
				continue
			}
			c.connectOutputWire(w.id)
			w.claim(Port{c.id, 0})
		}
	}
}
