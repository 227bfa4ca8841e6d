// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sketchnet

import (
	"strconv"

	"github.com/db47h/sketchnet/domain"
	"github.com/db47h/sketchnet/shape"
)

func (p *Parser) report(e *ParseError) {
	p.errs = append(p.errs, e)
}

func (p *Parser) errorf(k ErrorKind, code, explanation string, part *CircuitPart, msg string) *ParseError {
	e := &ParseError{
		Kind:        k,
		Code:        code,
		Explanation: explanation,
		Message:     msg,
		Shape:       part.Shape,
		ShapeName:   part.Name,
	}
	p.report(e)
	return e
}

// checkSketch checks the raw adjacency of the shapes:
//
//	gates touch only wires and inversion markers
//	an inversion marker touches exactly two shapes, at most one gate and no text
//	wires do not touch other wires
//	text touches only wires
func (p *Parser) checkSketch() {
	d := p.domain()
	for _, s := range p.g.Shapes() {
		part := newPart(s)
		if !d.Known(s.Type) {
			p.errorf(StructuralError, CodeUnknownType, "unknown type", &part,
				"unknown shape type "+strconv.Quote(string(s.Type)))
			continue
		}
		ns := p.g.Neighbors(s.ID)
		switch d.Class(s.Type) {
		case domain.ClassGate, domain.ClassSubcircuit:
			for _, n := range ns {
				if !d.IsWire(n.Type) && !d.IsNotBubble(n.Type) {
					p.errorf(StructuralError, CodeGateContact, "gate touches "+d.Class(n.Type).String(), &part,
						"gate touches "+n.String()+": gates can only connect to wires")
				}
			}
		case domain.ClassNotBubble:
			p.checkBubble(s, &part, ns)
		case domain.ClassWire:
			for _, n := range ns {
				if d.IsWire(n.Type) {
					p.errorf(StructuralError, CodeWireContact, "wire touches wire", &part,
						"wire touches wire "+n.String())
				}
			}
		case domain.ClassText:
			for _, n := range ns {
				if !d.IsWire(n.Type) {
					p.errorf(StructuralError, CodeTextContact, "text touches "+d.Class(n.Type).String(), &part,
						"label touches "+n.String()+": labels can only connect to wires")
				}
			}
		}
	}
}

func (p *Parser) checkBubble(s *shape.Shape, part *CircuitPart, ns []*shape.Shape) {
	d := p.domain()
	if len(ns) != 2 {
		p.errorf(StructuralError, CodeBubbleContact, "marker contact count", part,
			"inversion marker must touch exactly 2 shapes, touches "+strconv.Itoa(len(ns))).Count = len(ns)
	}
	gates := 0
	for _, n := range ns {
		switch {
		case d.IsGate(n.Type):
			gates++
		case d.IsText(n.Type):
			p.errorf(StructuralError, CodeBubbleContact, "marker touches text", part,
				"inversion marker touches label "+n.String())
		}
	}
	if gates > 1 {
		p.errorf(StructuralError, CodeBubbleContact, "marker touches several gates", part,
			"inversion marker touches "+strconv.Itoa(gates)+" gates").Count = gates
	}
}

// checkCircuit validates the component graph and reports every violation.
func (p *Parser) checkCircuit() {
	for _, w := range p.nets {
		p.checkNet(w)
	}
	d := p.domain()
	for _, c := range p.comps {
		switch c.kind {
		case Gate:
			p.checkArity(c, CodeInputArity, "inputs", d.Inputs(c.Type), c.numIn)
			p.checkArity(c, CodeOutputArity, "outputs", d.Outputs(c.Type), c.numOut)
		case Input:
			if len(c.outWires) == 0 {
				p.arityError(c, CodeInputLabelArity, "input has no output", domain.AtLeast(1), 0,
					"input label is not connected to any wire")
			}
			if len(c.inWires) > 0 {
				p.arityError(c, CodeInputLabelArity, "input has inputs", domain.Exactly(0), len(c.inWires),
					"input label reads a driven wire")
			}
		case Output:
			if n := len(c.inWires); n != 1 {
				p.arityError(c, CodeOutputLabelArity, "output input count", domain.Exactly(1), n,
					"output label must read exactly one wire, reads "+strconv.Itoa(n))
			}
		}
		p.checkWiresReciprocity(c)
		p.checkEdgesReciprocity(c)
	}
}

func (p *Parser) checkNet(w *WireMesh) {
	if !w.hasSrc {
		p.errorf(ConnectivityError, CodeMissingSource, "missing source", &w.CircuitPart,
			"wire is not driven by any gate or input")
	} else {
		if len(w.rivals) > 0 {
			p.errorf(ConnectivityError, CodeMultipleSources, "multiple sources", &w.CircuitPart,
				"wire is driven by "+strconv.Itoa(len(w.rivals)+1)+" outputs").Count = len(w.rivals) + 1
		}
		src := p.comps[w.source.Comp]
		if !hasNet(src.outWires, w.id) {
			p.errorf(ReciprocityError, CodeNotReciprocal, "source does not drive net", &w.CircuitPart,
				"wire source "+src.Name+" does not list it as output")
		}
	}
	if len(w.dependents) == 0 {
		p.errorf(ConnectivityError, CodeNoDependents, "no dependents", &w.CircuitPart,
			"wire is not read by any gate or output")
	}
	for _, id := range w.dependents {
		dep := p.comps[id]
		if dep.kind == Input {
			p.errorf(ConnectivityError, CodeFeedsInput, "feeds input", &w.CircuitPart,
				"wire drives input label "+dep.Name)
		}
		if !hasNet(dep.inWires, w.id) {
			p.errorf(ReciprocityError, CodeNotReciprocal, "dependent does not read net", &w.CircuitPart,
				"wire dependent "+dep.Name+" does not list it as input")
		}
	}
}

func (p *Parser) arityError(c *Component, code, explanation string, r domain.Range, have int, msg string) {
	e := p.errorf(ArityError, code, explanation, &c.CircuitPart, msg)
	e.Range, e.Count = r, have
}

func (p *Parser) checkArity(c *Component, code, what string, r domain.Range, have int) {
	if r.Contains(have) {
		return
	}
	p.arityError(c, code, "wrong number of "+what, r, have,
		string(c.Type)+" needs "+r.String()+" "+what+", has "+strconv.Itoa(have))
}

// checkWiresReciprocity checks that nets know about the wires of c.
func (p *Parser) checkWiresReciprocity(c *Component) {
	for _, n := range c.inWires {
		if w := p.nets[n]; !w.IsDependent(c.id) {
			p.errorf(ReciprocityError, CodeNotReciprocal, "net does not list dependent", &c.CircuitPart,
				"input wire "+w.Name+" does not list "+c.Name+" as dependent")
		}
	}
	for _, n := range c.outWires {
		if w := p.nets[n]; w.hasSrc && w.source.Comp != c.id && !hasPort(w.rivals, c.id) {
			p.errorf(ReciprocityError, CodeNotReciprocal, "net does not list source", &c.CircuitPart,
				"output wire "+w.Name+" is not driven by "+c.Name)
		}
	}
}

// checkEdgesReciprocity checks that every component to component edge of c
// is mirrored on the other side.
func (p *Parser) checkEdgesReciprocity(c *Component) {
	for _, port := range sortedPorts(c.inputs) {
		src := c.inputs[port]
		if !p.comps[src.Comp].HasOutput(c.id, src.Index) {
			p.errorf(ReciprocityError, CodeNotReciprocal, "input edge not mirrored", &c.CircuitPart,
				"input "+strconv.Itoa(port)+" reads "+p.comps[src.Comp].Name+" which does not list it")
		}
	}
	for _, port := range sortedPorts(c.outputs) {
		for _, d := range c.outputs[port] {
			if !p.comps[d].HasInput(c.id, port) {
				p.errorf(ReciprocityError, CodeNotReciprocal, "output edge not mirrored", &c.CircuitPart,
					"output "+strconv.Itoa(port)+" drives "+p.comps[d].Name+" which does not read it")
			}
		}
	}
}

func hasPort(l []Port, c ComponentID) bool {
	for _, x := range l {
		if x.Comp == c {
			return true
		}
	}
	return false
}

// checkSubcircuits checks subcircuit instances against their signature.
func (p *Parser) checkSubcircuits() {
	d := p.domain()
	for _, c := range p.comps {
		if !d.IsSubcircuit(c.Type) {
			continue
		}
		name := p.shapeOf(c).Subcircuit
		sig, ok := p.Library.Lookup(name)
		if !ok {
			p.errorf(SubcircuitError, CodeUnknownSubcircuit, "unknown subcircuit", &c.CircuitPart,
				"unknown subcircuit "+strconv.Quote(name))
			continue
		}
		if n := len(sig.Inputs); c.numIn != n {
			p.arityError(c, CodeSignatureMismatch, "subcircuit inputs", domain.Exactly(n), c.numIn,
				name+" has "+strconv.Itoa(n)+" inputs, "+strconv.Itoa(c.numIn)+" connected")
		}
		if n := len(sig.Outputs); c.numOut != n {
			p.arityError(c, CodeSignatureMismatch, "subcircuit outputs", domain.Exactly(n), c.numOut,
				name+" has "+strconv.Itoa(n)+" outputs, "+strconv.Itoa(c.numOut)+" connected")
		}
	}
}
