// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sketchnet

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/db47h/sketchnet/domain"
	"github.com/db47h/sketchnet/shape"
	"github.com/pkg/errors"
)

// Parser builds circuits from shape graphs.
//
// A Parser can be reused for any number of sketches but must not be used
// concurrently. Parsing the same unmodified graph twice yields identical
// results.
type Parser struct {
	// Domain describes shape types. Defaults to domain.Default().
	Domain *domain.Table
	// Library holds the subcircuit signatures.
	Library domain.Library
	// Logger receives debug traces. nil discards them.
	Logger *log.Logger

	g      *shape.Graph
	comps  []*Component
	nets   []*WireMesh
	compOf map[shape.ID]ComponentID
	netOf  map[shape.ID]NetID
	errs   ParseErrors
}

// NewParser returns a parser for the given domain and subcircuit library.
// A nil table selects domain.Default().
func NewParser(d *domain.Table, lib domain.Library) *Parser {
	return &Parser{Domain: d, Library: lib}
}

var discard = log.New(io.Discard)

func (p *Parser) log() *log.Logger {
	if p.Logger == nil {
		return discard
	}
	return p.Logger
}

func (p *Parser) domain() *domain.Table {
	if p.Domain == nil {
		p.Domain = domain.Default()
	}
	return p.Domain
}

// Parse builds the circuit drawn in g.
//
// On failure, the returned error is a ParseErrors holding every diagnostic.
// Structural errors in the shape adjacency stop the parse early and no
// components are built; otherwise all connectivity, arity and subcircuit
// errors are collected.
//
// Parse panics if g itself is inconsistent (see shape.Graph.Validate): such
// graphs are a bug of the code that built them.
//
// Parse may bind unbound wire endpoints of g to the component they attach to.
func (p *Parser) Parse(g *shape.Graph) (*Circuit, error) {
	p.reset(g)
	if err := g.Validate(); err != nil {
		panic(errors.Wrap(err, "sketchnet: invalid shape graph"))
	}
	l := p.log()
	l.Debug("parse", "shapes", g.Len())

	if p.checkSketch(); len(p.errs) > 0 {
		l.Debug("structural errors", "count", len(p.errs))
		return nil, p.errs
	}

	p.build()
	p.connectGates()
	p.classifyLabels()
	p.connectAll()
	l.Debug("graph built", "components", len(p.comps), "nets", len(p.nets))

	if p.checkCircuit(); len(p.errs) > 0 {
		l.Debug("circuit errors", "count", len(p.errs))
		return nil, p.errs
	}
	c := p.circuit()
	if p.checkSubcircuits(); len(p.errs) > 0 {
		l.Debug("subcircuit errors", "count", len(p.errs))
		return nil, p.errs
	}
	return c, nil
}

func (p *Parser) reset(g *shape.Graph) {
	p.g = g
	p.comps = nil
	p.nets = nil
	p.compOf = make(map[shape.ID]ComponentID)
	p.netOf = make(map[shape.ID]NetID)
	p.errs = nil
}

// Errors returns the diagnostics of the last parse.
func (p *Parser) Errors() ParseErrors { return p.errs }

// Components returns the components built by the last parse.
func (p *Parser) Components() []*Component { return append([]*Component(nil), p.comps...) }

// Nets returns the nets built by the last parse.
func (p *Parser) Nets() []*WireMesh { return append([]*WireMesh(nil), p.nets...) }

// Component returns the component with the given ID.
func (p *Parser) Component(id ComponentID) *Component { return p.comps[id] }

// Net returns the net with the given ID.
func (p *Parser) Net(id NetID) *WireMesh { return p.nets[id] }

// ComponentFor returns the component built from shape id.
func (p *Parser) ComponentFor(id shape.ID) (*Component, bool) {
	c, ok := p.compOf[id]
	if !ok {
		return nil, false
	}
	return p.comps[c], true
}

// NetFor returns the net built from shape id.
func (p *Parser) NetFor(id shape.ID) (*WireMesh, bool) {
	n, ok := p.netOf[id]
	if !ok {
		return nil, false
	}
	return p.nets[n], true
}

func (p *Parser) shapeOf(c *Component) *shape.Shape { return p.g.Shape(c.Shape) }

func (p *Parser) newComponent(k Kind, s *shape.Shape) *Component {
	c := newComponent(ComponentID(len(p.comps)), k, s)
	p.comps = append(p.comps, c)
	p.compOf[s.ID] = c.id
	return c
}

// build creates one net per wire and one component per gate class shape.
func (p *Parser) build() {
	d := p.domain()
	for _, s := range p.g.Shapes() {
		switch {
		case d.IsWire(s.Type):
			n := newWireMesh(NetID(len(p.nets)), s)
			p.nets = append(p.nets, n)
			p.netOf[s.ID] = n.id
		case d.IsGate(s.Type):
			p.newComponent(Gate, s)
		}
	}
}

// attach records that wire w touches component c and returns the position
// of its first attaching endpoint.
func (p *Parser) attach(c *Component, w *WireMesh) shape.Point {
	ws := p.g.Shape(w.Shape)
	ends := bindEndpoints(ws, p.shapeOf(c))
	w.ends[c.id] = ends
	if len(ends) == 0 {
		return ws.Center()
	}
	return ws.Endpoints[ends[0]].Pos
}

func (p *Parser) connectInputWire(c *Component, w *WireMesh) {
	c.connectInputWire(w.id)
	w.ConnectDependent(c.id)
}

// connectGates connects every gate to its wires, resolves inversion markers
// and lets gates claim the nets they drive.
func (p *Parser) connectGates() {
	d := p.domain()
	for _, c := range p.comps {
		if d.IsNotBubble(c.Type) {
			continue
		}
		for _, n := range p.g.Neighbors(c.Shape) {
			if !d.IsWire(n.Type) {
				continue
			}
			w := p.nets[p.netOf[n.ID]]
			if c.ShouldBeInput(p.attach(c, w)) {
				p.connectInputWire(c, w)
			} else {
				c.connectOutputWire(w.id)
			}
		}
	}
	p.resolveBubbles()
	for _, c := range p.comps {
		p.connectAllOutputs(c)
	}
	for _, c := range p.comps {
		p.orderInputs(c)
	}
}

// connectAll materializes every component to component edge once all nets
// have their sources.
func (p *Parser) connectAll() {
	for _, c := range p.comps {
		c.inputs = make(map[int]Port)
		c.outputs = make(map[int][]ComponentID)
	}
	for _, c := range p.comps {
		p.connectAllOutputs(c)
	}
	for _, c := range p.comps {
		p.orderInputs(c)
	}
}

// connectInput records that input port of c reads src, and the mirror output
// edge on src.
func (p *Parser) connectInput(c *Component, port int, src Port) {
	c.inputs[port] = src
	s := p.comps[src.Comp]
	s.outputs[src.Index] = addComponent(s.outputs[src.Index], c.id)
}

// inputEntries returns the endpoints attached to the input side of c, in port
// order.
func (p *Parser) inputEntries(c *Component) []portEntry {
	var es []portEntry
	for _, n := range c.inWires {
		es = append(es, p.wireEntries(c, p.nets[n], false)...)
	}
	for _, d := range c.inDirect {
		es = append(es, p.linkEntry(c, p.comps[d]))
	}
	sortEntries(es, c.orientation)
	return es
}

// wireEntries returns the port entries of net w for component c: one per
// attaching endpoint, or only the first one in reading order if single is
// set.
func (p *Parser) wireEntries(c *Component, w *WireMesh, single bool) []portEntry {
	ws := p.g.Shape(w.Shape)
	ends := w.ends[c.id]
	if len(ends) == 0 {
		return []portEntry{{pos: ws.Center(), owner: ws.ID, index: -1, net: w.id}}
	}
	es := make([]portEntry, 0, len(ends))
	for _, e := range ends {
		es = append(es, portEntry{pos: ws.Endpoints[e].Pos, owner: ws.ID, index: e, net: w.id})
	}
	if single && len(es) > 1 {
		sortEntries(es, c.orientation)
		es = es[:1]
	}
	return es
}

// linkEntry returns the port entry of a direct link between c and marker
// component d. The anchor is the marker endpoint facing the other component.
func (p *Parser) linkEntry(c, d *Component) portEntry {
	cs, ds := p.shapeOf(c), p.shapeOf(d)
	var (
		pos   shape.Point
		owner = ds.ID
		idx   int
	)
	if len(ds.Endpoints) > 0 || len(cs.Endpoints) == 0 {
		pos, idx = attachPoint(ds, cs)
	} else {
		pos, idx = attachPoint(cs, ds)
		owner = cs.ID
	}
	return portEntry{pos: pos, owner: owner, index: idx, direct: d.id, isLink: true}
}

// orderInputs assigns input ports of c in reading order and resolves the
// component driving each of them.
func (p *Parser) orderInputs(c *Component) {
	es := p.inputEntries(c)
	c.numIn = len(es)
	for i, e := range es {
		if !e.isLink {
			if w := p.nets[e.net]; w.HasSource() {
				p.connectInput(c, i, w.source)
			}
			continue
		}
		d := p.comps[e.direct]
		port, ok := d.outPort[c.id]
		if !ok {
			p.connectAllOutputs(d)
			port = d.outPort[c.id]
		}
		p.connectInput(c, i, Port{d.id, port})
	}
}

// connectAllOutputs assigns output ports of c and claims the nets it drives.
// Gates get one port per output net or direct link, in reading order. Labels
// drive all their output nets from port 0.
func (p *Parser) connectAllOutputs(c *Component) {
	if c.kind != Gate {
		for _, n := range c.outWires {
			p.nets[n].claim(Port{c.id, 0})
		}
		if len(c.outWires) > 0 {
			c.numOut = 1
		}
		return
	}
	var es []portEntry
	for _, n := range c.outWires {
		es = append(es, p.wireEntries(c, p.nets[n], true)...)
	}
	for _, d := range c.outDirect {
		es = append(es, p.linkEntry(c, p.comps[d]))
	}
	sortEntries(es, c.orientation)
	c.numOut = len(es)
	for i, e := range es {
		if !e.isLink {
			p.nets[e.net].claim(Port{c.id, i})
			continue
		}
		d := p.comps[e.direct]
		if old, ok := c.outPort[d.id]; ok && old == i {
			continue
		}
		c.outPort[d.id] = i
		if p.domain().IsNotBubble(d.Type) {
			p.orderInputs(d)
		}
	}
}
