// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sketchnet

import (
	"encoding/json"
	"sort"

	"github.com/db47h/sketchnet/shape"
)

// Source is an output port of a shape.
type Source struct {
	Shape shape.ID
	Port  int
}

// Circuit is the netlist built by a successful parse, keyed by shape.
type Circuit struct {
	// Connections maps each reading shape to its input ports and the output
	// port driving each of them.
	Connections map[shape.ID]map[int]Source
	// InputShapes and OutputShapes are the labels classified as circuit
	// inputs and outputs, in shape order.
	InputShapes  []shape.ID
	OutputShapes []shape.ID
	// Subcircuits binds subcircuit shapes to the name of their definition.
	Subcircuits map[shape.ID]string
	// Parts holds every component of the circuit.
	Parts map[shape.ID]CircuitPart
}

func (p *Parser) circuit() *Circuit {
	c := &Circuit{
		Connections: make(map[shape.ID]map[int]Source),
		Subcircuits: make(map[shape.ID]string),
		Parts:       make(map[shape.ID]CircuitPart, len(p.comps)),
	}
	d := p.domain()
	for _, comp := range p.comps {
		c.Parts[comp.Shape] = comp.CircuitPart
		switch comp.kind {
		case Input:
			c.InputShapes = append(c.InputShapes, comp.Shape)
		case Output:
			c.OutputShapes = append(c.OutputShapes, comp.Shape)
		}
		if d.IsSubcircuit(comp.Type) {
			c.Subcircuits[comp.Shape] = p.shapeOf(comp).Subcircuit
		}
		if len(comp.inputs) == 0 {
			continue
		}
		m := make(map[int]Source, len(comp.inputs))
		for port, src := range comp.inputs {
			m[port] = Source{p.comps[src.Comp].Shape, src.Index}
		}
		c.Connections[comp.Shape] = m
	}
	sortIDs(c.InputShapes)
	sortIDs(c.OutputShapes)
	return c
}

func sortIDs(ids []shape.ID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// Sources returns the sources of the input ports of shape id, in port order.
// Unconnected ports are skipped.
func (c *Circuit) Sources(id shape.ID) []Source {
	m := c.Connections[id]
	srcs := make([]Source, 0, len(m))
	for _, port := range sortedPorts(m) {
		srcs = append(srcs, m[port])
	}
	return srcs
}

// Name returns the name of the part built from shape id.
func (c *Circuit) Name(id shape.ID) string {
	p, ok := c.Parts[id]
	if !ok {
		return ""
	}
	return p.Name
}

// Netlist is a name based view of a Circuit with a deterministic order,
// suitable for serialization.
type Netlist struct {
	Inputs  []string  `json:"inputs"`
	Outputs []string  `json:"outputs"`
	Parts   []NetPart `json:"parts"`
}

// NetPart is a component of a Netlist.
type NetPart struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Subcircuit string   `json:"subcircuit,omitempty"`
	Inputs     []NetPin `json:"inputs,omitempty"`
}

// NetPin connects an input port of a part to an output port of another.
type NetPin struct {
	Port     int    `json:"port"`
	From     string `json:"from"`
	FromPort int    `json:"from_port"`
}

// Netlist returns the name based view of c. Parts are listed in shape order.
func (c *Circuit) Netlist() *Netlist {
	n := &Netlist{Inputs: []string{}, Outputs: []string{}, Parts: []NetPart{}}
	for _, id := range c.InputShapes {
		n.Inputs = append(n.Inputs, c.Name(id))
	}
	for _, id := range c.OutputShapes {
		n.Outputs = append(n.Outputs, c.Name(id))
	}
	ids := make([]shape.ID, 0, len(c.Parts))
	for id := range c.Parts {
		ids = append(ids, id)
	}
	sortIDs(ids)
	for _, id := range ids {
		part := c.Parts[id]
		np := NetPart{Name: part.Name, Type: string(part.Type), Subcircuit: c.Subcircuits[id]}
		m := c.Connections[id]
		for _, port := range sortedPorts(m) {
			np.Inputs = append(np.Inputs, NetPin{Port: port, From: c.Name(m[port].Shape), FromPort: m[port].Port})
		}
		n.Parts = append(n.Parts, np)
	}
	return n
}

// MarshalJSON encodes the netlist view of c.
func (c *Circuit) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Netlist())
}
