// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sketchnet

import (
	"sort"

	"github.com/db47h/sketchnet/shape"
)

// Kind is the variant of a Component.
type Kind int

// Component kinds.
const (
	// Gate is any component built from a gate class shape, including
	// inversion markers and subcircuit instances.
	Gate Kind = iota
	// Input is a text label supplying a value to the circuit.
	Input
	// Output is a text label consuming a value of the circuit.
	Output
)

func (k Kind) String() string {
	switch k {
	case Gate:
		return "gate"
	case Input:
		return "input"
	case Output:
		return "output"
	}
	return "unknown"
}

// A Component is a node of the circuit graph.
//
// Its ports are connected either through nets (InputWires, OutputWires) or,
// for inversion markers glued onto a gate, directly to another component.
// Every input edge (c, port) <- (src, srcPort) is mirrored by an output edge
// src.OutputComponents()[srcPort] containing c.
type Component struct {
	CircuitPart
	id          ComponentID
	kind        Kind
	orientation float64
	center      shape.Point

	inWires   []NetID
	outWires  []NetID
	inDirect  []ComponentID
	outDirect []ComponentID
	outPort   map[ComponentID]int

	inputs  map[int]Port
	outputs map[int][]ComponentID
	numIn   int
	numOut  int
}

func newComponent(id ComponentID, k Kind, s *shape.Shape) *Component {
	return &Component{
		CircuitPart: newPart(s),
		id:          id,
		kind:        k,
		orientation: s.Orientation,
		center:      s.Center(),
		outPort:     make(map[ComponentID]int),
		inputs:      make(map[int]Port),
		outputs:     make(map[int][]ComponentID),
	}
}

// ID returns the component ID.
func (c *Component) ID() ComponentID { return c.id }

// Kind returns the component variant.
func (c *Component) Kind() Kind { return c.kind }

// ShouldBeInput reports whether a connection at position at lies on the
// input side of c, in the frame of its orientation.
func (c *Component) ShouldBeInput(at shape.Point) bool {
	return at.Sub(c.center).Dot(shape.Forward(c.orientation)) < 0
}

// InputComponents returns a copy of the resolved input edges: port index to
// driving component port.
func (c *Component) InputComponents() map[int]Port {
	m := make(map[int]Port, len(c.inputs))
	for k, v := range c.inputs {
		m[k] = v
	}
	return m
}

// OutputComponents returns a copy of the resolved output edges: port index
// to the components reading it.
func (c *Component) OutputComponents() map[int][]ComponentID {
	m := make(map[int][]ComponentID, len(c.outputs))
	for k, v := range c.outputs {
		m[k] = append([]ComponentID(nil), v...)
	}
	return m
}

// HasInput reports whether c reads output port srcPort of src.
func (c *Component) HasInput(src ComponentID, srcPort int) bool {
	p := Port{src, srcPort}
	for _, in := range c.inputs {
		if in == p {
			return true
		}
	}
	return false
}

// HasOutput reports whether dst reads output port of c.
func (c *Component) HasOutput(dst ComponentID, port int) bool {
	for _, d := range c.outputs[port] {
		if d == dst {
			return true
		}
	}
	return false
}

// InputCount returns the number of input ports of c.
func (c *Component) InputCount() int { return c.numIn }

// OutputCount returns the number of output ports of c.
func (c *Component) OutputCount() int { return c.numOut }

// InputWires returns the nets connected to the input side of c.
func (c *Component) InputWires() []NetID { return append([]NetID(nil), c.inWires...) }

// OutputWires returns the nets connected to the output side of c.
func (c *Component) OutputWires() []NetID { return append([]NetID(nil), c.outWires...) }

func (c *Component) connectInputWire(n NetID) {
	if !hasNet(c.inWires, n) {
		c.inWires = append(c.inWires, n)
	}
}

func (c *Component) connectOutputWire(n NetID) {
	if !hasNet(c.outWires, n) {
		c.outWires = append(c.outWires, n)
	}
}

func hasNet(l []NetID, n NetID) bool {
	for _, x := range l {
		if x == n {
			return true
		}
	}
	return false
}

func addComponent(l []ComponentID, c ComponentID) []ComponentID {
	for _, x := range l {
		if x == c {
			return l
		}
	}
	return append(l, c)
}

// sortedPorts returns the keys of m in ascending order.
func sortedPorts[V any](m map[int]V) []int {
	ports := make([]int, 0, len(m))
	for p := range m {
		ports = append(ports, p)
	}
	sort.Ints(ports)
	return ports
}
