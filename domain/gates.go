// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package domain

import "github.com/db47h/sketchnet/shape"

// Built-in shape types.
const (
	And        shape.Type = "AND"
	Nand       shape.Type = "NAND"
	Or         shape.Type = "OR"
	Nor        shape.Type = "NOR"
	Xor        shape.Type = "XOR"
	Xnor       shape.Type = "XNOR"
	Not        shape.Type = "NOT"
	NotBubble  shape.Type = "NotBubble"
	Subcircuit shape.Type = "Subcircuit"
	Wire       shape.Type = "Wire"
	Text       shape.Type = "Text"
)

// gate returns the kind of an n-way gate with a single output.
func gate(t shape.Type) Kind {
	return Kind{Type: t, Class: ClassGate, Inputs: AtLeast(2), Outputs: Exactly(1)}
}

// Default returns a new table with the built-in kinds:
//
//	AND, NAND, OR, NOR, XOR, XNOR: 2 or more inputs, 1 output
//	NOT: 1 input, 1 output
//	NotBubble: inversion marker, 1 input, 1 output
//	Subcircuit: any number of inputs and outputs, checked against its signature
//	Wire, Text
//
// The returned table can be extended with Add.
func Default() *Table {
	return NewTable(
		gate(And),
		gate(Nand),
		gate(Or),
		gate(Nor),
		gate(Xor),
		gate(Xnor),
		Kind{Type: Not, Class: ClassGate, Inputs: Exactly(1), Outputs: Exactly(1)},
		Kind{Type: NotBubble, Class: ClassNotBubble, Inputs: Exactly(1), Outputs: Exactly(1)},
		Kind{Type: Subcircuit, Class: ClassSubcircuit, Inputs: AtLeast(0), Outputs: AtLeast(0)},
		Kind{Type: Wire, Class: ClassWire},
		Kind{Type: Text, Class: ClassText},
	)
}
