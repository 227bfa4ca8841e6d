// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package domain describes the kinds of shapes a sketch may contain: which
// types are gates, wires or labels, and how many inputs and outputs each gate
// type accepts.
package domain

import (
	"strconv"

	"github.com/db47h/sketchnet/shape"
	"github.com/pkg/errors"
)

// Class is the structural role of a shape type.
type Class int

// Shape classes.
const (
	ClassUnknown Class = iota
	ClassGate
	ClassWire
	ClassText
	ClassNotBubble
	ClassSubcircuit
)

var classNames = [...]string{
	ClassUnknown:    "unknown",
	ClassGate:       "gate",
	ClassWire:       "wire",
	ClassText:       "text",
	ClassNotBubble:  "notbubble",
	ClassSubcircuit: "subcircuit",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "Class(" + strconv.Itoa(int(c)) + ")"
	}
	return classNames[c]
}

// ParseClass returns the class with the given name.
func ParseClass(s string) (Class, error) {
	for i, n := range classNames {
		if i > 0 && n == s {
			return Class(i), nil
		}
	}
	return ClassUnknown, errors.Errorf("unknown shape class %q", s)
}

// Unbounded is the Max of a Range with no upper bound.
const Unbounded = -1

// Range is an inclusive range of port counts.
type Range struct {
	Min, Max int
}

// Exactly returns the range [n, n].
func Exactly(n int) Range { return Range{n, n} }

// AtLeast returns the range [n, ∞).
func AtLeast(n int) Range { return Range{n, Unbounded} }

// Contains reports whether n is within r.
func (r Range) Contains(n int) bool {
	return n >= r.Min && (r.Max == Unbounded || n <= r.Max)
}

func (r Range) String() string {
	switch {
	case r.Max == Unbounded:
		return "[" + strconv.Itoa(r.Min) + ", ∞)"
	case r.Min == r.Max:
		return strconv.Itoa(r.Min)
	}
	return "[" + strconv.Itoa(r.Min) + ", " + strconv.Itoa(r.Max) + "]"
}

// Kind describes a shape type.
type Kind struct {
	Type    shape.Type
	Class   Class
	Inputs  Range
	Outputs Range
}

// Table maps shape types to their Kind. The zero value is an empty table.
type Table struct {
	kinds map[shape.Type]*Kind
	order []shape.Type
}

// NewTable returns a table with the given kinds.
func NewTable(kinds ...Kind) *Table {
	t := new(Table)
	for _, k := range kinds {
		if err := t.Add(k); err != nil {
			panic(err)
		}
	}
	return t
}

// Add adds a kind to the table. Adding a kind for an existing type replaces
// it.
func (t *Table) Add(k Kind) error {
	if k.Type == "" {
		return errors.New("empty shape type")
	}
	if k.Class == ClassUnknown {
		return errors.Errorf("%s: unknown class", k.Type)
	}
	for _, r := range [...]Range{k.Inputs, k.Outputs} {
		if r.Min < 0 || r.Max != Unbounded && r.Max < r.Min {
			return errors.Errorf("%s: invalid range %d..%d", k.Type, r.Min, r.Max)
		}
	}
	if t.kinds == nil {
		t.kinds = make(map[shape.Type]*Kind)
	}
	if _, ok := t.kinds[k.Type]; !ok {
		t.order = append(t.order, k.Type)
	}
	t.kinds[k.Type] = &k
	return nil
}

// Kind returns the kind of shape type typ.
func (t *Table) Kind(typ shape.Type) (Kind, bool) {
	k, ok := t.kinds[typ]
	if !ok {
		return Kind{}, false
	}
	return *k, true
}

// Kinds returns all kinds in the order they were first added.
func (t *Table) Kinds() []Kind {
	ks := make([]Kind, 0, len(t.order))
	for _, typ := range t.order {
		ks = append(ks, *t.kinds[typ])
	}
	return ks
}

// Class returns the class of typ, ClassUnknown if typ is not in the table.
func (t *Table) Class(typ shape.Type) Class {
	if k, ok := t.kinds[typ]; ok {
		return k.Class
	}
	return ClassUnknown
}

// Known reports whether typ is in the table.
func (t *Table) Known(typ shape.Type) bool { return t.Class(typ) != ClassUnknown }

// IsGate reports whether typ is a component type: plain gates, not bubbles
// and subcircuits.
func (t *Table) IsGate(typ shape.Type) bool {
	switch t.Class(typ) {
	case ClassGate, ClassNotBubble, ClassSubcircuit:
		return true
	}
	return false
}

// IsWire reports whether typ is a wire.
func (t *Table) IsWire(typ shape.Type) bool { return t.Class(typ) == ClassWire }

// IsText reports whether typ is a text label.
func (t *Table) IsText(typ shape.Type) bool { return t.Class(typ) == ClassText }

// IsNotBubble reports whether typ is an inversion marker.
func (t *Table) IsNotBubble(typ shape.Type) bool { return t.Class(typ) == ClassNotBubble }

// IsSubcircuit reports whether typ is a subcircuit instance.
func (t *Table) IsSubcircuit(typ shape.Type) bool { return t.Class(typ) == ClassSubcircuit }

// Inputs returns the allowed input count of typ.
func (t *Table) Inputs(typ shape.Type) Range {
	if k, ok := t.kinds[typ]; ok {
		return k.Inputs
	}
	return Range{}
}

// Outputs returns the allowed output count of typ.
func (t *Table) Outputs(typ shape.Type) Range {
	if k, ok := t.kinds[typ]; ok {
		return k.Outputs
	}
	return Range{}
}
