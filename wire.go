// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sketchnet

import (
	"strconv"

	"github.com/db47h/sketchnet/shape"
)

// NetID identifies a WireMesh within a parse.
type NetID int

// ComponentID identifies a Component within a parse.
type ComponentID int

// Port is an output or input port of a component.
type Port struct {
	Comp  ComponentID
	Index int
}

// WireMesh is a single electrical net, built from one Wire shape. It has at
// most one driver (its source) and any number of dependents.
type WireMesh struct {
	CircuitPart
	id         NetID
	source     Port
	hasSrc     bool
	rivals     []Port
	dependents []ComponentID
	ends       map[ComponentID][]int
}

func newWireMesh(id NetID, s *shape.Shape) *WireMesh {
	return &WireMesh{
		CircuitPart: newPart(s),
		id:          id,
		ends:        make(map[ComponentID][]int),
	}
}

// ID returns the net ID.
func (w *WireMesh) ID() NetID { return w.id }

// ConnectSource sets the driver of w to output port of c. Setting the same
// driver again is a no-op. Setting a different driver is a logic error and
// panics.
func (w *WireMesh) ConnectSource(c ComponentID, port int) {
	p := Port{c, port}
	if w.hasSrc && w.source != p {
		panic("net " + w.Name + " already driven by component " + strconv.Itoa(int(w.source.Comp)) +
			" port " + strconv.Itoa(w.source.Index))
	}
	w.source, w.hasSrc = p, true
}

// claim is like ConnectSource but records a conflicting driver instead of
// panicking.
func (w *WireMesh) claim(p Port) {
	if !w.hasSrc {
		w.ConnectSource(p.Comp, p.Index)
		return
	}
	if w.source == p {
		return
	}
	for _, r := range w.rivals {
		if r == p {
			return
		}
	}
	w.rivals = append(w.rivals, p)
}

// ConnectDependent adds c to the dependents of w.
func (w *WireMesh) ConnectDependent(c ComponentID) {
	if !w.IsDependent(c) {
		w.dependents = append(w.dependents, c)
	}
}

// HasSource reports whether w has a driver.
func (w *WireMesh) HasSource() bool { return w.hasSrc }

// Source returns the component driving w. The result is meaningless if
// HasSource is false.
func (w *WireMesh) Source() ComponentID { return w.source.Comp }

// SourceIndex returns the output port of Source driving w.
func (w *WireMesh) SourceIndex() int { return w.source.Index }

// Rivals returns the drivers that tried to drive w after its source was set.
func (w *WireMesh) Rivals() []Port { return append([]Port(nil), w.rivals...) }

// Dependents returns the components reading w.
func (w *WireMesh) Dependents() []ComponentID {
	return append([]ComponentID(nil), w.dependents...)
}

// IsDependent reports whether c reads w.
func (w *WireMesh) IsDependent(c ComponentID) bool {
	for _, d := range w.dependents {
		if d == c {
			return true
		}
	}
	return false
}

// ConnectedEndpoints returns the endpoints of the wire shape that attach to
// component c.
func (w *WireMesh) ConnectedEndpoints(c ComponentID) []shape.EndpointRef {
	ends := w.ends[c]
	refs := make([]shape.EndpointRef, len(ends))
	for i, e := range ends {
		refs[i] = shape.EndpointRef{Shape: w.Shape, Index: e}
	}
	return refs
}
