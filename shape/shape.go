// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package shape describes the classified sketch shapes consumed by the
// netlist builder: their semantic type, geometry and raw adjacency.
//
// Shapes are produced upstream by stroke grouping and classification. This
// package only models them; it does not classify anything.
//
// Coordinates are screen coordinates (y grows downward). A shape with
// Orientation θ (radians) has its input to output axis along (cos θ, -sin θ)
// and stacks its ports along (sin θ, cos θ). Rotating a point by an angle a
// with Point.Rotate keeps this frame consistent, so that rotating a whole
// sketch by a and adding a to every orientation leaves port reading order
// unchanged.
package shape

import (
	"math"
	"strconv"
)

// ID identifies a shape within a Graph. IDs are assigned sequentially at
// ingestion time, starting at 1. The zero value None never identifies a shape.
type ID int

// None is the ID of no shape. An unbound Endpoint is connected to None.
const None ID = 0

// Type is the semantic type of a shape as reported by the classifier, e.g.
// "AND", "Wire" or "Text". The meaning of a Type is defined by a domain table.
type Type string

// Point is a position in sketch coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{x, y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Rotate rotates p by angle around center, in the same direction as a
// positive change of Orientation.
func (p Point) Rotate(angle float64, center Point) Point {
	sin, cos := math.Sincos(angle)
	d := p.Sub(center)
	return Point{
		X: center.X + d.X*cos + d.Y*sin,
		Y: center.Y - d.X*sin + d.Y*cos,
	}
}

// Forward returns the unit vector pointing from the input side to the output
// side of a shape with the given orientation.
func Forward(orientation float64) Point {
	sin, cos := math.Sincos(orientation)
	return Point{cos, -sin}
}

// Across returns the unit vector along which the ports of a shape with the
// given orientation are stacked, in reading order.
func Across(orientation float64) Point {
	sin, cos := math.Sincos(orientation)
	return Point{sin, cos}
}

// Rect is an axis aligned bounding box. The zero Rect is empty.
type Rect struct {
	Min, Max Point
}

// R returns the Rect with corners (x0, y0) and (x1, y1), normalized.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: Point{math.Min(x0, x1), math.Min(y0, y1)},
		Max: Point{math.Max(x0, x1), math.Max(y0, y1)},
	}
}

// Empty reports whether r is the zero Rect.
func (r Rect) Empty() bool { return r == Rect{} }

// Center returns the center of r.
func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Dist returns the distance from p to r, 0 if p is inside r.
func (r Rect) Dist(p Point) float64 {
	dx := math.Max(0, math.Max(r.Min.X-p.X, p.X-r.Max.X))
	dy := math.Max(0, math.Max(r.Min.Y-p.Y, p.Y-r.Max.Y))
	return math.Hypot(dx, dy)
}

// Rotate returns the bounding box of r rotated by angle around center.
func (r Rect) Rotate(angle float64, center Point) Rect {
	if r.Empty() {
		return r
	}
	corners := [4]Point{r.Min, {r.Max.X, r.Min.Y}, r.Max, {r.Min.X, r.Max.Y}}
	out := Rect{Min: Point{math.Inf(1), math.Inf(1)}, Max: Point{math.Inf(-1), math.Inf(-1)}}
	for _, c := range corners {
		c = c.Rotate(angle, center)
		out.Min.X, out.Min.Y = math.Min(out.Min.X, c.X), math.Min(out.Min.Y, c.Y)
		out.Max.X, out.Max.Y = math.Max(out.Max.X, c.X), math.Max(out.Max.Y, c.Y)
	}
	return out
}

// Endpoint is one end of a shape. Wires and not bubbles have two; gates and
// text labels usually have none.
type Endpoint struct {
	Pos Point
	// Connected is the shape this endpoint attaches to, or None.
	Connected ID
}

// EndpointRef identifies an endpoint by its shape and index.
type EndpointRef struct {
	Shape ID
	Index int
}

// A Shape is a classified group of strokes.
type Shape struct {
	ID          ID
	Name        string
	Type        Type
	Orientation float64
	Bounds      Rect
	Endpoints   []Endpoint
	// Connected lists adjacent shapes. Adjacency is undirected: if a lists b,
	// b must list a.
	Connected []ID
	// Subcircuit names the definition a subcircuit shape instantiates.
	Subcircuit string
}

// Center returns the center of the shape bounds, or the mean position of its
// endpoints if it has no bounds.
func (s *Shape) Center() Point {
	if !s.Bounds.Empty() || len(s.Endpoints) == 0 {
		return s.Bounds.Center()
	}
	var c Point
	for _, e := range s.Endpoints {
		c = c.Add(e.Pos)
	}
	n := float64(len(s.Endpoints))
	return Point{c.X / n, c.Y / n}
}

// distTo returns the distance from p to the shape geometry.
func (s *Shape) distTo(p Point) float64 {
	if !s.Bounds.Empty() {
		return s.Bounds.Dist(p)
	}
	d := math.Inf(1)
	for _, e := range s.Endpoints {
		d = math.Min(d, e.Pos.Dist(p))
	}
	return d
}

// ClosestEndpointFrom returns the index of the endpoint of s closest to
// other, or -1 if s has no endpoints. Ties go to the lowest index.
func (s *Shape) ClosestEndpointFrom(other *Shape) int {
	best, bestDist := -1, math.Inf(1)
	for i, e := range s.Endpoints {
		if d := other.distTo(e.Pos); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// IsConnectedTo reports whether id is listed in s.Connected.
func (s *Shape) IsConnectedTo(id ID) bool {
	for _, c := range s.Connected {
		if c == id {
			return true
		}
	}
	return false
}

// String returns the shape name, or its type and id if unnamed.
func (s *Shape) String() string {
	if s.Name != "" {
		return s.Name
	}
	return string(s.Type) + "#" + strconv.Itoa(int(s.ID))
}
