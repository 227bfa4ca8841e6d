// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package shape

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

type sketchFile struct {
	Shape []shapeEntry `toml:"shape"`
}

type shapeEntry struct {
	Name        string          `toml:"name"`
	Type        string          `toml:"type"`
	Orientation float64         `toml:"orientation"`
	Bounds      []float64       `toml:"bounds"`
	Endpoint    []endpointEntry `toml:"endpoint"`
	Connected   []string        `toml:"connected"`
	Subcircuit  string          `toml:"subcircuit"`
}

type endpointEntry struct {
	X  float64 `toml:"x"`
	Y  float64 `toml:"y"`
	To string  `toml:"to"`
}

// Load reads a sketch from r. The expected format is TOML, one [[shape]]
// table per shape:
//
//	[[shape]]
//	name = "w1"
//	type = "Wire"
//	connected = ["a", "g1"]
//
//	  [[shape.endpoint]]
//	  x = 0.0
//	  y = 10.0
//	  to = "a"
//
// Shapes get IDs in file order. Connections are undirected: listing a
// neighbour on either side is enough. An endpoint bound to a shape implies a
// connection to that shape.
func Load(r io.Reader) (*Graph, error) {
	var f sketchFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, errors.Wrap(err, "decode sketch")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("unknown key %q", keys[0].String())
	}

	g := NewGraph()
	names := make(map[string]ID, len(f.Shape))
	for i := range f.Shape {
		e := &f.Shape[i]
		if e.Name == "" {
			return nil, errors.Errorf("shape #%d: missing name", i+1)
		}
		if _, ok := names[e.Name]; ok {
			return nil, errors.Errorf("shape %s: duplicate name", e.Name)
		}
		if strings.TrimSpace(e.Type) == "" {
			return nil, errors.Errorf("shape %s: missing type", e.Name)
		}
		s := Shape{
			Name:        e.Name,
			Type:        Type(e.Type),
			Orientation: e.Orientation,
			Subcircuit:  e.Subcircuit,
		}
		switch len(e.Bounds) {
		case 0:
		case 4:
			s.Bounds = R(e.Bounds[0], e.Bounds[1], e.Bounds[2], e.Bounds[3])
		default:
			return nil, errors.Errorf("shape %s: bounds must have 4 values, got %d", e.Name, len(e.Bounds))
		}
		for _, ep := range e.Endpoint {
			s.Endpoints = append(s.Endpoints, Endpoint{Pos: Pt(ep.X, ep.Y)})
		}
		names[e.Name] = g.Add(s)
	}

	resolve := func(from, name string) (ID, error) {
		id, ok := names[name]
		if !ok {
			return None, errors.Errorf("shape %s: unknown shape %q", from, name)
		}
		return id, nil
	}
	for i := range f.Shape {
		e := &f.Shape[i]
		id := names[e.Name]
		for _, n := range e.Connected {
			o, err := resolve(e.Name, n)
			if err != nil {
				return nil, err
			}
			if err = g.Connect(id, o); err != nil {
				return nil, errors.Wrapf(err, "shape %s", e.Name)
			}
		}
		for j, ep := range e.Endpoint {
			if ep.To == "" {
				continue
			}
			o, err := resolve(e.Name, ep.To)
			if err != nil {
				return nil, err
			}
			if err = g.Connect(id, o); err != nil {
				return nil, errors.Wrapf(err, "shape %s", e.Name)
			}
			g.Shape(id).Endpoints[j].Connected = o
		}
	}
	return g, nil
}

// LoadFile reads a sketch from the named file.
func LoadFile(name string) (*Graph, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := Load(f)
	return g, errors.Wrap(err, name)
}
