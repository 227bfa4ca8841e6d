// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package domain

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/db47h/sketchnet/shape"
	"github.com/pkg/errors"
)

type file struct {
	// Builtin extends the default table instead of starting from scratch.
	Builtin    *bool            `toml:"builtin"`
	Gate       []gateEntry      `toml:"gate"`
	Subcircuit []subcircuitItem `toml:"subcircuit"`
}

type gateEntry struct {
	Name    string `toml:"name"`
	Class   string `toml:"class"`
	Inputs  []int  `toml:"inputs"`
	Outputs []int  `toml:"outputs"`
}

type subcircuitItem struct {
	Name    string `toml:"name"`
	Inputs  string `toml:"inputs"`
	Outputs string `toml:"outputs"`
}

// rangeOf converts a TOML count: [] is 0, [n] is exactly n and [min, max] is
// a range where a negative max means unbounded.
func rangeOf(v []int) (Range, error) {
	switch len(v) {
	case 0:
		return Range{}, nil
	case 1:
		return Exactly(v[0]), nil
	case 2:
		if v[1] < 0 {
			return AtLeast(v[0]), nil
		}
		return Range{v[0], v[1]}, nil
	}
	return Range{}, errors.Errorf("expected at most 2 values, got %d", len(v))
}

// Load reads a domain description in TOML format:
//
//	builtin = true # start from Default(), this is the default
//
//	[[gate]]
//	name = "MUX"
//	class = "gate"
//	inputs = [3]
//	outputs = [1]
//
//	[[subcircuit]]
//	name = "FullAdder"
//	inputs = "a, b, cin"
//	outputs = "sum, cout"
func Load(r io.Reader) (*Table, Library, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode domain")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, nil, errors.Errorf("unknown key %q", keys[0].String())
	}

	t := new(Table)
	if f.Builtin == nil || *f.Builtin {
		t = Default()
	}
	for _, g := range f.Gate {
		k := Kind{Type: shape.Type(g.Name)}
		if k.Class, err = ParseClass(g.Class); err != nil {
			return nil, nil, errors.Wrapf(err, "gate %s", g.Name)
		}
		if k.Inputs, err = rangeOf(g.Inputs); err != nil {
			return nil, nil, errors.Wrapf(err, "gate %s inputs", g.Name)
		}
		if k.Outputs, err = rangeOf(g.Outputs); err != nil {
			return nil, nil, errors.Wrapf(err, "gate %s outputs", g.Name)
		}
		if err = t.Add(k); err != nil {
			return nil, nil, err
		}
	}

	lib := make(Library)
	for _, s := range f.Subcircuit {
		sig, err := NewSignature(s.Name, s.Inputs, s.Outputs)
		if err != nil {
			return nil, nil, err
		}
		if err = lib.Add(sig); err != nil {
			return nil, nil, err
		}
	}
	return t, lib, nil
}

// LoadFile reads a domain description from the named file.
func LoadFile(name string) (*Table, Library, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	t, lib, err := Load(f)
	return t, lib, errors.Wrap(err, name)
}
