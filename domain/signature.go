// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package domain

import (
	"sort"

	"github.com/db47h/sketchnet/internal/pinspec"
	"github.com/pkg/errors"
)

// Signature is the interface of a subcircuit definition: its name and the
// ordered names of its input and output pins.
type Signature struct {
	Name    string
	Inputs  []string
	Outputs []string
}

// NewSignature returns the signature of subcircuit name from pin lists like
// "a, b, cin" and "sum[4], cout". A pin name may not appear in both lists.
func NewSignature(name, inputs, outputs string) (*Signature, error) {
	if name == "" {
		return nil, errors.New("subcircuit with no name")
	}
	in, err := pinspec.Parse(inputs)
	if err != nil {
		return nil, errors.Wrapf(err, "subcircuit %s inputs", name)
	}
	out, err := pinspec.Parse(outputs)
	if err != nil {
		return nil, errors.Wrapf(err, "subcircuit %s outputs", name)
	}
	for _, o := range out {
		for _, i := range in {
			if i == o {
				return nil, errors.Errorf("subcircuit %s: pin %s is both input and output", name, o)
			}
		}
	}
	return &Signature{Name: name, Inputs: in, Outputs: out}, nil
}

// MustSignature is like NewSignature but panics on error.
func MustSignature(name, inputs, outputs string) *Signature {
	s, err := NewSignature(name, inputs, outputs)
	if err != nil {
		panic(err)
	}
	return s
}

// Library is a set of subcircuit signatures keyed by name.
type Library map[string]*Signature

// Add adds s to the library. It is an error to add two signatures with the
// same name.
func (l Library) Add(s *Signature) error {
	if _, ok := l[s.Name]; ok {
		return errors.Errorf("subcircuit %s already defined", s.Name)
	}
	l[s.Name] = s
	return nil
}

// Lookup returns the signature for name.
func (l Library) Lookup(name string) (*Signature, bool) {
	s, ok := l[name]
	return s, ok
}

// Names returns the sorted names of all signatures in l.
func (l Library) Names() []string {
	names := make([]string, 0, len(l))
	for n := range l {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
