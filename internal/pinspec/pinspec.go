// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package pinspec parses pin lists like "a, b, sum[4]" as used in subcircuit
// signatures. A bus declaration name[n] expands to the n pins name[0] ...
// name[n-1].
package pinspec

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var pinLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[\[\],]`},
})

type pinList struct {
	Pins []*pinDecl `parser:"( @@ ( \",\" @@ )* )?"`
}

type pinDecl struct {
	Pos  lexer.Position
	Name string `parser:"@Ident"`
	Bus  *int   `parser:"( \"[\" @Int \"]\" )?"`
}

var parser = participle.MustBuild[pinList](
	participle.Lexer(pinLexer),
	participle.Elide("Whitespace"),
)

// Pin is a single declared pin or bus.
type Pin struct {
	Name string
	// Width is the bus width, 0 for a single pin.
	Width int
	// Col is the 1-based column of the declaration in the source string.
	Col int
}

// Decl parses spec and returns the declarations it contains, in order, without
// expanding buses.
func Decl(spec string) ([]Pin, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}
	l, err := parser.ParseString("", spec)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pin list %q", spec)
	}
	pins := make([]Pin, 0, len(l.Pins))
	for _, d := range l.Pins {
		p := Pin{Name: d.Name, Col: d.Pos.Column}
		if d.Bus != nil {
			if *d.Bus <= 0 {
				return nil, errors.Errorf("%d: invalid bus width %d for %s", p.Col, *d.Bus, p.Name)
			}
			p.Width = *d.Bus
		}
		pins = append(pins, p)
	}
	return pins, nil
}

// Parse parses spec and returns the expanded list of pin names. Duplicate
// names are an error, whether declared twice or through a bus.
func Parse(spec string) ([]string, error) {
	decl, err := Decl(spec)
	if err != nil || decl == nil {
		return nil, err
	}
	var names []string
	seen := make(map[string]bool)
	add := func(n string, col int) error {
		if seen[n] {
			return errors.Errorf("%d: duplicate pin name %s", col, n)
		}
		seen[n] = true
		names = append(names, n)
		return nil
	}
	for _, p := range decl {
		if p.Width == 0 {
			if err = add(p.Name, p.Col); err != nil {
				return nil, err
			}
			continue
		}
		for i := 0; i < p.Width; i++ {
			if err = add(Bus(p.Name, i), p.Col); err != nil {
				return nil, err
			}
		}
	}
	return names, nil
}

// Bus returns the name of pin i of bus name.
func Bus(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}
