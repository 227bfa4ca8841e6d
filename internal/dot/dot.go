// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package dot exports netlists to Graphviz.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/db47h/sketchnet"
	"github.com/goccy/go-graphviz"
	"github.com/pkg/errors"
)

// ToDOT converts a netlist to Graphviz DOT format, laid out left to right.
// Circuit inputs and outputs are drawn as ellipses, other parts as boxes.
// Edges are labeled "from_port:port".
func ToDOT(n *sketchnet.Netlist) string {
	var buf bytes.Buffer
	buf.WriteString("digraph circuit {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, fontsize=12];\n")

	io := make(map[string]bool, len(n.Inputs)+len(n.Outputs))
	for _, s := range n.Inputs {
		io[s] = true
	}
	for _, s := range n.Outputs {
		io[s] = true
	}
	for _, p := range n.Parts {
		label := p.Name
		switch {
		case io[p.Name]:
		case p.Subcircuit != "":
			label += "\n" + p.Subcircuit
		default:
			label += "\n" + p.Type
		}
		if io[p.Name] {
			fmt.Fprintf(&buf, "  %q [label=%q, shape=ellipse];\n", p.Name, label)
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", p.Name, label)
	}
	for _, p := range n.Parts {
		for _, in := range p.Inputs {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"%d:%d\"];\n", in.From, p.Name, in.FromPort, in.Port)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(err, "render")
	}
	return buf.Bytes(), nil
}
