/*
Package sketchnet builds netlists from hand-drawn logic schematics.

Upstream, strokes are grouped and classified into shapes (gates, wires, text
labels, inversion markers) whose adjacency is known but undirected: shape X
touches shape Y. A Parser turns such a shape graph into a directed circuit:
output port 2 of gate A drives input port 0 of gate B. Drawings that cannot be
turned into a valid circuit are diagnosed with a list of ParseError pointing at
the offending shapes.

Parsing goes through these steps:

	check the raw adjacency of shapes (stops at the first batch of errors)
	build one net per wire and one component per gate
	connect gates to their wires and resolve inversion markers
	classify text labels as circuit inputs or outputs
	connect components to each other
	validate nets, port counts and edge reciprocity (collects all errors)
	build the Circuit and check subcircuit signatures

Ports are numbered in reading order in the frame of each component: for a
shape with orientation θ, endpoints are sorted by y·cos θ + x·sin θ. Rotating
a whole drawing does not change the port assignment.
*/
package sketchnet
