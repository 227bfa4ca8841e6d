// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package sketchnet

import (
	"strconv"
	"strings"

	"github.com/db47h/sketchnet/domain"
	"github.com/db47h/sketchnet/shape"
)

// ErrorKind classifies parse diagnostics.
type ErrorKind int

// Diagnostic kinds.
const (
	// StructuralError reports malformed shape adjacency. Structural errors
	// stop the parse before any component is built.
	StructuralError ErrorKind = iota + 1
	// ConnectivityError reports a net with no source, several sources, no
	// dependents, or one that feeds a circuit input.
	ConnectivityError
	// ArityError reports a component with too few or too many ports.
	ArityError
	// ReciprocityError reports an edge recorded on one side only. It denotes
	// a bookkeeping defect, not a drawing mistake.
	ReciprocityError
	// SubcircuitError reports a subcircuit instance whose definition cannot
	// be found.
	SubcircuitError
)

var kindNames = [...]string{
	StructuralError:   "structural",
	ConnectivityError: "connectivity",
	ArityError:        "arity",
	ReciprocityError:  "reciprocity",
	SubcircuitError:   "subcircuit",
}

func (k ErrorKind) String() string {
	if k <= 0 || int(k) >= len(kindNames) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Diagnostic codes.
const (
	CodeUnknownType       = "UNKNOWN_TYPE"
	CodeGateContact       = "GATE_CONTACT"
	CodeBubbleContact     = "BUBBLE_CONTACT"
	CodeWireContact       = "WIRE_CONTACT"
	CodeTextContact       = "TEXT_CONTACT"
	CodeMissingSource     = "MISSING_SOURCE"
	CodeMultipleSources   = "MULTIPLE_SOURCES"
	CodeNoDependents      = "NO_DEPENDENTS"
	CodeFeedsInput        = "FEEDS_INPUT"
	CodeInputArity        = "INPUT_ARITY"
	CodeOutputArity       = "OUTPUT_ARITY"
	CodeInputLabelArity   = "INPUT_LABEL_ARITY"
	CodeOutputLabelArity  = "OUTPUT_LABEL_ARITY"
	CodeNotReciprocal     = "NOT_RECIPROCAL"
	CodeUnknownSubcircuit = "UNKNOWN_SUBCIRCUIT"
	CodeSignatureMismatch = "SIGNATURE_MISMATCH"
)

// ParseError is a single diagnostic about a sketch. ParseErrors are data:
// they are collected and returned, never raised.
type ParseError struct {
	Kind ErrorKind
	// Code is a stable machine readable identifier, e.g. "MISSING_SOURCE".
	Code string
	// Explanation is a short machine oriented description, e.g.
	// "missing source".
	Explanation string
	// Message is meant for the user.
	Message string
	// Shape is the offending shape.
	Shape     shape.ID
	ShapeName string
	// Range and Count are set by arity errors: the allowed range and the
	// actual count.
	Range domain.Range
	Count int
}

func (e *ParseError) Error() string {
	return e.ShapeName + ": " + e.Message
}

// ParseErrors is the list of diagnostics of a failed parse, in the order they
// were found.
type ParseErrors []*ParseError

func (l ParseErrors) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(l)))
	b.WriteString(" errors:")
	for _, e := range l {
		b.WriteString("\n\t")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Has reports whether l contains an error with the given code for the shape
// with the given name. An empty name matches any shape.
func (l ParseErrors) Has(code, name string) bool {
	for _, e := range l {
		if e.Code == code && (name == "" || e.ShapeName == name) {
			return true
		}
	}
	return false
}

// Kind returns the errors of the given kind.
func (l ParseErrors) Kind(k ErrorKind) ParseErrors {
	var r ParseErrors
	for _, e := range l {
		if e.Kind == k {
			r = append(r, e)
		}
	}
	return r
}
