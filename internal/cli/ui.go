// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/db47h/sketchnet"
	"github.com/pkg/errors"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleCode    = lipgloss.NewStyle().Foreground(colorGray)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "←"
)

// printText writes a human readable report of r.
func printText(w io.Writer, r result) {
	if r.Err == nil {
		n := r.Circuit.Netlist()
		fmt.Fprintf(w, "%s %s %d inputs, %d outputs, %d parts\n",
			styleSuccess.Render(iconSuccess), styleTitle.Render(r.File),
			len(n.Inputs), len(n.Outputs), len(n.Parts))
		for _, p := range n.Parts {
			if len(p.Inputs) == 0 {
				continue
			}
			srcs := make([]string, len(p.Inputs))
			for i, in := range p.Inputs {
				srcs[i] = fmt.Sprintf("%s:%d", in.From, in.FromPort)
			}
			fmt.Fprintf(w, "  %s %s %s\n", p.Name, styleDim.Render(iconArrow), strings.Join(srcs, ", "))
		}
		return
	}
	var errs sketchnet.ParseErrors
	if !errors.As(r.Err, &errs) {
		fmt.Fprintf(w, "%s %s %v\n", styleError.Render(iconError), styleTitle.Render(r.File), r.Err)
		return
	}
	fmt.Fprintf(w, "%s %s %d errors\n", styleError.Render(iconError), styleTitle.Render(r.File), len(errs))
	for _, e := range errs {
		fmt.Fprintf(w, "  %s %s %s\n", e.ShapeName, styleCode.Render("["+e.Kind.String()+" "+e.Code+"]"), e.Message)
	}
}
