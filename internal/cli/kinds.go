// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (c *CLI) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the shape types and subcircuits of the domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, lib, err := c.loadDomain()
			if err != nil {
				return err
			}
			var rows [][]string
			for _, k := range t.Kinds() {
				rows = append(rows, []string{string(k.Type), k.Class.String(), k.Inputs.String(), k.Outputs.String()})
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, renderTable([]string{"TYPE", "CLASS", "INPUTS", "OUTPUTS"}, rows))

			names := lib.Names()
			if len(names) == 0 {
				return nil
			}
			rows = nil
			for _, n := range names {
				sig, _ := lib.Lookup(n)
				rows = append(rows, []string{n, strings.Join(sig.Inputs, ", "), strings.Join(sig.Outputs, ", ")})
			}
			fmt.Fprintln(w, renderTable([]string{"SUBCIRCUIT", "INPUTS", "OUTPUTS"}, rows))
			return nil
		},
	}
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}
