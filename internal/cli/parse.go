// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/db47h/sketchnet"
	"github.com/db47h/sketchnet/internal/dot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

type parseOpts struct {
	format string
	output string
	jobs   int
}

func (c *CLI) parseCommand() *cobra.Command {
	var opts parseOpts
	cmd := &cobra.Command{
		Use:   "parse <sketch.toml>...",
		Short: "Build the netlist of sketch files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runParse(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json, dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "number of concurrent parsers (default GOMAXPROCS)")
	return cmd
}

func (c *CLI) runParse(cmd *cobra.Command, files []string, opts parseOpts) error {
	switch opts.format {
	case formatText, formatJSON, formatDOT:
	case formatSVG:
		if len(files) != 1 {
			return errors.New("svg output requires a single sketch")
		}
	default:
		return errors.Errorf("unknown format %q", opts.format)
	}

	t, lib, err := c.loadDomain()
	if err != nil {
		return err
	}
	rs := parseFiles(cmd.Context(), files, opts.jobs, t, lib, c.Logger)
	for _, r := range rs {
		if r.Err != nil {
			c.Logger.Debug("parse failed", "file", r.File, "err", r.Err)
		}
	}

	w := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		w = f
	}
	if err := c.writeResults(cmd, w, rs, opts.format); err != nil {
		return err
	}
	if n := failures(rs); n > 0 {
		return errors.Errorf("%d of %d sketches failed", n, len(rs))
	}
	return nil
}

func (c *CLI) writeResults(cmd *cobra.Command, w io.Writer, rs []result, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(jsonResults(rs)), "encode json")
	case formatDOT:
		for _, r := range rs {
			if r.Err != nil {
				printText(cmd.ErrOrStderr(), r)
				continue
			}
			if _, err := io.WriteString(w, dot.ToDOT(r.Circuit.Netlist())); err != nil {
				return errors.Wrap(err, "write dot")
			}
		}
	case formatSVG:
		r := rs[0]
		if r.Err != nil {
			printText(cmd.ErrOrStderr(), r)
			return nil
		}
		svg, err := dot.RenderSVG(cmd.Context(), dot.ToDOT(r.Circuit.Netlist()))
		if err != nil {
			return err
		}
		if _, err = w.Write(svg); err != nil {
			return errors.Wrap(err, "write svg")
		}
	default:
		for _, r := range rs {
			printText(w, r)
		}
	}
	return nil
}

type jsonError struct {
	Kind    string `json:"kind,omitempty"`
	Code    string `json:"code,omitempty"`
	Shape   string `json:"shape,omitempty"`
	Message string `json:"message"`
}

type jsonResult struct {
	File    string             `json:"file"`
	Netlist *sketchnet.Netlist `json:"netlist,omitempty"`
	Errors  []jsonError        `json:"errors,omitempty"`
}

func jsonResults(rs []result) []jsonResult {
	out := make([]jsonResult, 0, len(rs))
	for _, r := range rs {
		jr := jsonResult{File: r.File}
		var errs sketchnet.ParseErrors
		switch {
		case r.Err == nil:
			jr.Netlist = r.Circuit.Netlist()
		case errors.As(r.Err, &errs):
			for _, e := range errs {
				jr.Errors = append(jr.Errors, jsonError{
					Kind:    e.Kind.String(),
					Code:    e.Code,
					Shape:   e.ShapeName,
					Message: e.Message,
				})
			}
		default:
			jr.Errors = []jsonError{{Message: fmt.Sprint(r.Err)}}
		}
		out = append(out, jr)
	}
	return out
}
