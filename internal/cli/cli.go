// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the sketchnet command line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/db47h/sketchnet/domain"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	domainFile string
	verbose    bool
}

// New returns a CLI logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// RootCommand returns the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sketchnet",
		Short:         "sketchnet builds netlists from sketched logic schematics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.Logger.SetLevel(LogDebug)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.domainFile, "domain", "", "domain description file (TOML)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.kindsCommand())
	return root
}

// loadDomain returns the domain table and subcircuit library selected by the
// --domain flag.
func (c *CLI) loadDomain() (*domain.Table, domain.Library, error) {
	if c.domainFile == "" {
		return domain.Default(), make(domain.Library), nil
	}
	t, lib, err := domain.LoadFile(c.domainFile)
	if err != nil {
		return nil, nil, errors.Wrap(err, "load domain")
	}
	c.Logger.Debug("domain loaded", "file", c.domainFile, "kinds", len(t.Kinds()), "subcircuits", len(lib))
	return t, lib, nil
}
