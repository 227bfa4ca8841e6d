// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"os"
	"time"

	"github.com/db47h/sketchnet"
	"github.com/db47h/sketchnet/internal/watch"
	"github.com/spf13/cobra"
)

func (c *CLI) watchCommand() *cobra.Command {
	var (
		match    string
		debounce time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch <file or dir>...",
		Short: "Parse sketches again whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, lib, err := c.loadDomain()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			p := sketchnet.NewParser(t, lib)
			p.Logger = c.Logger
			changed := func(files []string) {
				for _, f := range files {
					c.Logger.Debug("changed", "file", f)
					printText(w, parseFile(p, f))
				}
			}
			for _, a := range args {
				if fi, err := os.Stat(a); err == nil && !fi.IsDir() {
					printText(w, parseFile(p, a))
				}
			}
			wt, err := watch.New(debounce, match, c.Logger, changed)
			if err != nil {
				return err
			}
			defer wt.Close()
			if err = wt.Watch(args...); err != nil {
				return err
			}
			c.Logger.Info("watching", "paths", args, "match", match)
			<-cmd.Context().Done()
			return nil
		},
	}
	cmd.Flags().StringVar(&match, "match", "*.toml", "glob pattern for file names to parse")
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "delay before parsing changed files")
	return cmd
}
