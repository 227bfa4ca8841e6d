// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"context"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/db47h/sketchnet"
	"github.com/db47h/sketchnet/domain"
	"github.com/db47h/sketchnet/shape"
)

// result is the outcome of parsing one sketch file.
type result struct {
	File    string
	Circuit *sketchnet.Circuit
	Err     error
}

// parseFiles parses files concurrently with the given number of workers.
// Each worker owns its own Parser. If workers <= 0, runtime.GOMAXPROCS(-1) is
// used. Results are returned in the order of files. Files not reached before
// ctx is done are reported with ctx.Err().
func parseFiles(ctx context.Context, files []string, workers int, t *domain.Table, lib domain.Library, logger *log.Logger) []result {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers > len(files) {
		workers = len(files)
	}
	res := make([]result, len(files))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := sketchnet.NewParser(t, lib)
			p.Logger = logger
			for j := range jobs {
				res[j] = parseFile(p, files[j])
			}
		}()
	}
	for i, f := range files {
		select {
		case jobs <- i:
		case <-ctx.Done():
			res[i] = result{File: f, Err: ctx.Err()}
		}
	}
	close(jobs)
	wg.Wait()
	return res
}

func parseFile(p *sketchnet.Parser, name string) result {
	r := result{File: name}
	g, err := shape.LoadFile(name)
	if err != nil {
		r.Err = err
		return r
	}
	r.Circuit, r.Err = p.Parse(g)
	return r
}

func failures(rs []result) int {
	n := 0
	for _, r := range rs {
		if r.Err != nil {
			n++
		}
	}
	return n
}
