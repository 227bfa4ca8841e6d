// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package watch reports changes to sketch files, debounced.
package watch

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// Watcher watches files and directories and calls a function with the list of
// changed files once no change happened for the debounce duration.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	match    glob.Glob
	onChange func([]string)
	logger   *log.Logger

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
	cbMu    sync.Mutex
	running bool
	closed  bool
	done    chan struct{}
}

// New returns a watcher calling onChange with the sorted paths of changed
// files whose base name matches pattern. An empty pattern matches any file.
// A nil logger discards errors.
func New(debounce time.Duration, pattern string, logger *log.Logger, onChange func([]string)) (*Watcher, error) {
	if pattern == "" {
		pattern = "*"
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Watcher{
		fsw:      fsw,
		debounce: debounce,
		match:    g,
		onChange: onChange,
		logger:   logger,
		pending:  make(map[string]struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Watch starts watching the given paths. A file is watched through its
// parent directory.
func (w *Watcher) Watch(paths ...string) error {
	dirs := make(map[string]bool)
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return errors.Wrap(err, "watch")
		}
		d := p
		if !fi.IsDir() {
			d = filepath.Dir(p)
		}
		if dirs[d] {
			continue
		}
		dirs[d] = true
		if err = w.fsw.Add(d); err != nil {
			return errors.Wrapf(err, "watch %s", d)
		}
		w.logger.Debug("watching", "dir", d)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		w.running = true
		go w.run()
	}
	return nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.match.Match(filepath.Base(ev.Name)) {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.schedule(ev.Name)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "err", err)
		}
	}
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending[path] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.flush)
}

func (w *Watcher) flush() {
	w.cbMu.Lock()
	defer w.cbMu.Unlock()

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)
	w.onChange(paths)
}

// Close stops the watcher. Pending changes are dropped. Close waits for a
// running onChange call to return; onChange is never called after that.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	running := w.running
	w.mu.Unlock()
	err := w.fsw.Close()
	if running {
		<-w.done
	}
	w.cbMu.Lock()
	w.cbMu.Unlock()
	return err
}
