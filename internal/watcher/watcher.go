// Package watcher reloads the dataset when the CSV file changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/delorianv/volcano-eruptions/internal/logging"
)

// Handler receives a notification after the watched dataset file settles.
type Handler interface {
	HandleDatasetChange(path string) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(path string) error

func (f HandlerFunc) HandleDatasetChange(path string) error { return f(path) }

// Watcher monitors a single dataset file. It watches the containing
// directory rather than the file itself, since most editors and download
// tools replace files by rename, which drops an inode-level watch.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	handler   Handler
	logger    *logging.Logger
	path      string
	debounce  time.Duration
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the settle delay before a change is reported.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher creates a watcher for the dataset file at path.
func NewWatcher(path string, handler Handler, logger *logging.Logger, opts ...Option) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("unable to create watcher: %w", err)
	}
	if logger == nil {
		logger = logging.Nop()
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		handler:   handler,
		logger:    logger,
		path:      filepath.Clean(path),
		debounce:  500 * time.Millisecond,
	}

	for _, opt := range opts {
		opt(w)
	}

	if err := fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("unable to watch %s: %w", filepath.Dir(w.path), err)
	}

	return w, nil
}

// Run blocks, dispatching dataset changes to the handler until the context
// is cancelled or the watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("watcher", "watching dataset", logging.F("path", w.path))

	var pending *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			// Coalesce the burst of events a single save produces.
			if pending == nil {
				pending = time.NewTimer(w.debounce)
				fire = pending.C
			} else {
				pending.Reset(w.debounce)
			}

		case <-fire:
			pending = nil
			fire = nil
			w.logger.Info("watcher", "dataset changed", logging.F("path", w.path))
			if err := w.handler.HandleDatasetChange(w.path); err != nil {
				w.logger.Error("watcher", "reload failed", err)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Warn("watcher", "watch error", logging.F("error", err.Error()))
		}
	}
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
