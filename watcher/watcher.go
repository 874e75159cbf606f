// Package watcher regenerates bindings whenever a component's interface
// definition or configuration changes, backing the bindgen --watch flag.
package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/glossa-dev/glossa/errors"
	"github.com/glossa-dev/glossa/logger"
)

// RegenerateFunc runs one regeneration pass.
type RegenerateFunc func() error

// Watcher watches a set of files and runs a regeneration callback after
// changes settle. Rapid saves are debounced, and a rate limiter caps how
// often regeneration can run even under a constant stream of events.
type Watcher struct {
	paths      []string
	regenerate RegenerateFunc
	watcher    *fsnotify.Watcher
	limiter    *rate.Limiter

	mu            sync.Mutex
	debounceTimer *time.Timer

	debouncePeriod time.Duration
}

// New creates a watcher over the given files. Editors often replace files
// on save, so create events count as changes too.
func New(paths []string, regenerate RegenerateFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	for _, path := range paths {
		if err := fsw.Add(path); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", path)
		}
	}
	return &Watcher{
		paths:      paths,
		regenerate: regenerate,
		watcher:    fsw,
		// at most one regeneration per second, with a little burst room
		limiter:        rate.NewLimiter(rate.Every(time.Second), 2),
		debouncePeriod: 300 * time.Millisecond,
	}, nil
}

// Run watches until the context is cancelled. It regenerates once up
// front so the output starts in sync with the inputs.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.regenerate(); err != nil {
		logger.Logger.Errorw("initial generation failed", "error", err)
	}
	logger.Logger.Infow("watching for changes", "paths", w.paths)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				logger.Logger.Debugw("change detected",
					"file", event.Name, "op", event.Op.String())
				w.scheduleRegenerate(ctx)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Logger.Warnw("watch error", "error", err)
		}
	}
}

// scheduleRegenerate debounces bursts of events into one regeneration.
func (w *Watcher) scheduleRegenerate(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.limiter.Wait(ctx); err != nil {
			return
		}
		if err := w.regenerate(); err != nil {
			// keep watching; a broken intermediate save is normal
			logger.Logger.Errorw("regeneration failed", "error", err)
			return
		}
		logger.Logger.Infow("bindings regenerated")
	})
}
