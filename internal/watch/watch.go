// Package watch re-runs a command script whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/setcalc/pkg/log"
)

// RunFunc executes the script at path once.
type RunFunc func(ctx context.Context, path string) error

// Watcher monitors a single script file via fsnotify.
type Watcher struct {
	path     string
	debounce time.Duration
	run      RunFunc
	logger   log.Logger

	trigger chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for path. Bursts of events within debounce collapse
// into one run.
func New(path string, debounce time.Duration, run RunFunc, logger log.Logger) *Watcher {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		run:      run,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
	}
}

// Run executes the script once, then again after every write or re-creation
// of the file, until ctx is done. Runs never overlap. A failing run is logged
// and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.stopTimer()

	w.execute(ctx)

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceTrigger()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", log.Err(err))

		case <-w.trigger:
			w.execute(ctx)
		}
	}
}

func (w *Watcher) execute(ctx context.Context) {
	w.logger.Info("running script", log.String("path", w.path))
	if err := w.run(ctx, w.path); err != nil {
		w.logger.Error("script run failed", log.String("path", w.path), log.Err(err))
	}
}

func (w *Watcher) debounceTrigger() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.trigger <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
