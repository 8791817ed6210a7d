// Package watch re-runs the check sequence when package sources change.
// Events are debounced so an editor save producing several notifications
// triggers a single run.
package watch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bjpop/cicheck/internal/output"
)

// Watcher observes a package directory and invokes OnRun after each
// debounced burst of source file changes.
type Watcher struct {
	// Dir is the directory to observe.
	Dir string
	// SourceGlob filters events by base name (e.g. "*.py").
	SourceGlob string
	// Debounce is the quiet period required before a run triggers.
	Debounce time.Duration
	// OnRun executes one check run. Its outcome never stops watching.
	OnRun func(ctx context.Context)
	// Out receives watch status lines and watcher error warnings.
	Out io.Writer
}

// Run performs an initial check run, then watches Dir until ctx is
// cancelled. Cancellation is the normal way to stop and returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.Dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.Dir, err)
	}

	w.OnRun(ctx)
	fmt.Fprintf(w.Out, "\nWatching %s for changes (Ctrl-C to stop)\n", w.Dir)

	return w.loop(ctx, fsw.Events, fsw.Errors)
}

// loop is the debounced event loop, separated from Run so tests can drive
// it with injected channels instead of real file system events.
func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !w.shouldTrigger(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.Debounce)
			}
			pending = timer.C

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.Out, "Warning: watch error: %v\n", err)

		case <-pending:
			pending = nil
			output.PrintRunSeparator(w.Out)
			w.OnRun(ctx)
			fmt.Fprintf(w.Out, "\nWatching %s for changes (Ctrl-C to stop)\n", w.Dir)
		}
	}
}

// shouldTrigger reports whether a file event warrants a re-run.
// Only content-affecting operations on files matching SourceGlob count.
func (w *Watcher) shouldTrigger(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	matched, err := filepath.Match(w.SourceGlob, filepath.Base(ev.Name))
	return err == nil && matched
}
