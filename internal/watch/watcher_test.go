package watch

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

// countingWatcher builds a Watcher whose OnRun counts invocations.
func countingWatcher(debounce time.Duration) (*Watcher, func() int) {
	var mu sync.Mutex
	runs := 0
	w := &Watcher{
		Dir:        "pkg",
		SourceGlob: "*.py",
		Debounce:   debounce,
		Out:        io.Discard,
		OnRun: func(context.Context) {
			mu.Lock()
			runs++
			mu.Unlock()
		},
	}
	return w, func() int {
		mu.Lock()
		defer mu.Unlock()
		return runs
	}
}

func TestShouldTrigger(t *testing.T) {
	w := &Watcher{SourceGlob: "*.py"}

	tests := map[string]struct {
		event fsnotify.Event
		want  bool
	}{
		"write to source file": {
			event: fsnotify.Event{Name: "pkg/a.py", Op: fsnotify.Write},
			want:  true,
		},
		"create source file": {
			event: fsnotify.Event{Name: "pkg/new.py", Op: fsnotify.Create},
			want:  true,
		},
		"remove source file": {
			event: fsnotify.Event{Name: "pkg/old.py", Op: fsnotify.Remove},
			want:  true,
		},
		"chmod only": {
			event: fsnotify.Event{Name: "pkg/a.py", Op: fsnotify.Chmod},
			want:  false,
		},
		"non-source file": {
			event: fsnotify.Event{Name: "pkg/notes.txt", Op: fsnotify.Write},
			want:  false,
		},
		"editor swap file": {
			event: fsnotify.Event{Name: "pkg/.a.py.swp", Op: fsnotify.Write},
			want:  false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.want, w.shouldTrigger(tt.event))
		})
	}
}

func TestLoopDebouncesEventBursts(t *testing.T) {
	w, runs := countingWatcher(20 * time.Millisecond)

	events := make(chan fsnotify.Event)
	errs := make(chan error)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.loop(ctx, events, errs) }()

	// A burst of events collapses into a single run.
	for i := 0; i < 3; i++ {
		events <- fsnotify.Event{Name: "pkg/a.py", Op: fsnotify.Write}
	}
	require.Eventually(t, func() bool { return runs() == 1 },
		time.Second, 5*time.Millisecond, "burst should trigger exactly one run")

	// A later event triggers a second run.
	events <- fsnotify.Event{Name: "pkg/b.py", Op: fsnotify.Write}
	require.Eventually(t, func() bool { return runs() == 2 },
		time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done, "cancellation is a clean stop")
	require.Equal(t, 2, runs())
}

func TestLoopSeparatesSuccessiveRuns(t *testing.T) {
	color.NoColor = true

	w, runs := countingWatcher(10 * time.Millisecond)
	var out strings.Builder
	w.Out = &out

	events := make(chan fsnotify.Event)
	errs := make(chan error)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.loop(ctx, events, errs) }()

	events <- fsnotify.Event{Name: "pkg/a.py", Op: fsnotify.Write}
	require.Eventually(t, func() bool { return runs() == 1 },
		time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	require.Contains(t, out.String(), "─", "a rule precedes each re-run")
}

func TestLoopIgnoresNonSourceEvents(t *testing.T) {
	w, runs := countingWatcher(10 * time.Millisecond)

	events := make(chan fsnotify.Event)
	errs := make(chan error)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.loop(ctx, events, errs) }()

	events <- fsnotify.Event{Name: "pkg/notes.txt", Op: fsnotify.Write}
	events <- fsnotify.Event{Name: "pkg/a.py", Op: fsnotify.Chmod}

	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 0, runs())

	cancel()
	require.NoError(t, <-done)
}

func TestLoopStopsWhenEventsChannelCloses(t *testing.T) {
	w, _ := countingWatcher(10 * time.Millisecond)

	events := make(chan fsnotify.Event)
	errs := make(chan error)
	done := make(chan error, 1)
	go func() { done <- w.loop(context.Background(), events, errs) }()

	close(events)
	require.NoError(t, <-done)
}
