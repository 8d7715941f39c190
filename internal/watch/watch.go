// Package watch reruns a full regeneration whenever the script tree changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/scriptdoc/internal/logfields"
)

// DefaultDebounce collapses bursts of editor writes into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// RebuildFunc regenerates every output from scratch.
type RebuildFunc func(ctx context.Context) error

// Watcher watches a directory tree and calls a RebuildFunc after changes settle.
// Rebuilds run one at a time on the Run goroutine.
type Watcher struct {
	root     string
	debounce time.Duration
	rebuild  RebuildFunc
}

// New creates a watcher for root. A non-positive debounce uses DefaultDebounce.
func New(root string, debounce time.Duration, rebuild RebuildFunc) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{root: root, debounce: debounce, rebuild: rebuild}
}

// Run blocks until ctx is cancelled. Rebuild failures are logged and do not
// stop the watcher; the next change triggers another attempt.
func (w *Watcher) Run(ctx context.Context) error {
	absRoot, err := filepath.Abs(w.root)
	if err != nil {
		return fmt.Errorf("resolve watch root: %w", err)
	}
	if st, statErr := os.Stat(absRoot); statErr != nil || !st.IsDir() {
		return fmt.Errorf("watch root not found or not a directory: %s", absRoot)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	if err := addDirsRecursive(fsw, absRoot); err != nil {
		return err
	}

	rebuildReq, trigger, stop := newDebouncer(w.debounce)
	defer stop()

	slog.Info("Watching scripts for changes", logfields.Root(absRoot))
	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping script watcher")
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			handleFileEvent(fsw, ev, trigger)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", logfields.Error(err))
		case <-rebuildReq:
			w.runRebuild(ctx)
		}
	}
}

func (w *Watcher) runRebuild(ctx context.Context) {
	start := time.Now()
	err := w.rebuild(ctx)
	if errors.Is(err, context.Canceled) {
		return
	}
	if err != nil {
		slog.Error("Regeneration failed", logfields.Error(err))
		return
	}
	slog.Info("Regenerated after change", logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
}

// newDebouncer returns the rebuild channel, a trigger that (re)arms the timer,
// and a stop function releasing the pending timer.
func newDebouncer(d time.Duration) (<-chan struct{}, func(), func()) {
	var mu sync.Mutex
	var timer *time.Timer
	rebuildReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}
	stop := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	return rebuildReq, trigger, stop
}

func handleFileEvent(fsw *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(fsw, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

func addDirsRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := fsw.Add(path); err != nil {
				slog.Warn("watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for filesystem events that should not trigger rebuilds.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	// Hidden files, editor swap files and lock files
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	if base == "Thumbs.db" {
		return true
	}

	return false
}
