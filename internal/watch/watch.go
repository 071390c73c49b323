// Package watch regenerates the guide whenever a source note changes.
// Events are debounced so editor save bursts trigger a single rebuild.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

// Rebuild regenerates all outputs; runID tags the rebuild in logs.
type Rebuild func(runID string) error

// Watcher drives rebuilds from filesystem events under a source directory.
type Watcher struct {
	dir      string
	debounce time.Duration
	rebuild  Rebuild
}

// DefaultDebounce is the quiet period after the last event before a rebuild.
const DefaultDebounce = 250 * time.Millisecond

// New creates a Watcher. A non-positive debounce falls back to
// DefaultDebounce.
func New(dir string, debounce time.Duration, rebuild Rebuild) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{dir: dir, debounce: debounce, rebuild: rebuild}
}

// Run performs an initial rebuild, then watches until the context is
// cancelled. Rebuild failures are logged, not fatal: the next save gets
// another chance.
func (w *Watcher) Run(ctx context.Context) error {
	w.runRebuild()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	if err := addRecursive(watcher, w.dir); err != nil {
		return err
	}

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// New subdirectories need their own watch.
			if ev.Op.Has(fsnotify.Create) {
				if err := addRecursive(watcher, ev.Name); err == nil {
					slog.Debug("Watching new path", "path", ev.Name)
				}
			}
			if !RelevantEvent(ev) {
				continue
			}
			slog.Debug("Source change detected", "path", ev.Name, "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.runRebuild()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) runRebuild() {
	runID := uuid.NewString()
	start := time.Now()
	if err := w.rebuild(runID); err != nil {
		slog.Error("Rebuild failed", "run_id", runID, "error", err)
		return
	}
	slog.Info("Rebuild complete", "run_id", runID, "duration", time.Since(start))
}

// RelevantEvent reports whether an fsnotify event should trigger a rebuild:
// writes, creates, renames, and removals of Markdown files. Temporary and
// hidden files are ignored.
func RelevantEvent(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) && !ev.Op.Has(fsnotify.Remove) {
		return false
	}
	name := filepath.Base(ev.Name)
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".tmp") || strings.HasSuffix(name, "~") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

// addRecursive watches dir and every subdirectory beneath it. Non-directory
// paths are ignored.
func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // a racing delete is not fatal
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
