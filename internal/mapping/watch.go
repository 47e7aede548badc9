package mapping

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch loads the mapping file, delivers it to fn, and re-delivers a freshly
// loaded copy every time the file changes on disk. Files that fail to load
// after a change are logged and skipped, keeping the previous delivery in
// effect. Watch blocks until ctx is done.
//
// The parent directory is watched rather than the file itself so that
// editor-style replace-by-rename updates are observed.
func Watch(ctx context.Context, path string, fn func(*MappingFile)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create mapping watcher: %w", err)
	}
	defer func() {
		// Best-effort watcher close; no actionable error handling path.
		_ = w.Close()
	}()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(path), err)
	}

	reload := func() {
		mf, err := LoadFile(path)
		if err != nil {
			slog.Debug("mapping reload failed", slog.String("path", path), slog.String("err", err.Error()))
			return
		}

		fn(mf)
	}

	// Deliver the initial state to normalize startup.
	reload()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				reload()
			}

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}

			slog.Debug("mapping watcher error", slog.String("err", werr.Error()))
		}
	}
}
