package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/debug"
)

// watch calls fn once, then again after every write to path, until ctx
// is cancelled.
func watch(ctx context.Context, path string, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer w.Close()

	// Editors often save by replacing the file, which drops a watch on the
	// file itself, so watch its directory instead.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	fn()

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				debug.Logger().Debug("scene changed", zap.String("path", path), zap.Stringer("op", event.Op))
				fn()
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			debug.Logger().Warn("watch error", zap.Error(err))
		}
	}
}
