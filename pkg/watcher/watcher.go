/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/

package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the interval changes are coalesced over before a
// re-validation triggers. Editors often emit several events per save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher observes a set of broker definition files and invokes a
// callback when any of them changes. Parent directories are watched
// rather than the files themselves so that editor rename-and-replace
// saves are not lost.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	targets  map[string]struct{}
}

// New creates a Watcher for the given paths. A non-positive debounce
// falls back to DefaultDebounce.
func New(paths []string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		targets:  make(map[string]struct{}, len(paths)),
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("failed to resolve path %q: %w", p, err)
		}
		w.targets[abs] = struct{}{}
	}
	return w, nil
}

// Watch blocks until the context is canceled, invoking onChange after
// each debounced burst of changes to the watched files. Changes to other
// files in the same directories are ignored.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	defer func() {
		if err := w.fsw.Close(); err != nil {
			slog.Warn("failed to close watcher", "error", err)
		}
	}()

	dirs := make(map[string]struct{})
	for target := range w.targets {
		dirs[filepath.Dir(target)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %q: %w", dir, err)
		}
	}

	slog.Info("watching for changes",
		"files", len(w.targets),
		"directories", len(dirs),
		"debounce_ms", w.debounce.Milliseconds())

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("watcher stopped")
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, watched := w.targets[abs]; !watched {
				continue
			}
			slog.Debug("change detected", "path", event.Name, "op", event.Op.String())
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)

		case <-timer.C:
			onChange()
		}
	}
}
