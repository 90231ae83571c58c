package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange with the path of a watched file after it is written or
// recreated. Bursts of events for the same file within the debounce window
// collapse into one call. onChange always runs on the watcher goroutine, so
// calls never overlap.
//
// Watch returns once the watcher is set up; the event loop stops when ctx is
// cancelled.
func Watch(ctx context.Context, paths []string, onChange func(path string), opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Editors often replace files instead of writing them in place, so watch
	// the parent directories and filter by name.
	watched := make(map[string]struct{}, len(paths))
	var dirs []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = watcher.Close()
			return err
		}
		watched[abs] = struct{}{}
		if dir := filepath.Dir(abs); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()
		return watchLoop(ctx, watcher, watched, onChange, o)
	}, lifecycle.WithErrorHandler(func(err error) {
		if o.logger != nil {
			o.logger.Error("watcher stopped", "error", err)
		}
	}))
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, watched map[string]struct{}, onChange func(string), o *options) error {
	pending := make(map[string]struct{})
	timer := time.NewTimer(o.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if _, ok := watched[name]; !ok {
				continue
			}
			if o.logger != nil {
				o.logger.Debug("event received", "name", name, "op", event.Op.String())
			}
			pending[name] = struct{}{}
			timer.Reset(o.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if o.logger != nil {
				o.logger.Error("fsnotify error", "error", err)
			}

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			clear(pending)
			slices.Sort(changed)
			for _, p := range changed {
				onChange(p)
			}
		}
	}
}
