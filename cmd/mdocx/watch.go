package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/benjaminschreck/go-mdocx/pkg/mdocx"
	"github.com/fsnotify/fsnotify"
)

const debounceDuration = 150 * time.Millisecond

// watchInput converts once, then again after every change to the input file
// until ctx is done. Conversion errors are logged and do not stop the loop.
func watchInput(ctx context.Context, j *job) error {
	logger := mdocx.WithField("input", j.input)

	if err := j.run(ctx); err != nil {
		logger.Error("conversion failed: %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory so editors that save by renaming are still seen
	path, err := filepath.Abs(j.input)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	logger.Info("watching for changes")

	changed := make(chan struct{}, 1)
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDuration, func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			})

		case <-changed:
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := j.run(ctx); err != nil {
				logger.Error("conversion failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}
