package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchSettle is how long a burst of file events must be quiet before re-running
const watchSettle = 50 * time.Millisecond

// watchAndRun calls run with the file content once, then again after every change,
// until ctx is cancelled.
func watchAndRun(ctx context.Context, path string, run func(content string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	reread := func() {
		content, err := os.ReadFile(path)
		if err != nil {
			errorPrintf("Error reading %s: %v\n", path, err)
			return
		}
		run(string(content))
	}

	reread()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			// drain the rest of the burst so editors that write in several steps
			// don't trigger a run on a half-written file
			for settled := false; !settled; {
				select {
				case <-watcher.Events:
				case <-time.After(watchSettle):
					settled = true
				case <-ctx.Done():
					return nil
				}
			}
			// editors replace files by rename, which drops the watch
			_ = watcher.Add(path)
			reread()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errorPrintf("Watch error: %v\n", err)
		}
	}
}
