package file

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/bitgeese/boludo-translator/internal/core/ports/driven"
	"github.com/bitgeese/boludo-translator/internal/logger"
)

// PromptWatcher invalidates a prompt store's cache whenever a prompt file
// in its directory changes, so long-running sessions pick up edits without
// a restart.
type PromptWatcher struct {
	watcher *fsnotify.Watcher
	store   driven.PromptStore
	done    chan struct{}
}

// WatchPrompts watches dir and calls store.Reload() on relevant changes.
// The watcher runs until Close is called.
func WatchPrompts(dir string, store driven.PromptStore) (*PromptWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	w := &PromptWatcher{
		watcher: watcher,
		store:   store,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *PromptWatcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Prompt watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// handleEvent reloads on writes, creates, removes, and renames of .txt
// files. Chmod and editor temp files are ignored.
func (w *PromptWatcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if !strings.EqualFold(filepath.Ext(event.Name), ".txt") {
		return
	}
	logger.Debug("Prompt file changed: %s, reloading", filepath.Base(event.Name))
	w.store.Reload()
}

// Close stops watching and releases resources.
func (w *PromptWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
