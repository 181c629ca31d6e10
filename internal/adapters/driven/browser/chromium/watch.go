package chromium

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/retracehq/retrace/internal/logger"
)

// BookmarkWatcher invokes a callback when the profile's Bookmarks file
// changes on disk. The browser writes the file via rename, so the watch
// covers the parent directory rather than the file itself.
type BookmarkWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewBookmarkWatcher starts watching the Bookmarks file at path and calls
// onChange for every write, create, or rename touching it. The callback
// runs on the watcher goroutine and must not block.
func NewBookmarkWatcher(path string, onChange func()) (*BookmarkWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating bookmarks watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching bookmarks directory: %w", err)
	}

	w := &BookmarkWatcher{
		watcher: watcher,
		done:    make(chan struct{}),
	}
	target := filepath.Base(path)

	go func() {
		defer close(w.done)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				logger.Debug("Bookmarks file changed: %s", event.Op)
				onChange()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Bookmarks watcher: %v", err)
			}
		}
	}()

	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *BookmarkWatcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
