package feeds

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-link-monitor/internal/util"
)

// ChangeEvent reports one snapshot file change.
type ChangeEvent struct {
	Path      string
	Operation string
}

// Watcher watches a snapshot directory and reports changes to feed files so
// callers can re-run reconciliation. The refresh policy itself belongs to
// the caller.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan ChangeEvent
}

// NewWatcher starts watching the given directory tree.
func NewWatcher(dir string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: watcher,
		events:  make(chan ChangeEvent, 100),
	}

	if err := w.addTree(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	go w.processEvents()
	return w, nil
}

func (w *Watcher) addTree(dir string) error {
	return filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return w.watcher.Add(p)
		}
		return nil
	})
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			// Only snapshot files are interesting.
			if filepath.Ext(event.Name) == ".json" {
				w.events <- ChangeEvent{
					Path:      event.Name,
					Operation: event.Op.String(),
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("Snapshot watch error: " + err.Error())
		}
	}
}

// Events returns the change notification channel.
func (w *Watcher) Events() <-chan ChangeEvent {
	return w.events
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
