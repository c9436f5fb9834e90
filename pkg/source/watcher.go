package source

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a catalog file and invokes a callback when it
// changes.
type Watcher struct {
	path     string
	onChange func()
	logger   *log.Logger
	debounce time.Duration
}

// NewWatcher creates a file watcher for the given catalog path.
// onChange runs after the file settles (debounced).
func NewWatcher(path string, onChange func()) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		logger:   log.New(io.Discard),
		debounce: 300 * time.Millisecond,
	}
}

// SetLogger sets the logger for watcher events.
func (w *Watcher) SetLogger(logger *log.Logger) {
	if logger != nil {
		w.logger = logger
	}
}

// SetDebounce sets the debounce duration for file changes.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Watch blocks until the context is cancelled, calling onChange after
// each burst of modifications to the watched file.
//
// The parent directory is watched rather than the file itself because
// most editors save atomically (write a temp file, rename it over the
// target), which makes a direct file watch lose track of the inode.
func (w *Watcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	filename := filepath.Base(w.path)

	if err := watcher.Add(dir); err != nil {
		return err
	}

	w.logger.Info("watching catalog for changes", "path", w.path)

	var debounceTimer *time.Timer
	var debounceChan <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Base(event.Name) != filename {
				continue
			}

			// Create covers atomic saves, Write covers in-place edits.
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.NewTimer(w.debounce)
				debounceChan = debounceTimer.C
			}

		case <-debounceChan:
			w.logger.Debug("catalog file changed", "path", w.path)
			w.onChange()
			debounceChan = nil

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "err", err)
		}
	}
}
