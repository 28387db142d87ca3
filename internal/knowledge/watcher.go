package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/answerdesk/answerdesk/internal/debug"
)

// Watcher monitors the data path and swaps a freshly loaded table into the
// store when the underlying file changes. Events are debounced (editors and
// spreadsheet apps fire several writes per save), and a reload whose content
// fingerprint matches the current table is dropped silently.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	opts     LoadOptions
	store    *Store
	debounce time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Called after every attempted reload; err is nil on success.
	// Optional.
	onReload func(t *Table, err error)
}

// NewWatcher creates a watcher for the data path backing the store
func NewWatcher(path string, opts LoadOptions, store *Store, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		watcher:  fsw,
		path:     filepath.Clean(path),
		opts:     opts,
		store:    store,
		debounce: debounce,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// SetReloadCallback sets the callback invoked after each reload attempt.
// Must be called before Start.
func (w *Watcher) SetReloadCallback(fn func(t *Table, err error)) {
	w.onReload = fn
}

// Start begins watching. For a regular file the parent directory is watched
// (editors replace files via rename, which drops a watch on the file
// itself); for a directory the directory is watched.
func (w *Watcher) Start() error {
	info, err := os.Stat(w.path)
	if err != nil {
		return err
	}

	watchPath := w.path
	if !info.IsDir() {
		watchPath = filepath.Dir(w.path)
	}
	if err := w.watcher.Add(watchPath); err != nil {
		return err
	}

	debug.LogWatch("watching %s for changes to %s\n", watchPath, w.path)

	w.wg.Add(1)
	go w.run(info.IsDir())
	return nil
}

// Stop cancels the watch and waits for the event loop to exit
func (w *Watcher) Stop() {
	w.cancel()
	_ = w.watcher.Close()
	w.wg.Wait()
}

func (w *Watcher) run(isDir bool) {
	defer w.wg.Done()

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-w.ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event, isDir) {
				continue
			}
			debug.LogWatch("event %s on %s\n", event.Op, event.Name)
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			pending = timer.C

		case <-pending:
			timer = nil
			pending = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			debug.LogWatch("watch error: %v\n", err)
		}
	}
}

// relevant filters out events for unrelated files in the watched directory
func (w *Watcher) relevant(event fsnotify.Event, isDir bool) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	if isDir {
		return true
	}
	return filepath.Clean(event.Name) == w.path
}

func (w *Watcher) reload() {
	table, err := Load(w.path, w.opts)
	if err != nil {
		debug.LogWatch("reload of %s failed: %v\n", w.path, err)
		if w.onReload != nil {
			w.onReload(nil, err)
		}
		return
	}

	if current := w.store.Table(); current != nil && current.Fingerprint() == table.Fingerprint() {
		debug.LogWatch("reload of %s skipped: content unchanged\n", w.path)
		return
	}

	w.store.Swap(table)
	debug.LogWatch("reloaded %s: %d rows\n", w.path, table.Len())
	if w.onReload != nil {
		w.onReload(table, nil)
	}
}
