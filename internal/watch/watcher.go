// Package watch monitors the components tree and triggers rebuilds.
// Watch mode is a repeated invocation of the full pipeline, not an
// incremental build.
package watch

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change represents a detected change under the components root.
type Change struct {
	// Path is the absolute path of the changed file.
	Path string
}

// Watcher monitors the components root and every component directory
// one level below it for descriptor and source file changes.
type Watcher struct {
	Root    string
	Changes <-chan Change // Read-only external channel

	changes chan Change // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// New creates a watcher for the given components root.
func New(root string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	return &Watcher{
		Root:    root,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching. The root and each existing component
// directory are registered; directories created later are picked up
// from their create events.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Root); err != nil {
		return err
	}

	dirs, err := filepath.Glob(filepath.Join(w.Root, "*"))
	if err == nil {
		for _, dir := range dirs {
			if ignored(dir) {
				continue
			}
			// Non-directories are rejected by Add; that's fine.
			w.watcher.Add(dir)
		}
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: editors fire bursts of events per save.
	const debounce = 200 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for path := range pending {
					w.emit(path)
				}
				return
			}

			if ignored(event.Name) {
				continue
			}

			// A new component directory needs its own watch.
			if event.Has(fsnotify.Create) && filepath.Dir(event.Name) == w.Root {
				w.watcher.Add(event.Name)
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for path, t := range pending {
				if now.Sub(t) >= debounce {
					w.emit(path)
					delete(pending, path)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next rebuild re-syncs.
		}
	}
}

func (w *Watcher) emit(path string) {
	select {
	case w.changes <- Change{Path: path}:
	default:
		// A rebuild is already queued; dropping is fine.
	}
}

// ignored filters out editor droppings and hidden files.
func ignored(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".tmp") {
		return true
	}
	return base == "node_modules"
}
