// Package watcher reloads the macro file when it changes on disk.
package watcher

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls a notifier whenever the watched file is written, created
// or renamed into place.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	base     string
	notify   func()
	debounce time.Duration

	mu       sync.Mutex
	last     time.Time
	suppress time.Time

	done chan struct{}
	once sync.Once
}

// Start watches the directory containing path. Watching the directory
// survives editors that save via temp file and rename.
func Start(path string, debounce time.Duration, notify func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	abs = filepath.Clean(abs)

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close() //nolint:errcheck
		return nil, err
	}

	w := &Watcher{
		fs:       fw,
		path:     abs,
		base:     filepath.Base(abs),
		notify:   notify,
		debounce: debounce,
		done:     make(chan struct{}),
	}
	go w.loop()
	log.Printf("Watcher: watching %s", abs)
	return w, nil
}

// Suppress ignores events for d. Used around our own saves so writing the
// macro file does not trigger a reload of it.
func (w *Watcher) Suppress(d time.Duration) {
	w.mu.Lock()
	w.suppress = time.Now().Add(d)
	w.mu.Unlock()
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.fs.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !shouldReload(w.path, w.base, event) {
				continue
			}
			if !w.admit(time.Now()) {
				continue
			}
			log.Println("Watcher: macro file changed, reload signalled")
			if w.notify != nil {
				w.notify()
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher: error: %v", err)
		}
	}
}

// admit applies suppression and debounce.
func (w *Watcher) admit(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if now.Before(w.suppress) {
		return false
	}
	if !w.last.IsZero() && now.Sub(w.last) < w.debounce {
		return false
	}
	w.last = now
	return true
}

// shouldReload reports whether an fsnotify event concerns the watched file.
func shouldReload(path, base string, event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	if name == path {
		return true
	}
	// Some editors write via temp + rename, resulting in partial paths.
	return filepath.Base(name) == base
}
