package config

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed indicates the watcher has been closed.
var ErrWatcherClosed = errors.New("config watcher closed")

// DefaultDebounce is the quiet period before a change is reported.
// Editors often produce several write events per save.
const DefaultDebounce = 250 * time.Millisecond

// ReloadFunc is called with the re-parsed configuration after the watched
// file changes, or with a non-nil error when reloading failed.
type ReloadFunc func(cfg *Config, err error)

// Watcher monitors a config file and reloads it on change.
type Watcher struct {
	mu sync.Mutex

	path     string
	debounce time.Duration
	reload   ReloadFunc

	fsw    *fsnotify.Watcher
	closed bool
	done   chan struct{}
}

// NewWatcher watches path and calls reload after each change. The parent
// directory is watched rather than the file itself, so atomic-rename saves
// are seen.
func NewWatcher(path string, debounce time.Duration, reload ReloadFunc) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		debounce: debounce,
		reload:   reload,
		fsw:      fsw,
		done:     make(chan struct{}),
	}

	go w.loop()
	return w, nil
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	close(w.done)
	return w.fsw.Close()
}

// loop consumes fsnotify events, debouncing bursts into a single reload.
func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			cfg, err := Load(w.path)
			w.reload(cfg, err)

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
