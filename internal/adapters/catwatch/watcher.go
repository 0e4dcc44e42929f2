// Package catwatch watches catalog JSON files and reports changes so the
// caller can trigger an explicit reload. Events are debounced: editors often
// fire several writes per save.
package catwatch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 200 * time.Millisecond

// Watcher monitors a set of catalog files.
type Watcher struct {
	fw      *fsnotify.Watcher
	watched map[string]bool

	mu      sync.Mutex
	done    chan struct{}
	stopped bool
}

// New creates a watcher over the given files. Each file's parent directory is
// watched so atomic-rename saves (write temp, rename over) are still seen.
func New(files []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fw:      fw,
		watched: make(map[string]bool, len(files)),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Run delivers debounced change notifications to onChange until Stop is
// called. Blocks; run it on its own goroutine.
func (w *Watcher) Run(onChange func(path string)) {
	last := make(map[string]time.Time)

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !w.watched[abs] {
				continue
			}
			now := time.Now()
			if now.Sub(last[abs]) < debounceInterval {
				continue
			}
			last[abs] = now
			onChange(abs)
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are transient (dir recreated, fd pressure);
			// keep running.
		}
	}
}

// Stop terminates the watcher. Idempotent.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopped = true
	close(w.done)
	w.fw.Close()
}
