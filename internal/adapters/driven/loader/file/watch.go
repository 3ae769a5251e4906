package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/logger"
)

// Verify interface compliance.
var _ driven.DatabaseWatcher = (*Watcher)(nil)

// DefaultDebounce coalesces the burst of events editors emit on save.
const DefaultDebounce = 100 * time.Millisecond

// ErrWatcherClosed is returned by Watch after Close.
var ErrWatcherClosed = errors.New("watcher closed")

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits for events to settle.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher reports changes to configured database files.
type Watcher struct {
	dir      string
	files    []string
	byBase   map[string]string
	debounce time.Duration

	mu       sync.Mutex
	closed   bool
	watchers []*fsnotify.Watcher
}

// NewWatcher creates a watcher for files inside dir.
func NewWatcher(dir string, files []string, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		dir:      dir,
		files:    append([]string(nil), files...),
		byBase:   make(map[string]string, len(files)),
		debounce: DefaultDebounce,
	}
	for _, f := range files {
		w.byBase[filepath.Base(f)] = f
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch starts watching the directory. The returned channel emits database
// names in configured order once events settle, and closes when ctx is done.
func (w *Watcher) Watch(ctx context.Context) (<-chan string, error) {
	info, err := os.Stat(w.dir)
	if err != nil {
		return nil, fmt.Errorf("database directory error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("database directory error: %s is not a directory", w.dir)
	}

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, ErrWatcherClosed
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w.watchers = append(w.watchers, fw)
	w.mu.Unlock()

	if err := fw.Add(w.dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	out := make(chan string)
	go w.run(ctx, fw, out)
	return out, nil
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, out chan<- string) {
	defer close(out)
	defer fw.Close()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			name, ok := w.handleEvent(event)
			if !ok {
				continue
			}
			logger.Debug("database file event: %s %s", event.Op, name)
			pending[name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			logger.Warn("watch %s: %v", w.dir, err)

		case <-timer.C:
			for _, name := range w.files {
				if _, ok := pending[name]; !ok {
					continue
				}
				select {
				case out <- name:
				case <-ctx.Done():
					return
				}
			}
			clear(pending)
		}
	}
}

// handleEvent maps a filesystem event to a configured database name.
func (w *Watcher) handleEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return "", false
	}
	name, ok := w.byBase[filepath.Base(event.Name)]
	return name, ok
}

// Close stops every active watch. Close is idempotent.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	var errs []error
	for _, fw := range w.watchers {
		if err := fw.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	w.watchers = nil
	return errors.Join(errs...)
}
