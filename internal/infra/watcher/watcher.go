// Package watcher reports changes to the registry file made by any process.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/runoshun/docwin/internal/domain"
)

// DefaultDebounce coalesces bursts of writes into one notification.
const DefaultDebounce = 100 * time.Millisecond

const logCategory = "watcher"

// Config configures a Watcher.
type Config struct {
	Logger   domain.Logger
	Path     string        // registry file to observe
	Debounce time.Duration // zero means DefaultDebounce
}

// Watcher implements domain.ChangeNotifier with fsnotify.
// It watches the parent directory so that atomic renames and SQLite
// side files are observed.
type Watcher struct {
	logger   domain.Logger
	path     string
	debounce time.Duration
}

// New creates a Watcher.
func New(cfg Config) *Watcher {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Logger == nil {
		cfg.Logger = domain.NopLogger{}
	}
	return &Watcher{logger: cfg.Logger, path: cfg.Path, debounce: cfg.Debounce}
}

// Watch starts watching. The returned channel receives a value after each
// debounced burst of changes and is closed when ctx is done.
func (w *Watcher) Watch(ctx context.Context) (<-chan struct{}, error) {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create watch directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	out := make(chan struct{}, 1)
	go w.loop(ctx, fsw, out)
	return out, nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- struct{}) {
	defer close(out)
	defer func() { _ = fsw.Close() }()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("", logCategory, fmt.Sprintf("fsnotify error: %v", err))

		case <-timer.C:
			select {
			case out <- struct{}{}:
			default:
				// A notification is already pending
			}
		}
	}
}

// relevant reports whether ev touches the registry file or its SQLite side files.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	base := filepath.Base(w.path)
	switch filepath.Base(ev.Name) {
	case base, base + "-wal", base + "-journal":
		return true
	}
	return false
}

// Ensure Watcher implements ChangeNotifier.
var _ domain.ChangeNotifier = (*Watcher)(nil)
