// Package watch re-runs a callback after card files in a folder settle.
// External edits (sync clients, other editors) arrive as bursts of
// filesystem events; the debounce window collapses each burst into a
// single refresh.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last relevant event before
// the callback fires.
const DefaultDebounce = 500 * time.Millisecond

// Watcher observes one folder for card file changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	ext      string
	debounce time.Duration
	onChange func()
	logger   *slog.Logger
}

// New starts watching dir for changes to files with the given extension.
// onChange runs on the watcher's goroutine once events go quiet for the
// debounce duration; a non-positive debounce falls back to the default.
func New(dir, ext string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		fsw:      fsw,
		ext:      ext,
		debounce: debounce,
		onChange: onChange,
		logger:   slog.Default().With("component", "watch"),
	}, nil
}

// Run processes events until the context is canceled or the underlying
// watcher closes. It always returns a non-nil reason.
func (w *Watcher) Run(ctx context.Context) error {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if !w.relevant(event) {
				continue
			}
			// Restart the quiet period on every relevant event.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			w.logger.Warn("watch error", "error", err)

		case <-timer.C:
			w.onChange()
		}
	}
}

// Close stops watching. Safe to call after Run returns.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !strings.HasSuffix(event.Name, w.ext) {
		return false
	}
	return event.Op.Has(fsnotify.Create) ||
		event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Remove) ||
		event.Op.Has(fsnotify.Rename)
}
