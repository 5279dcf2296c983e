package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	logAdapter "github.com/bft-labs/mdmedium/internal/adapters/log"
	"github.com/bft-labs/mdmedium/internal/domain"
	"github.com/bft-labs/mdmedium/internal/ports"
)

// DefaultDebounce is the delay between the last write and a re-conversion.
const DefaultDebounce = 100 * time.Millisecond

// Watcher re-converts a document every time it is written.
type Watcher struct {
	converter *Converter
	logger    ports.Logger
	debounce  time.Duration

	mu    sync.Mutex
	timer *time.Timer
	runs  sync.WaitGroup
	conv  sync.Mutex
}

// NewWatcher creates a watcher. A non-positive debounce means DefaultDebounce.
func NewWatcher(converter *Converter, logger ports.Logger, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logAdapter.NewNoopLogger()
	}
	return &Watcher{converter: converter, logger: logger, debounce: debounce}
}

// Run converts req once, then again after every change to req.Path until
// ctx is canceled. Conversion failures after the first are logged and the
// watch continues.
func (w *Watcher) Run(ctx context.Context, req Request) error {
	target, err := filepath.Abs(req.Path)
	if err != nil {
		return domain.NewIOError("resolve", req.Path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are still seen.
	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		return domain.NewIOError("watch", dir, err)
	}

	if _, err := w.converter.Convert(ctx, req); err != nil {
		return err
	}
	w.logger.Info("watching for changes", ports.String("path", target))

	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ctx, req)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) schedule(ctx context.Context, req Request) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil && w.timer.Stop() {
		w.runs.Done()
	}

	w.runs.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.runs.Done()
		w.reconvert(ctx, req)
	})
}

func (w *Watcher) reconvert(ctx context.Context, req Request) {
	if ctx.Err() != nil {
		return
	}

	w.conv.Lock()
	defer w.conv.Unlock()

	if _, err := w.converter.Convert(ctx, req); err != nil {
		w.logger.Error("re-conversion failed", ports.String("path", req.Path), ports.Err(err))
	}
}

// stop cancels a pending conversion and waits for a running one.
func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil && w.timer.Stop() {
		w.runs.Done()
	}
	w.mu.Unlock()
	w.runs.Wait()
}
