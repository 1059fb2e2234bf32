// Package watch re-runs a full render whenever one of the files it read changes.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	derrors "git.home.luguber.info/inful/trackdeck/internal/foundation/errors"
	"git.home.luguber.info/inful/trackdeck/internal/logfields"
)

// DefaultDebounce is the quiet period after the last change before rendering.
const DefaultDebounce = 300 * time.Millisecond

// RenderFunc performs one full render and returns the files it depends on.
// It may return files together with an error; a nil slice keeps the current
// watch list.
type RenderFunc func(ctx context.Context) ([]string, error)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithLogger sets the logger; slog.Default is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// Watcher drives a RenderFunc from filesystem events. Renders never overlap;
// changes that arrive during a render schedule exactly one more.
type Watcher struct {
	render   RenderFunc
	debounce time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	fsw   *fsnotify.Watcher
	files map[string]struct{}
	dirs  map[string]struct{}
}

// New returns a Watcher for render.
func New(render RenderFunc, opts ...Option) *Watcher {
	w := &Watcher{
		render:   render,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run renders once and then after every relevant change until ctx is done.
// Render failures are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return derrors.RuntimeError("failed to create file watcher").WithCause(err).Build()
	}
	defer func() { _ = fsw.Close() }()
	w.mu.Lock()
	w.fsw = fsw
	w.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	requests, trigger, stop := newDebouncer(w.debounce)
	done := make(chan struct{})
	defer func() {
		cancel()
		stop()
		<-done
	}()

	w.renderOnce(ctx)
	go func() {
		defer close(done)
		w.worker(ctx, requests)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev.Name) {
				w.logger.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
				trigger()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// worker serializes renders; requests is buffered so at most one render is queued.
func (w *Watcher) worker(ctx context.Context, requests <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-requests:
			w.logger.Info("Change detected; rendering slides")
			w.renderOnce(ctx)
		}
	}
}

func (w *Watcher) renderOnce(ctx context.Context) {
	start := time.Now()
	files, err := w.render(ctx)
	if files != nil {
		w.watch(files)
	}
	if err != nil {
		w.logger.Warn("Render failed", logfields.Error(err))
		return
	}
	w.logger.Debug("Render finished",
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000),
		slog.Int("watched_files", len(files)))
}

// watch replaces the watched file set. fsnotify watches directories, so
// events are filtered against the file set in relevant.
func (w *Watcher) watch(files []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	nextFiles := make(map[string]struct{}, len(files))
	nextDirs := make(map[string]struct{})
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		nextFiles[abs] = struct{}{}
		nextDirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range w.dirs {
		if _, keep := nextDirs[dir]; !keep {
			_ = w.fsw.Remove(dir)
			delete(w.dirs, dir)
		}
	}
	for dir := range nextDirs {
		if _, ok := w.dirs[dir]; ok {
			continue
		}
		if err := w.fsw.Add(dir); err != nil {
			w.logger.Warn("Watch add failed", logfields.Path(dir), logfields.Error(err))
			continue
		}
		w.dirs[dir] = struct{}{}
	}
	w.files = nextFiles
}

func (w *Watcher) relevant(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[abs]
	return ok
}

// newDebouncer returns a channel that receives one value per burst of
// trigger calls, delay after the last call. stop cancels a pending timer.
func newDebouncer(delay time.Duration) (<-chan struct{}, func(), func()) {
	var mu sync.Mutex
	var timer *time.Timer
	requests := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			select {
			case requests <- struct{}{}:
			default:
			}
		})
	}
	stop := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	return requests, trigger, stop
}
