package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 300 * time.Millisecond

type Option func(*FileWatcher)

func WithDebounce(d time.Duration) Option {
	return func(w *FileWatcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(w *FileWatcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// FileWatcher signals on a channel when any watched file is created or
// written. Bursts of events within the debounce window collapse into one
// signal.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	onChange chan struct{}
	debounce time.Duration
	logger   *log.Logger

	mu        sync.Mutex
	timer     *time.Timer
	done      chan struct{}
	closeOnce sync.Once
}

func NewFileWatcher(opts ...Option) (*FileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &FileWatcher{
		watcher:  fsw,
		files:    make(map[string]bool),
		onChange: make(chan struct{}, 1),
		debounce: DefaultDebounce,
		logger:   log.New(os.Stderr),
		done:     make(chan struct{}),
	}
	w.logger.SetLevel(log.WarnLevel)
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Add watches path. A file that does not exist yet is picked up through its
// parent directory, as are files replaced by rename on save.
func (w *FileWatcher) Add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if w.files[absPath] {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(absPath)); err != nil {
		return err
	}
	w.files[absPath] = true
	return nil
}

func (w *FileWatcher) Start() <-chan struct{} {
	go w.run()
	return w.onChange
}

// Run calls fn on every change until ctx is cancelled or fn fails.
func (w *FileWatcher) Run(ctx context.Context, fn func() error) error {
	changes := w.Start()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			if err := fn(); err != nil {
				return err
			}
		}
	}
}

func (w *FileWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			w.mu.Lock()
			watched := w.files[filepath.Clean(event.Name)]
			w.mu.Unlock()

			if watched {
				w.logger.Debug("env file changed", "path", event.Name, "op", event.Op.String())
				w.trigger()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "err", err)
		}
	}
}

func (w *FileWatcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.onChange <- struct{}{}:
		default:
		}
	})
}

func (w *FileWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

func (w *FileWatcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	files := make([]string, 0, len(w.files))
	for f := range w.files {
		files = append(files, f)
	}
	return files
}
