package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"hiredesk/internal/logging"
)

// Watcher watches .hiredesk/config.yaml for changes and reloads it, so a
// running chat session picks up provider or logging changes without restart.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	workspace   string
	onReload    func(*Config)
	debounceDur time.Duration
	lastEvent   time.Time
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewWatcher creates a watcher for the given workspace. onReload is invoked
// with the freshly loaded config after each change.
func NewWatcher(workspace string, onReload func(*Config)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:     fw,
		workspace:   workspace,
		onReload:    onReload,
		debounceDur: 500 * time.Millisecond, // Debounce rapid editor saves
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; events are handled in a goroutine.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	dir := filepath.Join(w.workspace, ".hiredesk")
	if err := w.watcher.Add(dir); err != nil {
		// Directory may not exist yet; reloads just never fire
		logging.Get(logging.CategoryConfig).Warn("config watcher: initial watch failed: %v", err)
	} else {
		logging.Config("config watcher: watching %s", dir)
	}

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	defer close(w.doneCh)
	target := Path(w.workspace)

	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(target) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.mu.Lock()
			if time.Since(w.lastEvent) < w.debounceDur {
				w.mu.Unlock()
				continue
			}
			w.lastEvent = time.Now()
			w.mu.Unlock()

			cfg, err := Load(w.workspace)
			if err != nil {
				logging.Get(logging.CategoryConfig).Warn("config watcher: reload failed: %v", err)
				continue
			}
			logging.Config("config watcher: reloaded %s", target)
			if w.onReload != nil {
				w.onReload(cfg)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryConfig).Warn("config watcher: %v", err)
		}
	}
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	err := w.watcher.Close()
	<-w.doneCh
	return err
}
