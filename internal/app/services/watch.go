package services

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatchDebounce is the debounce window for watcher events.
const ConfigWatchDebounce = 300 * time.Millisecond

// ConfigWatchService reports changes to the configuration file. The parent
// directory is watched so that editors replacing the file are noticed too.
type ConfigWatchService struct {
	Started     bool
	Waiting     bool
	Path        string
	Events      chan struct{}
	Done        chan struct{}
	Watcher     *fsnotify.Watcher
	LastRefresh time.Time
	mu          sync.Mutex
	logf        func(string, ...any)
}

// NewConfigWatchService creates a new ConfigWatchService.
func NewConfigWatchService(logf func(string, ...any)) *ConfigWatchService {
	return &ConfigWatchService{logf: logf}
}

// Start begins watching path. It returns false without error when there is
// nothing to watch.
func (w *ConfigWatchService) Start(path string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.Started || path == "" {
		return false, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return false, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return false, err
	}

	w.Started = true
	w.Path = abs
	w.Watcher = watcher
	w.Events = make(chan struct{}, 1)
	w.Done = make(chan struct{})
	w.debugf("config watcher: watching %s", abs)

	go w.run()
	return true, nil
}

// Stop stops the watcher and closes channels.
func (w *ConfigWatchService) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.Started {
		return
	}
	close(w.Done)
	w.Started = false
	if w.Watcher != nil {
		_ = w.Watcher.Close()
	}
}

// NextEvent returns the event channel if waiting is not already active.
func (w *ConfigWatchService) NextEvent() <-chan struct{} {
	if w.Events == nil || w.Waiting {
		return nil
	}
	w.Waiting = true
	return w.Events
}

// ResetWaiting clears the waiting flag after an event is processed.
func (w *ConfigWatchService) ResetWaiting() {
	w.Waiting = false
}

// ShouldReload checks debounce timing for watcher events.
func (w *ConfigWatchService) ShouldReload(now time.Time) bool {
	if !w.LastRefresh.IsZero() && now.Sub(w.LastRefresh) < ConfigWatchDebounce {
		return false
	}
	w.LastRefresh = now
	return true
}

// Signal notifies listeners of a change.
func (w *ConfigWatchService) Signal() {
	select {
	case <-w.Done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}

// Matches reports whether an event path refers to the watched file.
func (w *ConfigWatchService) Matches(name string) bool {
	if name == "" || w.Path == "" {
		return false
	}
	return filepath.Clean(name) == w.Path
}

func (w *ConfigWatchService) run() {
	for {
		select {
		case <-w.Done:
			return
		case event, ok := <-w.Watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.Matches(event.Name) {
				continue
			}
			w.Signal()
		case err, ok := <-w.Watcher.Errors:
			if !ok {
				return
			}
			w.debugf("config watcher error: %v", err)
		}
	}
}

func (w *ConfigWatchService) debugf(format string, args ...any) {
	if w.logf == nil {
		return
	}
	w.logf(format, args...)
}
