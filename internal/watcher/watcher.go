// Package watcher monitors a drop directory for files to deposit.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config contains watcher settings.
type Config struct {
	DebounceSeconds   int      // Delay before processing (default: 2)
	StableThresholdMs int      // File size stability threshold in milliseconds (default: 1000)
	IgnorePatterns    []string // Glob patterns to ignore (e.g., "*.tmp", "*.part", "*.download")
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DebounceSeconds:   2,
		StableThresholdMs: 1000,
		IgnorePatterns:    DefaultIgnorePatterns(),
	}
}

// Summary contains stats from the watch session.
type Summary struct {
	FilesDeposited int
	FilesSkipped   int
	FilesFailed    int
	Duration       time.Duration
}

// FileHandler is called for each stable file found in the drop
// directory. A nil return counts the file as deposited; an error counts
// it as failed.
type FileHandler func(path string) error

// Watcher monitors a drop directory for new files and hands stable ones
// to the file handler.
type Watcher struct {
	config      *Config
	fileHandler FileHandler
	fsWatcher   *fsnotify.Watcher
	fileFilter  *FileFilter
	debouncer   *Debouncer
	stability   *StabilityChecker
	done        chan struct{}
	wg          sync.WaitGroup
	startTime   time.Time

	mu             sync.Mutex
	filesDeposited int
	filesSkipped   int
	filesFailed    int
}

// New creates a new Watcher with the given configuration.
// If config is nil, default configuration is used.
func New(config *Config, fileHandler FileHandler) *Watcher {
	if config == nil {
		config = DefaultConfig()
	}
	w := &Watcher{
		config:      config,
		fileHandler: fileHandler,
		fileFilter:  NewFileFilter(config.IgnorePatterns),
		stability:   NewStabilityChecker(time.Duration(config.StableThresholdMs) * time.Millisecond),
		done:        make(chan struct{}),
	}
	w.debouncer = NewDebouncer(time.Duration(config.DebounceSeconds)*time.Second, w.processFile)
	return w
}

// Start begins watching the drop directory for new files.
// The watcher runs until Stop() is called.
func (w *Watcher) Start(dir string) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		w.fsWatcher.Close()
		return err
	}
	if err := w.fsWatcher.Add(absDir); err != nil {
		w.fsWatcher.Close()
		return err
	}

	w.startTime = time.Now()
	w.done = make(chan struct{})

	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop gracefully shuts down the watcher and returns a summary of the
// session. Pending debounced files are dropped.
func (w *Watcher) Stop() *Summary {
	close(w.done)
	w.wg.Wait()

	w.debouncer.CancelAll()
	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	return &Summary{
		FilesDeposited: w.filesDeposited,
		FilesSkipped:   w.filesSkipped,
		FilesFailed:    w.filesFailed,
		Duration:       time.Since(w.startTime),
	}
}

// processEvents handles file system events from fsnotify.
func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// Only new files matter; writes to a pending file reset
			// its debounce timer.
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.handleFileEvent(event.Name)
			}
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; keep watching.
		}
	}
}

// handleFileEvent filters a single file event and schedules the rest.
func (w *Watcher) handleFileEvent(path string) {
	if w.fileFilter.ShouldIgnore(path) {
		w.mu.Lock()
		w.filesSkipped++
		w.mu.Unlock()
		return
	}
	w.debouncer.Add(path)
}

// processFile runs after the debounce delay: wait for the file size to
// stabilize, then hand the file to the handler.
func (w *Watcher) processFile(path string) {
	if err := w.stability.WaitForStable(path); err != nil {
		w.mu.Lock()
		w.filesSkipped++
		w.mu.Unlock()
		return
	}

	err := w.fileHandler(path)
	w.mu.Lock()
	if err != nil {
		w.filesFailed++
	} else {
		w.filesDeposited++
	}
	w.mu.Unlock()
}

// IsRunning returns true if the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	select {
	case <-w.done:
		return false
	default:
		return w.fsWatcher != nil
	}
}
