package ui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/yildizm/ClinicInfo/internal/logger"
)

// Watcher reports writes to the roster workbook. The parent directory is
// watched so that editors which save by rename are still seen.
type Watcher struct {
	fs   *fsnotify.Watcher
	path string
	log  *logger.Logger
}

// NewWatcher starts watching the workbook at path
func NewWatcher(path string, log *logger.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve roster path: %w", err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		cleanupWatcher(fs, log)
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	log.DebugWithFields("watching roster", []logger.Field{logger.Path(abs)})
	return &Watcher{fs: fs, path: abs, log: log}, nil
}

// Next returns a command that blocks until the workbook changes or the
// watcher fails. It yields nil once the watcher is closed.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return nil
				}
				if w.relevant(event) {
					w.log.Debug("roster event: %s", event)
					return rosterChangedMsg{path: w.path}
				}
			case err, ok := <-w.fs.Errors:
				if !ok {
					return nil
				}
				return watchErrorMsg{err: err}
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// Close stops the watcher
func (w *Watcher) Close() {
	if w == nil {
		return
	}
	cleanupWatcher(w.fs, w.log)
}

// cleanupWatcher safely closes watcher with error logging
func cleanupWatcher(fs *fsnotify.Watcher, log *logger.Logger) {
	if err := fs.Close(); err != nil {
		log.Warn("failed to close watcher: %v", err)
	}
}
