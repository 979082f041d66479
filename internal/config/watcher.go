package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
)

// Watcher reloads the config file when it changes on disk and hands the
// parsed result to a callback. Editors often replace the file (rename +
// create), so the parent directory is watched rather than the file itself.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	log       logr.Logger
	onChange  func(*Config)
}

// NewWatcher starts watching the config file at path. onChange is called
// with each successfully reloaded config; parse failures keep the previous
// config and are only logged.
func NewWatcher(path string, log logr.Logger, onChange func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsw,
		path:      abs,
		log:       log,
		onChange:  onChange,
	}, nil
}

// Run drives the fsnotify event loop until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			cfg, err := Load(w.path)
			if err != nil {
				w.log.Error(err, "config reload failed, keeping previous config", "path", w.path)
				continue
			}
			w.log.Info("config reloaded", "path", w.path)
			w.onChange(cfg)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Error(err, "config watcher error")
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
