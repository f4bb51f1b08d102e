package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 250 * time.Millisecond

// fileWatcher reports changes to a single file. It watches the parent
// directory so that editors replacing the file by rename are still seen.
type fileWatcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
	watcher  *fsnotify.Watcher
}

func newFileWatcher(path string, debounce time.Duration, logger *zap.Logger) (*fileWatcher, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	return &fileWatcher{
		path:     path,
		debounce: debounce,
		logger:   logger,
		watcher:  fw,
	}, nil
}

// Close stops watching.
func (w *fileWatcher) Close() error {
	return w.watcher.Close()
}

// Run calls onChange once per burst of changes to the file, after the
// file has been quiet for the debounce interval. It returns when ctx is
// done or the watcher is closed. Errors from onChange are logged.
func (w *fileWatcher) Run(ctx context.Context, onChange func() error) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.logger.Debug("input changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
				timer.Reset(w.debounce)
				fire = timer.C
			}

		case <-fire:
			fire = nil
			if err := onChange(); err != nil {
				w.logger.Error("generation failed", zap.Error(err))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}
