package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/astroview-labs/astroview-cli/internal/logger"
)

// Watch reloads the configuration whenever the file changes and sends
// each fresh snapshot on the returned channel. Editors often replace
// the file atomically, so rename and remove events trigger a re-add of
// the watch path. The watcher stops when ctx is cancelled.
func (s *ConfigStore) Watch(ctx context.Context) (<-chan Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.filePath); err != nil {
		// The file may not exist yet; watch the directory instead so
		// creation is picked up.
		if dirErr := watcher.Add(filepath.Dir(s.filePath)); dirErr != nil {
			_ = watcher.Close()
			return nil, err
		}
	}

	updates := make(chan Config, 1)
	go func() {
		defer close(updates)
		defer func() { _ = watcher.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.filePath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
					continue
				}

				if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
					_ = watcher.Add(s.filePath)
				}

				if err := s.Load(); err != nil {
					logger.Warn("config reload failed: %v", err)
					continue
				}
				logger.Info("configuration reloaded from %s", s.filePath)

				select {
				case updates <- s.Config():
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher: %v", err)
			}
		}
	}()
	return updates, nil
}
