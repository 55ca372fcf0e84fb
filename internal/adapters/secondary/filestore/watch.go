package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watch reloads the repository whenever its snapshot file is written or
// replaced by another process. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file itself: atomic
// replacement swaps the inode, which would silently end a file watch.
func Watch(ctx context.Context, repo *ContactRepository) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(repo.Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.WithField("path", repo.Path()).Info("watching phonebook snapshot for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != repo.Path() {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := repo.Reload(ctx); err != nil {
				log.WithError(err).Error("reload phonebook snapshot failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("phonebook snapshot watcher error")
		}
	}
}
