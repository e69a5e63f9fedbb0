package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watch calls reload with the new configuration every time the file at path
// is written or created, until ctx is done. A file that fails to parse is
// logged and skipped, callers keep whatever they had.
func Watch(ctx context.Context, path string, reload func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to watch config file: %w", err)
	}

	// Watch the directory, editors tend to replace files rather than write them
	path = filepath.Clean(path)
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("unable to watch config file: %w", err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				conf, err := Load(path)
				if err != nil {
					log.Warnf("Config reload failed, keeping the old one: %v", err)
					continue
				}
				log.Infof("Config reloaded from %s", path)
				reload(conf)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warnf("Config watcher: %v", err)
			}
		}
	}()
	return nil
}
