package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchSource calls reload with the content of path every time the file is
// written or replaced. The directory is watched rather than the file, since
// many editors save by renaming a new file over the old one.
func watchSource(path string, reload func(src string)) (io.Closer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	target := filepath.Clean(path)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				src, err := os.ReadFile(path)
				if err != nil {
					log.Printf("shader watcher: %v", err)
					continue
				}
				if len(src) == 0 {
					// truncated mid-save, a second write follows
					continue
				}
				reload(string(src))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("shader watcher error: %v", err)
			}
		}
	}()
	return watcher, nil
}
