// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Wrangle Ltd

package watch

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/go-logr/logr"
	"github.com/pckhoi/meow"
)

// Watcher reports when the content of any of a set of files changes.
// Parent directories are watched rather than the files themselves so that
// editors which save by renaming are still noticed.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  logr.Logger
	sums    map[string][16]byte
}

func checksum(path string) ([16]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return [16]byte{}, err
	}
	return meow.Checksum(0, b), nil
}

func New(logger logr.Logger, paths ...string) (*Watcher, error) {
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}
	w := &Watcher{
		logger: logger.WithName("watch"),
		sums:   map[string][16]byte{},
	}
	dirs := map[string]struct{}{}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		sum, err := checksum(abs)
		if err != nil {
			return nil, err
		}
		w.sums[abs] = sum
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}
	w.watcher = watcher
	return w, nil
}

// changed reports whether the file at path has different content than the
// last time it was seen.
func (w *Watcher) changed(path string) bool {
	prev, ok := w.sums[path]
	if !ok {
		return false
	}
	sum, err := checksum(path)
	if err != nil {
		w.logger.V(1).Info("skipping unreadable file", "path", path, "error", err.Error())
		return false
	}
	if sum == prev {
		return false
	}
	w.sums[path] = sum
	return true
}

// Run calls onChange with the path of a watched file every time its content
// changes, until ctx is done or the watcher fails.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if w.changed(name) {
				w.logger.V(1).Info("file changed", "path", name, "op", event.Op.String())
				onChange(name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
