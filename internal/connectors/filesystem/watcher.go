// Package filesystem watches a directory for new study materials so they can
// be ingested into the knowledge base without re-running the ingest command.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherFailed indicates the filesystem watcher failed to initialise.
var ErrWatcherFailed = errors.New("failed to initialise filesystem watcher")

// Watcher emits paths of supported files created or modified in a directory.
type Watcher struct {
	dir     string
	exts    map[string]bool
	watcher *fsnotify.Watcher
	events  chan string
	stop    chan struct{}
}

// NewWatcher creates a watcher over dir for files with the given extensions
// (lowercase, including the dot, e.g. ".txt").
func NewWatcher(dir string, extensions []string) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat watch directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch path %s is not a directory", dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatcherFailed, err)
	}

	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = true
	}

	return &Watcher{
		dir:     dir,
		exts:    exts,
		watcher: fsw,
		events:  make(chan string, 16),
		stop:    make(chan struct{}),
	}, nil
}

// Start begins watching. Events are delivered on the Events() channel until
// the context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	go w.loop(ctx)
	return nil
}

// Events returns the channel of ingestable file paths.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Stop shuts the watcher down and releases the underlying resources.
func (w *Watcher) Stop() error {
	close(w.stop)
	return w.watcher.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.shouldIngest(event) {
				continue
			}
			select {
			case w.events <- event.Name:
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; keep watching.
		}
	}
}

// shouldIngest reports whether an event refers to a newly available file of a
// supported type. Removals, renames, directories, and hidden files are skipped.
func (w *Watcher) shouldIngest(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	if isHidden(event.Name) {
		return false
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return false
	}

	return w.exts[strings.ToLower(filepath.Ext(event.Name))]
}

// isHidden reports whether any path component starts with a dot.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." || part == "" {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
