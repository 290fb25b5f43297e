package convert

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-converts checklist files as they change on disk.
type Watcher struct {
	conv    *Converter
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the converter's input directory. The
// directory is watched rather than individual files: editors and download
// tools replace files with atomic renames.
func NewWatcher(conv *Converter) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := w.Add(conv.cfg.InputDir); err != nil {
		w.Close()

		return nil, fmt.Errorf("watch directory %s: %w", conv.cfg.InputDir, err)
	}

	return &Watcher{conv: conv, watcher: w}, nil
}

// Run processes file events until ctx is cancelled. Conversion failures
// and watcher errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	w.conv.logger.Info().
		Str("dir", w.conv.cfg.InputDir).
		Msg("watching for checklist changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !strings.EqualFold(filepath.Ext(event.Name), ".xml") {
				continue
			}

			// React to write or create (atomic save = create).
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			w.conv.logger.Debug().
				Str("event", event.Op.String()).
				Str("file", event.Name).
				Msg("checklist file changed")

			if _, err := w.conv.File(event.Name); err != nil {
				w.conv.logger.Error().Err(err).Str("file", event.Name).Msg("conversion failed")
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			w.conv.logger.Error().Err(err).Msg("file watcher error")
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
