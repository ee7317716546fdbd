// ABOUTME: Watcher auto-ingests supported files created or modified in a directory
// ABOUTME: Wraps fsnotify and serializes ingestion through the Ingestor
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a directory and feeds new study material to the Ingestor.
type Watcher struct {
	ingestor *Ingestor
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
}

// NewWatcher creates a directory watcher bound to the ingestor.
func NewWatcher(ingestor *Ingestor, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		ingestor: ingestor,
		watcher:  fsWatcher,
		logger:   logger,
	}, nil
}

// Watch blocks ingesting created and modified supported files under dir
// until the context is cancelled. Ingestion errors are logged, not fatal.
func (w *Watcher) Watch(ctx context.Context, dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.logger.Info("watching directory", "dir", dir, "extensions", SupportedExtensions)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !IsSupported(event.Name) {
				continue
			}
			if _, _, err := w.ingestor.IngestFile(ctx, event.Name); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				w.logger.Warn("failed to ingest watched file", "path", event.Name, "error", err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
