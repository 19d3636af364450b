package model

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/ringnet/quakecast/internal/logger"
)

// Watch reloads the artifact at path into h whenever the file is written or
// recreated. A reload that fails to decode is logged and the previous model
// keeps serving. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, h *Holder, log logger.Logger, onReload func(*Model)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch model: %w", err)
	}
	defer w.Close()

	// Editors and exporters often replace the file, so watch the directory.
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch model: %w", err)
	}
	log.Debug("watching model artifact", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			m, err := Load(target)
			if err != nil {
				log.Warn("model reload failed, keeping previous model", "path", target, "error", err)
				continue
			}
			h.Store(target, m)
			log.Info("model reloaded", "path", target, "kind", m.Info().Kind)
			if onReload != nil {
				onReload(m)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("model watcher error", "error", err)
		}
	}
}
