package internal

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/avendel/folio/internal/literal"
	"github.com/avendel/folio/internal/sse"
	"github.com/avendel/folio/internal/storage"
	"github.com/avendel/folio/internal/store"
)

// watchDataFile watches the data file's directory and reloads the store
// whenever the file is overwritten from outside the process — by the save
// server, or by the owner pasting clipboard content into it by hand.
//
// Events are debounced: an atomic write (tmp → rename) and most editors
// produce several events in quick succession for one logical change.
func watchDataFile(ctx context.Context, file *storage.DataFile, st *store.Store, broker *sse.Broker, logger *slog.Logger) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("watcher: init failed", slog.String("error", err.Error()))
		return
	}
	defer w.Close()

	dir := filepath.Dir(file.Path())
	if err := w.Add(dir); err != nil {
		logger.Error("watcher: watch dir failed",
			slog.String("dir", dir),
			slog.String("error", err.Error()))
		return
	}

	logger.Info("watcher: started", slog.String("path", file.Path()))

	var reloadTimer *time.Timer
	var reloadCh <-chan time.Time

	scheduleReload := func() {
		if reloadTimer == nil {
			reloadTimer = time.NewTimer(200 * time.Millisecond)
			reloadCh = reloadTimer.C
		} else {
			reloadTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return

		case <-reloadCh:
			reload(file, st, broker, logger)

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Name != file.Path() {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				scheduleReload()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// reload re-parses the data file and swaps the result into the store. Parse
// failures are logged and skipped: a half-pasted file must not take the
// running snapshot down.
func reload(file *storage.DataFile, st *store.Store, broker *sse.Broker, logger *slog.Logger) {
	if !file.Exists() {
		return
	}
	data, err := file.Read()
	if err != nil {
		logger.Warn("watcher: read failed", slog.String("error", err.Error()))
		return
	}
	snapshot, err := literal.Unmarshal(data)
	if err != nil {
		logger.Warn("watcher: data file not parseable, keeping current snapshot",
			slog.String("error", err.Error()))
		return
	}
	st.Replace(snapshot)
	if broker != nil {
		broker.PublishEdit()
	}
	logger.Info("watcher: reloaded data file", slog.String("path", file.Path()))
}
