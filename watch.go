package playink

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// watchDirs calls onChange with the file name whenever something under dirs
// is written, created, removed or renamed. New subdirectories are watched
// as they appear. It blocks until ctx is done.
func watchDirs(ctx context.Context, logger zerolog.Logger, dirs []string, onChange func(name string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, root := range dirs {
		if _, err := os.Stat(root); err != nil {
			logger.Warn().Str("dir", root).Msg("not watching missing directory")
			continue
		}
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if err := w.Add(p); err != nil {
					logger.Warn().Err(err).Str("dir", p).Msg("watch")
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&relevant == 0 {
				continue
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.Add(ev.Name); err != nil {
						logger.Warn().Err(err).Str("dir", ev.Name).Msg("watch")
					}
				}
			}
			logger.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("change detected")
			onChange(ev.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher")
		}
	}
}
