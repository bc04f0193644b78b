package prediction

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/jonathan/career-advisor/internal/logger"
)

// Loader reads a model artifact from path.
type Loader func(path string) (Model, error)

// Watch reloads the model whenever the file at path is written or replaced, until ctx is
// cancelled. A model that fails to load is logged and the active model is kept. The
// parent directory is watched so that atomic rename-into-place is observed.
func (p *Predictor) Watch(ctx context.Context, path string, load Loader) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			p.reload(target, load)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(werr).Str("path", target).Msg("model watcher error")
		}
	}
}

func (p *Predictor) reload(path string, load Loader) {
	model, err := load(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("model reload failed, keeping current model")
		return
	}
	p.Swap(model)
	logger.Info().Str("path", path).Msg("model reloaded")
}
