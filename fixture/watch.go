package fixture

import (
	"context"
	"github.com/Marat-Tanalin/integer-scaling/common/logger"
	"github.com/fsnotify/fsnotify"
	"path/filepath"
)

type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the directory of path. Editors often save
// through a rename, so the directory is watched instead of the file.
func NewWatcher(path string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return &Watcher{
		path:    path,
		watcher: watcher,
	}, nil
}

// Run calls onChange with the reloaded cases each time the file is written
// or created. Files that fail to load are logged and skipped. Run returns
// when ctx is cancelled.
func (s *Watcher) Run(ctx context.Context, onChange func([]*Case)) error {
	defer s.watcher.Close()
	logger.Info.Printf("Watching %s for changes", s.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-s.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cases, err := Load(s.path)
			if err != nil {
				logger.Warn.Printf("Reload failed, keeping previous test cases: %s", err)
				continue
			}
			logger.Debug.Printf("Reloaded %s", s.path)
			onChange(cases)

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error.Printf("Watcher error: %s", err)
		}
	}
}

func Watch(ctx context.Context, path string, onChange func([]*Case)) error {
	watcher, err := NewWatcher(path)
	if err != nil {
		return err
	}
	return watcher.Run(ctx, onChange)
}
