package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Source hands out the current Library and can swap it when content on disk
// changes. Readers never block.
type Source struct {
	current atomic.Pointer[Library]
	log     *zap.Logger
}

func NewSource(lib *Library, log *zap.Logger) *Source {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Source{log: log}
	s.current.Store(lib)
	return s
}

func (s *Source) Library() *Library { return s.current.Load() }

// Reload replaces the library with the contents of dir. On failure the
// previous library stays in place.
func (s *Source) Reload(dir string) error {
	lib, err := LoadDir(dir)
	if err != nil {
		return err
	}
	s.current.Store(lib)
	return nil
}

// Watch reloads dir whenever a variant file changes, until ctx is done.
func (s *Source) Watch(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating content watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	s.log.Info("watching content directory", zap.String("dir", dir))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(ev.Name) != ".yaml" || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) {
				continue
			}
			if err := s.Reload(dir); err != nil {
				s.log.Error("content reload failed, keeping previous content", zap.String("file", ev.Name), zap.Error(err))
				continue
			}
			s.log.Info("content reloaded", zap.String("file", ev.Name), zap.Strings("variants", s.Library().Names()))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("content watcher error", zap.Error(err))
		}
	}
}
