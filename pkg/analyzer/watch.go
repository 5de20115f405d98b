package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/simonhull/firebird-suite/wren/pkg/filesystem"
	"github.com/simonhull/firebird-suite/wren/pkg/logger"
)

// DefaultDebounce groups bursts of file events into one re-analysis
const DefaultDebounce = 150 * time.Millisecond

// ChangeFunc receives each analysis made by Watch. changed is nil for the
// initial analysis and lists the touched paths afterwards.
type ChangeFunc func(proj *Project, changed []string)

// WatchOptions configures Watch
type WatchOptions struct {
	Workers  int
	Debounce time.Duration
}

// Watch analyzes rootPath, reports the result to onChange, and analyzes
// again whenever a source file below rootPath changes. Unchanged files are
// served from the cache when one is configured. Watch returns when ctx is
// cancelled or the watcher fails.
func (a *Analyzer) Watch(ctx context.Context, rootPath string, opts WatchOptions, onChange ChangeFunc) error {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	info, err := os.Stat(rootPath)
	if err != nil {
		return fmt.Errorf("watching %s: %w", rootPath, err)
	}
	dir := rootPath
	if !info.IsDir() {
		dir = filepath.Dir(rootPath)
	}
	if err := a.watchTree(ctx, watcher, dir); err != nil {
		return err
	}

	run := func(changed []string) error {
		proj, err := a.AnalyzeParallel(ctx, rootPath, opts.Workers)
		if err != nil {
			return err
		}
		onChange(proj, changed)
		return nil
	}

	if err := run(nil); err != nil {
		return err
	}

	timer := time.NewTimer(opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := a.watchTree(ctx, watcher, ev.Name); err != nil {
						a.logger.Warn("Cannot watch directory", logger.F("path", ev.Name), logger.F("error", err))
					}
					continue
				}
			}
			if !a.isSource(ev.Name) || ev.Op == fsnotify.Chmod {
				continue
			}
			a.logger.Debug("Source changed", logger.F("file", ev.Name), logger.F("op", ev.Op.String()))
			pending[ev.Name] = true
			timer.Reset(opts.Debounce)

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for path := range pending {
				changed = append(changed, path)
			}
			pending = make(map[string]bool)
			if err := run(changed); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", rootPath, err)
		}
	}
}

// watchTree adds dir and its non-ignored subdirectories to the watcher
func (a *Analyzer) watchTree(ctx context.Context, w *fsnotify.Watcher, dir string) error {
	return filesystem.Walk(ctx, dir, filesystem.WalkOptions{IgnoreDirs: a.sources.IgnoreDirs},
		func(path string, d fs.DirEntry) error {
			if !d.IsDir() {
				return nil
			}
			if err := w.Add(path); err != nil {
				return fmt.Errorf("watching %s: %w", path, err)
			}
			return nil
		})
}

func (a *Analyzer) isSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range a.sources.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
