// Package watcher drives re-checks in watch mode. It watches a source
// tree recursively with fsnotify and coalesces event bursts through a
// rate limiter so a branch switch triggers one re-check, not hundreds.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/structura-labs/layerlint-cli/internal/logger"
)

// DefaultInterval is the minimum delay between re-checks.
const DefaultInterval = 500 * time.Millisecond

// Watcher watches a tree and invokes a callback on relevant changes.
type Watcher struct {
	root    string
	exts    []string
	limiter *rate.Limiter
}

// New creates a watcher for the tree at root. Only files with one of
// the given extensions (e.g. ".go", ".java", ".json") trigger the
// callback; directory events always do, since they may bring files in.
func New(root string, exts []string) *Watcher {
	return &Watcher{
		root:    root,
		exts:    exts,
		limiter: rate.NewLimiter(rate.Every(DefaultInterval), 1),
	}
}

// Run watches until the context is cancelled, invoking onChange after
// each coalesced burst of relevant events. The callback runs on the
// watch goroutine; a slow check naturally batches events arriving
// meanwhile. Returns nil on context cancellation.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := w.addRecursive(fsw, w.root); err != nil {
		return err
	}

	// A one-slot channel coalesces bursts: an event during a pending
	// trigger is absorbed.
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("watcher: %s %s", event.Op, event.Name)

			// New directories need their own watch before their
			// contents produce events.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(fsw, event.Name); err != nil {
						logger.Warn("watcher: watching %s: %v", event.Name, err)
					}
				}
			}

			select {
			case pending <- struct{}{}:
			default:
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: %v", err)

		case <-pending:
			if err := w.limiter.Wait(ctx); err != nil {
				return nil
			}
			// Absorb anything that arrived while waiting.
			select {
			case <-pending:
			default:
			}
			onChange(ctx)
		}
	}
}

// relevant filters events down to source file and directory changes.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
		return true
	}
	for _, ext := range w.exts {
		if strings.HasSuffix(event.Name, ext) {
			return true
		}
	}
	return false
}

// addRecursive watches dir and all subdirectories, skipping hidden ones.
func (w *Watcher) addRecursive(fsw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}
