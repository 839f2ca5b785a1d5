package tui

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/thiagokokada/gitnav/internal/debounce"
)

const autoReloadDebounceDelay = 350 * time.Millisecond

// repoWatcher calls notify once a burst of repository changes settles.
type repoWatcher struct {
	mu       sync.Mutex
	fs       *fsnotify.Watcher
	debounce *debounce.Debouncer
	notify   func()
	done     chan struct{}
}

func startWatcher(root string, notify func()) (*repoWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	for path := range watchPaths(root) {
		slog.Debug("adding path to FS watcher", slog.String("path", path))
		if err := fw.Add(path); err != nil {
			err := errors.Join(err, fw.Close())
			return nil, fmt.Errorf("watch %s: %w", path, err)
		}
	}
	w := &repoWatcher{fs: fw, notify: notify, done: make(chan struct{})}
	go w.loop(fw)
	return w, nil
}

func (w *repoWatcher) loop(fw *fsnotify.Watcher) {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if shouldIgnoreWatchPath(ev.Name) {
				continue
			}
			slog.Debug("fsnotify event",
				slog.String("op", ev.Op.String()),
				slog.String("path", ev.Name),
			)
			w.schedule()
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			slog.Error("fsnotify error", slog.Any("error", err))
		}
	}
}

func (w *repoWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fs == nil {
		return
	}
	debounce.Ensure(&w.debounce, autoReloadDebounceDelay, w.notify).Trigger()
}

// Close stops watching and drops any pending notification.
func (w *repoWatcher) Close() error {
	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
		w.debounce = nil
	}
	fw := w.fs
	w.fs = nil
	w.mu.Unlock()
	if fw == nil {
		return nil
	}
	err := fw.Close()
	<-w.done
	return err
}

// watchPaths lists the directories whose changes affect the commit lists:
// the git dir and its local branch refs, or root itself when there is no
// .git directory (bare repositories, linked worktrees).
func watchPaths(root string) iter.Seq[string] {
	if root == "" {
		return slices.Values([]string(nil))
	}
	gitDir := filepath.Join(root, ".git")
	if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
		paths := []string{gitDir}
		heads := filepath.Join(gitDir, "refs", "heads")
		if info, err := os.Stat(heads); err == nil && info.IsDir() {
			paths = append(paths, heads)
		}
		return slices.Values(paths)
	}
	return slices.Values([]string{root})
}

func shouldIgnoreWatchPath(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".lock" || ext == ".ipc"
}
