// Package tui is the terminal front end: a bubbletea program that turns key
// presses into navigation events and paints the screen on top of the stack.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/thiagokokada/gitnav/internal/git"
	"github.com/thiagokokada/gitnav/internal/nav"
)

// RunConfig describes the parameters that control the TUI runtime.
type RunConfig struct {
	RepoPath        string
	Backend         git.BackendKind
	Limit           int
	SearchLimit     int
	Timeout         time.Duration
	ThemePreference ThemePreference
	AutoReload      bool
	SyntaxHighlight bool
	Verbose         bool
	LogFile         string
}

func Run(cfg RunConfig) error {
	if cfg.RepoPath == "" {
		cfg.RepoPath = "."
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	svc, err := git.Open(cfg.RepoPath, cfg.Backend)
	if err != nil {
		return err
	}
	svc.SetTimeout(cfg.Timeout)
	slog.Info("starting",
		slog.String("repo", svc.RepoPath()),
		slog.String("backend", string(cfg.Backend)),
		slog.Duration("timeout", cfg.Timeout),
	)

	pref := cfg.ThemePreference
	if pref < ThemeAuto || pref > ThemeDark {
		pref = ThemeAuto
	}
	navigator := nav.New(svc, nav.Limits{Commits: cfg.Limit, Search: cfg.SearchLimit})
	m := newModel(navigator, paletteForPreference(pref), cfg.SyntaxHighlight)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if cfg.AutoReload && svc.RepoPath() != "" {
		w, err := startWatcher(svc.RepoPath(), func() { p.Send(reloadMsg{}) })
		if err != nil {
			slog.Error("auto reload disabled", slog.Any("error", err))
		} else {
			defer func() {
				if err := w.Close(); err != nil {
					slog.Error("watcher close", slog.Any("error", err))
				}
			}()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// setupLogging routes slog to a file, since the terminal belongs to the UI.
// Without --log-file or --verbose logs are discarded.
func setupLogging(cfg RunConfig) (func(), error) {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	path := cfg.LogFile
	if path == "" && cfg.Verbose {
		path = filepath.Join(os.TempDir(), fmt.Sprintf("gitnav-%s.log", uuid.NewString()))
	}
	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	if path != "" {
		fmt.Fprintf(os.Stderr, "gitnav: logging to %s\n", path)
	}
	return closeFn, nil
}
