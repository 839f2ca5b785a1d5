package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	darkmode "github.com/thiagokokada/dark-mode-go"
)

type ThemePreference int

const (
	ThemeAuto ThemePreference = iota
	ThemeLight
	ThemeDark
)

func (p ThemePreference) String() string {
	switch p {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "auto"
	}
}

type colorPalette struct {
	Name        string
	ChromaStyle string
	Title       lipgloss.Color
	Header      lipgloss.Color
	Cursor      lipgloss.Color
	CursorText  lipgloss.Color
	Muted       lipgloss.Color
	Rule        lipgloss.Color
}

var (
	lightPalette = colorPalette{
		Name:        "light",
		ChromaStyle: "github",
		Title:       lipgloss.Color("#0550ae"),
		Header:      lipgloss.Color("#57606a"),
		Cursor:      lipgloss.Color("#ddf4ff"),
		CursorText:  lipgloss.Color("#1f2328"),
		Muted:       lipgloss.Color("#8c959f"),
		Rule:        lipgloss.Color("#d0d7de"),
	}
	darkPalette = colorPalette{
		Name:        "dark",
		ChromaStyle: "github-dark",
		Title:       lipgloss.Color("#79c0ff"),
		Header:      lipgloss.Color("#8b949e"),
		Cursor:      lipgloss.Color("#1f3b5a"),
		CursorText:  lipgloss.Color("#e6edf3"),
		Muted:       lipgloss.Color("#6e7681"),
		Rule:        lipgloss.Color("#30363d"),
	}
	detectDarkMode = darkmode.IsDarkMode
)

func ThemePreferenceFromString(raw string) ThemePreference {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ThemeDark.String():
		return ThemeDark
	case ThemeLight.String():
		return ThemeLight
	default:
		return ThemeAuto
	}
}

func paletteForPreference(pref ThemePreference) colorPalette {
	switch pref {
	case ThemeDark:
		return darkPalette
	case ThemeLight:
		return lightPalette
	default:
		if detectDarkMode != nil {
			if dark, err := detectDarkMode(); err == nil {
				if dark {
					return darkPalette
				}
			} else {
				slog.Debug("detect dark-mode", slog.Any("error", err))
			}
		}
		return lightPalette
	}
}

func (p colorPalette) isDark() bool {
	return p.Name == darkPalette.Name
}

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	section  lipgloss.Style
	item     lipgloss.Style
	cursor   lipgloss.Style
	disabled lipgloss.Style
	rule     lipgloss.Style
	actions  lipgloss.Style
}

func newStyles(p colorPalette) styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.Title).MarginBottom(1),
		header:   lipgloss.NewStyle().Foreground(p.Header),
		section:  lipgloss.NewStyle().Bold(true).Underline(true),
		item:     lipgloss.NewStyle().PaddingLeft(2),
		cursor:   lipgloss.NewStyle().PaddingLeft(1).Bold(true).Background(p.Cursor).Foreground(p.CursorText),
		disabled: lipgloss.NewStyle().PaddingLeft(2).Italic(true).Foreground(p.Muted),
		rule:     lipgloss.NewStyle().Foreground(p.Rule),
		actions:  lipgloss.NewStyle().Foreground(p.Muted),
	}
}
