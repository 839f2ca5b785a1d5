package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Select   key.Binding
	Close    key.Binding

	Branches key.Binding
	Search   key.Binding
	Refresh  key.Binding

	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	// Only active while the search input is focused.
	Submit key.Binding
	Cancel key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first item")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last item")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Close:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "close")),

		Branches: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "branches")),
		Search:   key.NewBinding(key.WithKeys("s", "/"), key.WithHelp("s", "search")),
		Refresh:  key.NewBinding(key.WithKeys("r", "f5"), key.WithHelp("r", "refresh")),

		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Close, k.Branches, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	var groups [][]key.Binding
	current := ""
	for _, sc := range k.shortcuts() {
		if sc.category != current {
			groups = append(groups, nil)
			current = sc.category
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], sc.binding)
	}
	return groups
}

// inputHelp is the footer while the search input has focus.
type inputHelp struct{ k keyMap }

func (h inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Submit, h.k.Cancel, h.k.ForceQuit}
}

func (h inputHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

type shortcut struct {
	binding  key.Binding
	category string
}

func (k keyMap) shortcuts() []shortcut {
	return []shortcut{
		{category: "Lists", binding: k.Up},
		{category: "Lists", binding: k.Down},
		{category: "Lists", binding: k.PageUp},
		{category: "Lists", binding: k.PageDown},
		{category: "Lists", binding: k.Home},
		{category: "Lists", binding: k.End},
		{category: "Lists", binding: k.Select},
		{category: "Lists", binding: k.Close},
		{category: "Repository", binding: k.Branches},
		{category: "Repository", binding: k.Search},
		{category: "Repository", binding: k.Refresh},
		{category: "General", binding: k.Help},
		{category: "General", binding: k.Quit},
		{category: "General", binding: k.ForceQuit},
	}
}

// formatShortcutsHelpText renders the help overlay, one block per category.
// Bindings without a category or help text are skipped.
func formatShortcutsHelpText(shortcuts []shortcut) string {
	var b strings.Builder
	currentCategory := ""
	for _, sc := range shortcuts {
		h := sc.binding.Help()
		if sc.category == "" || h.Key == "" || h.Desc == "" {
			continue
		}
		if sc.category != currentCategory {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			currentCategory = sc.category
			b.WriteString(currentCategory)
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  %-8s %s\n", h.Key, h.Desc)
	}
	return strings.TrimRight(b.String(), "\n")
}
