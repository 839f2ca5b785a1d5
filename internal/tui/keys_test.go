package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestFormatShortcutsHelpText(t *testing.T) {
	bind := func(k, desc string) key.Binding {
		return key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
	}
	shortcuts := []shortcut{
		{category: "General", binding: bind("/", "Search commits")},
		{category: "General", binding: bind("r", "Refresh commits")},
		{category: "", binding: bind("x", "ignored (no category)")},
		{category: "Other", binding: key.NewBinding(key.WithKeys("y"))},
		{category: "Lists", binding: bind("j", "Move down")},
	}
	got := formatShortcutsHelpText(shortcuts)

	if !strings.Contains(got, "General\n") {
		t.Fatalf("expected General category header, got %q", got)
	}
	if !strings.Contains(got, "Lists\n") {
		t.Fatalf("expected Lists category header, got %q", got)
	}
	if !strings.Contains(got, "  /        Search commits") {
		t.Fatalf("expected formatted entry, got %q", got)
	}
	if !strings.Contains(got, "  j        Move down") {
		t.Fatalf("expected formatted entry, got %q", got)
	}
	if strings.Contains(got, "ignored") || strings.Contains(got, "Other") {
		t.Fatalf("expected ignored bindings to be absent, got %q", got)
	}
	if !strings.Contains(got, "General\n  /        Search commits\n  r        Refresh commits\n\nLists\n") {
		t.Fatalf("expected blank line between categories, got %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatalf("expected no trailing newline, got %q", got)
	}
}

func TestFullHelpGroupsByCategory(t *testing.T) {
	k := newKeyMap()
	groups := k.FullHelp()
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total != len(k.shortcuts()) {
		t.Fatalf("expected %d bindings, got %d", len(k.shortcuts()), total)
	}
	if got := groups[1][0].Help().Key; got != "b" {
		t.Fatalf("expected repository group to start with b, got %q", got)
	}
}
