package nav

import (
	"fmt"
	"strings"

	"github.com/thiagokokada/gitnav/internal/git"
)

// Item is one row of a screen's list.
type Item struct {
	Label string
	// Selectable is false for "nothing here" placeholder rows.
	Selectable bool
}

// View is the render-ready projection of a Screen.
type View struct {
	Title      string
	Header     []string
	ItemsTitle string
	Items      []Item
	Text       string
	Prompt     string
	Actions    []string
	// Input reports that the screen reads free text instead of keys.
	Input bool
}

const fileRuleWidth = 60

// View projects the screen for the presentation layer.
func (s Screen) View() View {
	switch s.kind {
	case KindMainList:
		return View{
			Title: "Git Repository Explorer",
			Header: []string{
				"Directory: " + s.directory,
				"Branch: " + s.branch,
			},
			ItemsTitle: "Commits",
			Items:      commitItems(s.commits, "No commits found"),
		}
	case KindBranchSelector:
		items := make([]Item, 0, len(s.branches))
		for _, c := range s.branches {
			items = append(items, Item{Label: c.display, Selectable: true})
		}
		if len(items) == 0 {
			items = append(items, Item{Label: "No branches found"})
		}
		return View{
			Title:      "Select Branch",
			ItemsTitle: "Branches",
			Items:      items,
			Actions:    []string{"Cancel"},
		}
	case KindSearchTypeSelector:
		items := make([]Item, 0, len(searchKinds))
		for _, k := range searchKinds {
			items = append(items, Item{Label: k.label(), Selectable: true})
		}
		return View{
			Title:   "Search Commits",
			Items:   items,
			Actions: []string{"Cancel"},
		}
	case KindSearchInput:
		return View{
			Title:   "Search",
			Prompt:  s.searchKind.Prompt(),
			Actions: []string{"Search", "Cancel"},
			Input:   true,
		}
	case KindSearchResults:
		return View{
			Title:      fmt.Sprintf("Search Results: '%s'", s.query),
			Header:     []string{fmt.Sprintf("Found %d commit(s) by %s", len(s.commits), s.searchKind)},
			ItemsTitle: "Commits",
			Items:      commitItems(s.commits, fmt.Sprintf("No results found for '%s'", s.query)),
			Actions:    []string{"Close"},
		}
	case KindCommitDetail:
		items := make([]Item, 0, len(s.files))
		for _, f := range s.files {
			items = append(items, Item{Label: f, Selectable: f != ""})
		}
		if len(items) == 0 {
			items = append(items, Item{Label: "No files changed"})
		}
		return View{
			Title:      "Commit Details",
			Text:       commitDetailText(s.commit, s.stats),
			ItemsTitle: "Changed Files",
			Items:      items,
			Actions:    []string{"Close"},
		}
	case KindFileContent:
		return View{
			Title: "File Content",
			Header: []string{
				"File: " + s.file,
				"Commit: " + s.commit.ShortHash(),
				strings.Repeat("-", fileRuleWidth),
			},
			Text:    s.content,
			Actions: []string{"Close"},
		}
	}
	return View{}
}

// CommitLabel formats a commit row.
func CommitLabel(c git.Commit) string {
	return fmt.Sprintf("%s - %s - %s", c.ShortHash(), c.Date, c.Message)
}

func commitItems(commits []git.Commit, empty string) []Item {
	items := make([]Item, 0, len(commits))
	for _, c := range commits {
		items = append(items, Item{Label: CommitLabel(c), Selectable: !c.IsEmpty()})
	}
	if len(items) == 0 {
		items = append(items, Item{Label: empty})
	}
	return items
}

func commitDetailText(c git.Commit, stats string) string {
	return fmt.Sprintf("Hash: %s\nAuthor: %s\nDate: %s\n\nMessage:\n%s\n\n%s",
		c.Hash, c.Author, c.Date, c.Message, stats)
}
