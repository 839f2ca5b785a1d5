// Package nav holds the navigation state of the browser: an immutable stack
// of screens and the transitions user events apply to it.
package nav

import (
	"slices"

	"github.com/thiagokokada/gitnav/internal/git"
)

// Kind tags the variant a Screen holds.
type Kind int

const (
	KindMainList Kind = iota + 1
	KindBranchSelector
	KindSearchTypeSelector
	KindSearchInput
	KindSearchResults
	KindCommitDetail
	KindFileContent
)

func (k Kind) String() string {
	switch k {
	case KindMainList:
		return "main-list"
	case KindBranchSelector:
		return "branch-selector"
	case KindSearchTypeSelector:
		return "search-type-selector"
	case KindSearchInput:
		return "search-input"
	case KindSearchResults:
		return "search-results"
	case KindCommitDetail:
		return "commit-detail"
	case KindFileContent:
		return "file-content"
	default:
		return "unknown"
	}
}

// SearchKind selects which gateway search a SearchInput submits to.
type SearchKind int

const (
	SearchMessage SearchKind = iota
	SearchAuthor
	SearchFile
)

var searchKinds = []SearchKind{SearchMessage, SearchAuthor, SearchFile}

func (k SearchKind) String() string {
	switch k {
	case SearchAuthor:
		return "author"
	case SearchFile:
		return "file"
	default:
		return "message"
	}
}

func (k SearchKind) label() string {
	switch k {
	case SearchAuthor:
		return "Search by author"
	case SearchFile:
		return "Search by filename"
	default:
		return "Search by commit message"
	}
}

// Prompt is the text shown above the search input.
func (k SearchKind) Prompt() string {
	switch k {
	case SearchAuthor:
		return "Enter author name:"
	case SearchFile:
		return "Enter filename (e.g., src/main.rs):"
	default:
		return "Enter search term for commit messages:"
	}
}

// Screen is one navigation unit with the data snapshot fetched when it was
// built. Fields are unexported and accessors return copies, so a Screen never
// changes after construction.
type Screen struct {
	kind Kind

	// main list
	ref       string // "" means HEAD
	branch    string
	directory string

	// main list, search results
	commits []git.Commit

	branches []branchChoice

	searchKind SearchKind
	query      string

	// commit detail, file content
	commit  git.Commit
	stats   string
	files   []string
	file    string
	content string
}

func newMainList(ref, branch, directory string, commits []git.Commit) Screen {
	return Screen{
		kind:      KindMainList,
		ref:       ref,
		branch:    branch,
		directory: directory,
		commits:   slices.Clone(commits),
	}
}

func newBranchSelector(branches []string, current string) Screen {
	return Screen{kind: KindBranchSelector, branches: buildBranchChoices(branches, current)}
}

func newSearchTypeSelector() Screen {
	return Screen{kind: KindSearchTypeSelector}
}

func newSearchInput(kind SearchKind) Screen {
	return Screen{kind: KindSearchInput, searchKind: kind}
}

func newSearchResults(kind SearchKind, query string, commits []git.Commit) Screen {
	return Screen{
		kind:       KindSearchResults,
		searchKind: kind,
		query:      query,
		commits:    slices.Clone(commits),
	}
}

func newCommitDetail(commit git.Commit, stats string, files []string) Screen {
	return Screen{
		kind:   KindCommitDetail,
		commit: commit,
		stats:  stats,
		files:  slices.Clone(files),
	}
}

func newFileContent(commit git.Commit, file, content string) Screen {
	return Screen{
		kind:    KindFileContent,
		commit:  commit,
		file:    file,
		content: content,
	}
}

func (s Screen) Kind() Kind { return s.kind }

// Ref is the revision a main list was built from; empty means HEAD.
func (s Screen) Ref() string       { return s.ref }
func (s Screen) Branch() string    { return s.branch }
func (s Screen) Directory() string { return s.directory }

func (s Screen) Commits() []git.Commit { return slices.Clone(s.commits) }

// BranchNames lists the selector's branches in display order.
func (s Screen) BranchNames() []string {
	names := make([]string, 0, len(s.branches))
	for _, c := range s.branches {
		names = append(names, c.name)
	}
	return names
}

func (s Screen) SearchKind() SearchKind { return s.searchKind }
func (s Screen) Query() string          { return s.query }
func (s Screen) Commit() git.Commit     { return s.commit }
func (s Screen) Stats() string          { return s.stats }
func (s Screen) Files() []string        { return slices.Clone(s.files) }
func (s Screen) File() string           { return s.file }
func (s Screen) Content() string        { return s.content }

// ItemCount is the number of selectable rows the screen offers.
func (s Screen) ItemCount() int {
	switch s.kind {
	case KindMainList, KindSearchResults:
		return len(s.commits)
	case KindBranchSelector:
		return len(s.branches)
	case KindSearchTypeSelector:
		return len(searchKinds)
	case KindCommitDetail:
		return len(s.files)
	default:
		return 0
	}
}

// commitAt returns the commit behind row i, or the empty sentinel.
func (s Screen) commitAt(i int) git.Commit {
	if i < 0 || i >= len(s.commits) {
		return git.Commit{}
	}
	return s.commits[i]
}
