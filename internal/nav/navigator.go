package nav

import (
	"log/slog"
	"strings"

	"github.com/thiagokokada/gitnav/internal/git"
)

// Gateway is the repository data the navigator queries. *git.Service
// implements it; every method degrades to a placeholder instead of failing.
type Gateway interface {
	CurrentBranch() string
	CurrentDirectory() string
	Commits(count int) []git.Commit
	BranchCommits(branch string, count int) []git.Commit
	SearchCommits(query string, max int) []git.Commit
	SearchCommitsByAuthor(author string, max int) []git.Commit
	SearchCommitsByFile(path string, max int) []git.Commit
	CommitStats(hash string) string
	ChangedFiles(hash string) []string
	FileDiff(hash, path string) string
	AllBranches() []string
}

// Limits bounds list sizes; zero fields use the gateway defaults.
type Limits struct {
	Commits int
	Search  int
}

func (l Limits) withDefaults() Limits {
	if l.Commits <= 0 {
		l.Commits = git.DefaultCommitCount
	}
	if l.Search <= 0 {
		l.Search = git.DefaultSearchLimit
	}
	return l
}

// Navigator applies events to stacks. It holds no stack itself; callers keep
// the current Stack and replace it with what Dispatch returns.
type Navigator struct {
	gw     Gateway
	limits Limits
}

func New(gw Gateway, limits Limits) *Navigator {
	return &Navigator{gw: gw, limits: limits.withDefaults()}
}

func (n *Navigator) Limits() Limits { return n.limits }

// Start builds the initial stack: the recent commits of HEAD.
func (n *Navigator) Start() Stack {
	return NewStack(n.headList())
}

func (n *Navigator) headList() Screen {
	return newMainList("", n.gw.CurrentBranch(), n.gw.CurrentDirectory(), n.gw.Commits(n.limits.Commits))
}

func (n *Navigator) branchList(branch string) Screen {
	return newMainList(branch, branch, n.gw.CurrentDirectory(), n.gw.BranchCommits(branch, n.limits.Commits))
}

// Dispatch returns the stack that results from ev, and whether the program
// should quit. Events that do not apply to the top screen return the stack
// unchanged.
func (n *Navigator) Dispatch(s Stack, ev Event) (Stack, bool) {
	top := s.Top()
	switch ev := ev.(type) {
	case Shortcut:
		return n.shortcut(s, top, ev.Action)
	case Close:
		return s.Pop(), false
	case Select:
		return n.selectItem(s, top, ev.Index), false
	case Submit:
		return n.submit(s, top, ev.Text), false
	}
	return s, false
}

func (n *Navigator) shortcut(s Stack, top Screen, action Action) (Stack, bool) {
	if action == ActionQuit {
		return s, true
	}
	// The search input owns the keyboard while it is open.
	if top.kind == KindSearchInput {
		return s, false
	}
	switch action {
	case ActionBranches:
		if top.kind == KindBranchSelector {
			return s, false
		}
		return s.Push(newBranchSelector(n.gw.AllBranches(), n.gw.CurrentBranch())), false
	case ActionSearch:
		if top.kind == KindSearchTypeSelector {
			return s, false
		}
		return s.Push(newSearchTypeSelector()), false
	case ActionRefresh:
		return n.refresh(s), false
	}
	return s, false
}

// refresh rebuilds the base list with the same scope. It only applies while
// the base is the visible screen.
func (n *Navigator) refresh(s Stack) Stack {
	if s.Depth() != 1 {
		return s
	}
	base := s.Base()
	if base.ref == "" {
		return s.ReplaceBase(n.headList())
	}
	return s.ReplaceBase(n.branchList(base.ref))
}

func (n *Navigator) selectItem(s Stack, top Screen, idx int) Stack {
	switch top.kind {
	case KindMainList, KindSearchResults:
		commit := top.commitAt(idx)
		if commit.IsEmpty() {
			return s
		}
		slog.Debug("open commit", slog.String("hash", commit.Hash))
		return s.Push(newCommitDetail(commit, n.gw.CommitStats(commit.Hash), n.gw.ChangedFiles(commit.Hash)))
	case KindCommitDetail:
		if idx < 0 || idx >= len(top.files) || top.files[idx] == "" {
			return s
		}
		file := top.files[idx]
		return s.Push(newFileContent(top.commit, file, n.gw.FileDiff(top.commit.Hash, file)))
	case KindBranchSelector:
		if idx < 0 || idx >= len(top.branches) {
			return s
		}
		branch := top.branches[idx].name
		slog.Debug("switch branch", slog.String("branch", branch))
		return s.ReplaceBase(n.branchList(branch))
	case KindSearchTypeSelector:
		if idx < 0 || idx >= len(searchKinds) {
			return s
		}
		return s.ReplaceTop(newSearchInput(searchKinds[idx]))
	}
	return s
}

func (n *Navigator) submit(s Stack, top Screen, text string) Stack {
	if top.kind != KindSearchInput {
		return s
	}
	query := strings.TrimSpace(text)
	if query == "" {
		return s
	}
	var results []git.Commit
	switch top.searchKind {
	case SearchAuthor:
		results = n.gw.SearchCommitsByAuthor(query, n.limits.Search)
	case SearchFile:
		results = n.gw.SearchCommitsByFile(query, n.limits.Search)
	default:
		results = n.gw.SearchCommits(query, n.limits.Search)
	}
	slog.Debug("search",
		slog.String("kind", top.searchKind.String()),
		slog.String("query", query),
		slog.Int("results", len(results)),
	)
	return s.ReplaceTop(newSearchResults(top.searchKind, query, results))
}
