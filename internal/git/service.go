package git

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"
)

const (
	DefaultCommitCount = 20
	DefaultSearchLimit = 50
	// MaxFileLines caps the text FileDiff returns.
	MaxFileLines   = 1000
	DefaultTimeout = 10 * time.Second
)

// Placeholders returned in place of data when a query fails.
const (
	GitNotFound          = "Git not found"
	NotARepository       = "Not a git repository"
	UnknownDirectory     = "Unknown"
	NoStatsAvailable     = "No stats available"
	FileContentNotLoaded = "File content not available"
)

// Service is the repository gateway used by the navigation layer. Every
// query is synchronous, bounded by a timeout, and never fails: errors are
// logged and turned into the placeholder or empty value documented on each
// method.
type Service struct {
	backend Backend
	timeout time.Duration

	// getwd is swapped in tests.
	getwd func() (string, error)
}

// Open returns a Service for the repository containing repoPath.
func Open(repoPath string, kind BackendKind) (*Service, error) {
	var (
		backend Backend
		err     error
	)
	switch kind {
	case BackendNative:
		backend, err = OpenNative(repoPath)
	default:
		backend, err = OpenCLI(repoPath)
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("repository opened",
		slog.String("path", backend.RepoPath()),
		slog.String("backend", string(kind)),
	)
	return NewWithBackend(backend), nil
}

func NewWithBackend(b Backend) *Service {
	return &Service{backend: b, timeout: DefaultTimeout, getwd: os.Getwd}
}

// SetTimeout bounds each backend query; d <= 0 restores DefaultTimeout.
func (s *Service) SetTimeout(d time.Duration) {
	if d <= 0 {
		d = DefaultTimeout
	}
	s.timeout = d
}

func (s *Service) RepoPath() string {
	if s == nil || s.backend == nil {
		return ""
	}
	return s.backend.RepoPath()
}

func (s *Service) queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func logQueryError(op string, err error, attrs ...any) {
	args := append([]any{slog.Any("error", err)}, attrs...)
	slog.Debug(op+" failed", args...)
}

// CurrentBranch names the checked-out branch, "HEAD" when detached, or a
// placeholder when git is missing or the directory is not a repository.
func (s *Service) CurrentBranch() string {
	ctx, cancel := s.queryContext()
	defer cancel()
	name, err := s.backend.CurrentBranch(ctx)
	if err != nil {
		logQueryError("CurrentBranch", err)
		if errors.Is(err, ErrGitNotFound) {
			return GitNotFound
		}
		return NotARepository
	}
	return name
}

// CurrentDirectory returns the repository root, falling back to the process
// working directory.
func (s *Service) CurrentDirectory() string {
	if root := s.RepoPath(); root != "" {
		return root
	}
	wd, err := s.getwd()
	if err != nil || wd == "" {
		logQueryError("CurrentDirectory", err)
		return UnknownDirectory
	}
	return wd
}

func (s *Service) log(op string, q LogQuery) []Commit {
	ctx, cancel := s.queryContext()
	defer cancel()
	commits, err := s.backend.Log(ctx, q)
	if err != nil {
		logQueryError(op, err,
			slog.String("ref", q.Ref),
			slog.Int("max", q.Max),
		)
		return []Commit{}
	}
	if commits == nil {
		return []Commit{}
	}
	return commits
}

// Commits lists up to count commits reachable from HEAD, newest first.
func (s *Service) Commits(count int) []Commit {
	if count <= 0 {
		count = DefaultCommitCount
	}
	return s.log("Commits", LogQuery{Max: count})
}

func (s *Service) BranchCommits(branch string, count int) []Commit {
	if count <= 0 {
		count = DefaultCommitCount
	}
	return s.log("BranchCommits", LogQuery{Ref: branch, Max: count})
}

// SearchCommits matches query against commit messages, literally and
// ignoring case.
func (s *Service) SearchCommits(query string, max int) []Commit {
	term := sanitizeTerm(query)
	if term == "" {
		return []Commit{}
	}
	return s.log("SearchCommits", LogQuery{Grep: term, Max: searchLimit(max)})
}

func (s *Service) SearchCommitsByAuthor(author string, max int) []Commit {
	term := sanitizeTerm(author)
	if term == "" {
		return []Commit{}
	}
	return s.log("SearchCommitsByAuthor", LogQuery{Author: term, Max: searchLimit(max)})
}

// SearchCommitsByFile lists commits touching exactly path.
func (s *Service) SearchCommitsByFile(path string, max int) []Commit {
	term := sanitizeTerm(path)
	if term == "" {
		return []Commit{}
	}
	return s.log("SearchCommitsByFile", LogQuery{Path: term, Max: searchLimit(max)})
}

func searchLimit(max int) int {
	if max <= 0 {
		return DefaultSearchLimit
	}
	return max
}

func (s *Service) CommitStats(hash string) string {
	ctx, cancel := s.queryContext()
	defer cancel()
	stats, err := s.backend.CommitStats(ctx, hash)
	if err != nil {
		logQueryError("CommitStats", err, slog.String("hash", hash))
		return NoStatsAvailable
	}
	if stats == "" {
		return NoStatsAvailable
	}
	return stats
}

// ChangedFiles lists paths touched by the commit, without build outputs,
// object files or repository metadata.
func (s *Service) ChangedFiles(hash string) []string {
	ctx, cancel := s.queryContext()
	defer cancel()
	files, err := s.backend.ChangedFiles(ctx, hash)
	if err != nil {
		logQueryError("ChangedFiles", err, slog.String("hash", hash))
		return []string{}
	}
	return filterChangedFiles(files)
}

// FileDiff returns the file as of the commit, cut to MaxFileLines lines.
func (s *Service) FileDiff(hash, path string) string {
	ctx, cancel := s.queryContext()
	defer cancel()
	content, err := s.backend.FileContent(ctx, hash, path)
	if err != nil {
		logQueryError("FileDiff", err, slog.String("hash", hash), slog.String("path", path))
		return FileContentNotLoaded
	}
	return truncateLines(content, MaxFileLines)
}

// AllBranches lists local then remote-tracking branch names.
func (s *Service) AllBranches() []string {
	ctx, cancel := s.queryContext()
	defer cancel()
	branches, err := s.backend.Branches(ctx)
	if err != nil {
		logQueryError("AllBranches", err)
		return []string{}
	}
	if branches == nil {
		return []string{}
	}
	return branches
}
