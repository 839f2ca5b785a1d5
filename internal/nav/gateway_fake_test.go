package nav

import (
	"fmt"

	"github.com/thiagokokada/gitnav/internal/git"
)

// fakeGateway serves canned data and records the queries it receives.
type fakeGateway struct {
	branch    string
	directory string
	commits   []git.Commit
	byBranch  map[string][]git.Commit
	branches  []string
	files     map[string][]string
	search    []git.Commit

	calls []string
}

func (f *fakeGateway) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGateway) CurrentBranch() string    { f.record("CurrentBranch"); return f.branch }
func (f *fakeGateway) CurrentDirectory() string { return f.directory }

func (f *fakeGateway) Commits(count int) []git.Commit {
	f.record("Commits(%d)", count)
	return limit(f.commits, count)
}

func (f *fakeGateway) BranchCommits(branch string, count int) []git.Commit {
	f.record("BranchCommits(%s,%d)", branch, count)
	return limit(f.byBranch[branch], count)
}

func (f *fakeGateway) SearchCommits(query string, max int) []git.Commit {
	f.record("SearchCommits(%s,%d)", query, max)
	return limit(f.search, max)
}

func (f *fakeGateway) SearchCommitsByAuthor(author string, max int) []git.Commit {
	f.record("SearchCommitsByAuthor(%s,%d)", author, max)
	return limit(f.search, max)
}

func (f *fakeGateway) SearchCommitsByFile(path string, max int) []git.Commit {
	f.record("SearchCommitsByFile(%s,%d)", path, max)
	return limit(f.search, max)
}

func (f *fakeGateway) CommitStats(hash string) string {
	f.record("CommitStats(%s)", hash)
	return "1 file changed"
}

func (f *fakeGateway) ChangedFiles(hash string) []string {
	f.record("ChangedFiles(%s)", hash)
	return f.files[hash]
}

func (f *fakeGateway) FileDiff(hash, path string) string {
	f.record("FileDiff(%s,%s)", hash, path)
	return "content of " + path
}

func (f *fakeGateway) AllBranches() []string {
	f.record("AllBranches")
	return f.branches
}

func limit(commits []git.Commit, n int) []git.Commit {
	if len(commits) > n {
		return commits[:n]
	}
	return commits
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		branch:    "main",
		directory: "/repo",
		commits: []git.Commit{
			{Hash: "aaaaaaa1111111", Author: "Alice", Date: "2024-01-03", Message: "Third"},
			{Hash: "bbbbbbb2222222", Author: "Bob", Date: "2024-01-02", Message: "Second"},
			{Hash: "ccccccc3333333", Author: "Alice", Date: "2024-01-01", Message: "First"},
		},
		byBranch: map[string][]git.Commit{
			"dev": {{Hash: "ddddddd4444444", Author: "Carol", Date: "2024-02-01", Message: "Dev work"}},
		},
		branches: []string{"dev", "main", "origin/main"},
		files: map[string][]string{
			"aaaaaaa1111111": {"src/main.rs", "README.md"},
		},
		search: []git.Commit{
			{Hash: "bbbbbbb2222222", Author: "Bob", Date: "2024-01-02", Message: "Fix bug"},
		},
	}
}
