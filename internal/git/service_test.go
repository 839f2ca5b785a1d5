package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCurrentBranch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		out  string
		err  error
		want string
	}{
		{name: "branch", out: "main", want: "main"},
		{name: "detached", out: "HEAD", want: "HEAD"},
		{name: "git_missing", err: fmt.Errorf("git branch: %w", ErrGitNotFound), want: GitNotFound},
		{name: "not_repository", err: fmt.Errorf("git branch: %w", ErrNotRepository), want: NotARepository},
		{name: "other_failure", err: errors.New("boom"), want: NotARepository},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := NewWithBackend(&fakeBackend{
				currentBranchFunc: func(context.Context) (string, error) { return tt.out, tt.err },
			})
			assert.Equal(t, tt.want, svc.CurrentBranch())
		})
	}
}

func TestServiceCurrentDirectory(t *testing.T) {
	t.Parallel()

	svc := NewWithBackend(&fakeBackend{repoPath: "/repo"})
	assert.Equal(t, "/repo", svc.CurrentDirectory())

	svc = NewWithBackend(&fakeBackend{})
	svc.getwd = func() (string, error) { return "/work", nil }
	assert.Equal(t, "/work", svc.CurrentDirectory())

	svc.getwd = func() (string, error) { return "", errors.New("removed") }
	assert.Equal(t, UnknownDirectory, svc.CurrentDirectory())
}

func TestServiceCommits(t *testing.T) {
	t.Parallel()

	fb := &fakeBackend{
		logFunc: func(_ context.Context, q LogQuery) ([]Commit, error) {
			return []Commit{{Hash: "abc", Author: "A", Date: "2024-01-01", Message: "m"}}, nil
		},
	}
	svc := NewWithBackend(fb)

	got := svc.Commits(0)
	require.Len(t, got, 1)
	assert.Equal(t, DefaultCommitCount, fb.lastQuery.Max)
	assert.Empty(t, fb.lastQuery.Ref)

	svc.BranchCommits("dev", 7)
	assert.Equal(t, LogQuery{Ref: "dev", Max: 7}, fb.lastQuery)
}

func TestServiceLogFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	svc := NewWithBackend(&fakeBackend{
		logFunc: func(context.Context, LogQuery) ([]Commit, error) { return nil, ErrNotRepository },
	})
	for _, got := range [][]Commit{
		svc.Commits(20),
		svc.BranchCommits("main", 20),
		svc.SearchCommits("fix", 50),
		svc.SearchCommitsByAuthor("alice", 50),
		svc.SearchCommitsByFile("main.go", 50),
	} {
		require.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestServiceSearchBlankTermRunsNoQuery(t *testing.T) {
	t.Parallel()

	fb := &fakeBackend{}
	svc := NewWithBackend(fb)
	assert.Empty(t, svc.SearchCommits("   ", 50))
	assert.Empty(t, svc.SearchCommitsByAuthor("\t", 50))
	assert.Empty(t, svc.SearchCommitsByFile("", 50))
	assert.Zero(t, fb.logCalls)
}

func TestServiceSearchQueries(t *testing.T) {
	t.Parallel()

	fb := &fakeBackend{
		logFunc: func(context.Context, LogQuery) ([]Commit, error) { return nil, nil },
	}
	svc := NewWithBackend(fb)

	svc.SearchCommits(" fix\x00 bug ", 0)
	assert.Equal(t, LogQuery{Grep: "fix bug", Max: DefaultSearchLimit}, fb.lastQuery)

	svc.SearchCommitsByAuthor("Alice", 10)
	assert.Equal(t, LogQuery{Author: "Alice", Max: 10}, fb.lastQuery)

	svc.SearchCommitsByFile("src/main.rs", 50)
	assert.Equal(t, LogQuery{Path: "src/main.rs", Max: 50}, fb.lastQuery)
}

func TestServiceCommitStats(t *testing.T) {
	t.Parallel()

	stats := " a.go | 2 +-\n 1 file changed, 1 insertion(+), 1 deletion(-)"
	svc := NewWithBackend(&fakeBackend{
		commitStatsFunc: func(_ context.Context, hash string) (string, error) {
			switch hash {
			case "good":
				return stats, nil
			case "empty":
				return "", nil
			default:
				return "", errors.New("bad object")
			}
		},
	})
	assert.Equal(t, stats, svc.CommitStats("good"))
	assert.Equal(t, NoStatsAvailable, svc.CommitStats("empty"))
	assert.Equal(t, NoStatsAvailable, svc.CommitStats("missing"))
}

func TestServiceChangedFilesFiltersNoise(t *testing.T) {
	t.Parallel()

	svc := NewWithBackend(&fakeBackend{
		changedFilesFunc: func(context.Context, string) ([]string, error) {
			return []string{"src/lib.rs", "target/release/app", "obj/x.o"}, nil
		},
	})
	assert.Equal(t, []string{"src/lib.rs"}, svc.ChangedFiles("abc"))

	failing := NewWithBackend(&fakeBackend{})
	got := failing.ChangedFiles("abc")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestServiceFileDiff(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x\n", 1500)
	svc := NewWithBackend(&fakeBackend{
		fileContentFunc: func(_ context.Context, hash, path string) (string, error) {
			if path == "big.txt" {
				return long, nil
			}
			return "", fmt.Errorf("git show: exit status 128: fatal: path '%s' does not exist in '%s'", path, hash)
		},
	})
	got := svc.FileDiff("abc", "big.txt")
	assert.Len(t, strings.Split(got, "\n"), MaxFileLines)
	assert.Equal(t, FileContentNotLoaded, svc.FileDiff("abc", "gone.txt"))
}

func TestServiceAllBranches(t *testing.T) {
	t.Parallel()

	svc := NewWithBackend(&fakeBackend{
		branchesFunc: func(context.Context) ([]string, error) { return []string{"main", "origin/main"}, nil },
	})
	assert.Equal(t, []string{"main", "origin/main"}, svc.AllBranches())

	failing := NewWithBackend(&fakeBackend{})
	got := failing.AllBranches()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestServiceTimeoutDegrades(t *testing.T) {
	t.Parallel()

	svc := NewWithBackend(&fakeBackend{
		logFunc: func(ctx context.Context, _ LogQuery) ([]Commit, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	})
	svc.SetTimeout(10 * time.Millisecond)
	assert.Empty(t, svc.Commits(20))

	svc.SetTimeout(0)
	assert.Equal(t, DefaultTimeout, svc.timeout)
}
