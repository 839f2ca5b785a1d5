package git

import (
	"context"
	"errors"
)

type fakeBackend struct {
	repoPath string

	currentBranchFunc func(ctx context.Context) (string, error)
	logFunc           func(ctx context.Context, q LogQuery) ([]Commit, error)
	branchesFunc      func(ctx context.Context) ([]string, error)
	commitStatsFunc   func(ctx context.Context, hash string) (string, error)
	changedFilesFunc  func(ctx context.Context, hash string) ([]string, error)
	fileContentFunc   func(ctx context.Context, hash, path string) (string, error)

	logCalls  int
	lastQuery LogQuery
}

func (f *fakeBackend) RepoPath() string { return f.repoPath }

func (f *fakeBackend) CurrentBranch(ctx context.Context) (string, error) {
	if f.currentBranchFunc != nil {
		return f.currentBranchFunc(ctx)
	}
	return "", errors.New("unexpected CurrentBranch call")
}

func (f *fakeBackend) Log(ctx context.Context, q LogQuery) ([]Commit, error) {
	f.logCalls++
	f.lastQuery = q
	if f.logFunc != nil {
		return f.logFunc(ctx, q)
	}
	return nil, errors.New("unexpected Log call")
}

func (f *fakeBackend) Branches(ctx context.Context) ([]string, error) {
	if f.branchesFunc != nil {
		return f.branchesFunc(ctx)
	}
	return nil, errors.New("unexpected Branches call")
}

func (f *fakeBackend) CommitStats(ctx context.Context, hash string) (string, error) {
	if f.commitStatsFunc != nil {
		return f.commitStatsFunc(ctx, hash)
	}
	return "", errors.New("unexpected CommitStats call")
}

func (f *fakeBackend) ChangedFiles(ctx context.Context, hash string) ([]string, error) {
	if f.changedFilesFunc != nil {
		return f.changedFilesFunc(ctx, hash)
	}
	return nil, errors.New("unexpected ChangedFiles call")
}

func (f *fakeBackend) FileContent(ctx context.Context, hash, path string) (string, error) {
	if f.fileContentFunc != nil {
		return f.fileContentFunc(ctx, hash, path)
	}
	return "", errors.New("unexpected FileContent call")
}
