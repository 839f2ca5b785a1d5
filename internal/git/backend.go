package git

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGitNotFound reports that the git executable could not be spawned.
	ErrGitNotFound = errors.New("git executable not found")
	// ErrNotRepository reports that the directory is not inside a repository.
	ErrNotRepository = errors.New("not a git repository")
	// ErrInvalidArgument reports a revision or path rejected before querying.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Backend abstracts access to repository data.
//
// The default implementation shells out to the git executable, but the interface
// allows alternative implementations (e.g. pure-Go) without changing Service.
// Backends return errors; Service turns them into placeholders.
type Backend interface {
	RepoPath() string

	CurrentBranch(ctx context.Context) (string, error)
	Log(ctx context.Context, q LogQuery) ([]Commit, error)
	Branches(ctx context.Context) ([]string, error)

	CommitStats(ctx context.Context, hash string) (string, error)
	ChangedFiles(ctx context.Context, hash string) ([]string, error)
	FileContent(ctx context.Context, hash, path string) (string, error)
}

// BackendKind names a Backend implementation.
type BackendKind string

const (
	BackendCLI    BackendKind = "cli"
	BackendNative BackendKind = "native"
)

func BackendKindFromString(raw string) (BackendKind, error) {
	switch BackendKind(raw) {
	case BackendCLI, "":
		return BackendCLI, nil
	case BackendNative:
		return BackendNative, nil
	default:
		return "", fmt.Errorf("%w: unknown backend %q (want cli or native)", ErrInvalidArgument, raw)
	}
}
