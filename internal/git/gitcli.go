package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
)

const defaultGitExecutable = "git"

type gitCLI struct {
	path string
	// exe is the git executable; tests point it at a missing binary.
	exe string
}

// OpenCLI returns a Backend that shells out to git. It never fails because
// the directory is not a repository: the queries themselves report that, so
// the interface can still come up and show placeholders.
func OpenCLI(repoPath string) (Backend, error) {
	if err := ensureMinGitVersion(); err != nil {
		slog.Warn("git version check", slog.Any("error", err))
	}
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	tmp := &gitCLI{path: abs, exe: defaultGitExecutable}
	root, err := tmp.runGitCommand(context.Background(), []string{"rev-parse", "--show-toplevel"}, "git rev-parse")
	if err != nil {
		slog.Debug("resolve repository root", slog.String("path", abs), slog.Any("error", err))
		return tmp, nil
	}
	root = strings.TrimSpace(root)
	if root == "" {
		return tmp, nil
	}
	return &gitCLI{path: root, exe: defaultGitExecutable}, nil
}

func (g *gitCLI) RepoPath() string {
	if g == nil {
		return ""
	}
	return g.path
}

func (g *gitCLI) runGitCommand(ctx context.Context, args []string, op string) (string, error) {
	if g == nil || g.path == "" {
		return "", fmt.Errorf("%s: repository root not set", op)
	}
	exe := g.exe
	if exe == "" {
		exe = defaultGitExecutable
	}
	cmdArgs := append([]string{"--no-pager", "-C", g.path}, args...)
	cmd := exec.CommandContext(ctx, exe, cmdArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	slog.Debug("run git", slog.String("op", op), slog.Any("args", args))
	if err := cmd.Run(); err != nil {
		return "", classifyGitError(ctx, op, err, stderr.String())
	}
	return strings.ToValidUTF8(stdout.String(), "\uFFFD"), nil
}

func classifyGitError(ctx context.Context, op string, err error, stderr string) error {
	stderr = strings.TrimSpace(stderr)
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%s: %w: %v", op, ErrGitNotFound, err)
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return fmt.Errorf("%s: %w: %v", op, ErrGitNotFound, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", op, ctxErr)
	}
	if strings.Contains(strings.ToLower(stderr), "not a git repository") {
		return fmt.Errorf("%s: %w: %s", op, ErrNotRepository, stderr)
	}
	if stderr != "" {
		return fmt.Errorf("%s: %v: %s", op, err, stderr)
	}
	return fmt.Errorf("%s: %w", op, err)
}
