package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (g *gitCLI) CurrentBranch(ctx context.Context) (string, error) {
	out, err := g.runGitCommand(ctx, []string{"branch", "--show-current"}, "git branch")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(out)
	if name == "" {
		// detached HEAD
		return "HEAD", nil
	}
	return name, nil
}

func (g *gitCLI) Log(ctx context.Context, q LogQuery) ([]Commit, error) {
	args, err := logArgs(q)
	if err != nil {
		return nil, err
	}
	out, err := g.runGitCommand(ctx, args, "git log")
	if err != nil {
		return nil, err
	}
	return parseCommitRecords(out), nil
}

func logArgs(q LogQuery) ([]string, error) {
	var args []string
	if q.Path != "" {
		if err := validatePath(q.Path); err != nil {
			return nil, err
		}
		args = append(args, "--literal-pathspecs")
	}
	args = append(args,
		"log",
		"--no-color",
		"--no-decorate",
		"--date=short",
		"--pretty=format:"+logFormat,
	)
	if q.Max > 0 {
		args = append(args, "--max-count="+strconv.Itoa(q.Max))
	}
	if q.Grep != "" || q.Author != "" {
		args = append(args, "--fixed-strings", "--regexp-ignore-case")
	}
	if q.Grep != "" {
		args = append(args, "--grep="+q.Grep)
	}
	if q.Author != "" {
		args = append(args, "--author="+q.Author)
	}
	args = append(args, "--end-of-options")
	if q.Ref != "" {
		if err := validateRevision(q.Ref); err != nil {
			return nil, err
		}
		args = append(args, q.Ref)
	}
	if q.Path != "" {
		args = append(args, "--", q.Path)
	}
	return args, nil
}

func (g *gitCLI) Branches(ctx context.Context) ([]string, error) {
	out, err := g.runGitCommand(ctx, []string{"branch", "--all", "--format=%(refname)"}, "git branch")
	if err != nil {
		return nil, err
	}
	return parseBranchRefs(out), nil
}

// parseBranchRefs turns full ref names into short branch names, local
// branches first as git lists them, then remote-tracking ones. Symbolic
// remote HEADs and the detached HEAD line are dropped.
func parseBranchRefs(out string) []string {
	var names []string
	seen := map[string]struct{}{}
	for _, refName := range parseLines(out) {
		var short string
		switch {
		case strings.HasPrefix(refName, "refs/heads/"):
			short = strings.TrimPrefix(refName, "refs/heads/")
		case strings.HasPrefix(refName, "refs/remotes/"):
			short = strings.TrimPrefix(refName, "refs/remotes/")
			if strings.HasSuffix(short, "/HEAD") {
				continue
			}
		default:
			continue
		}
		if short == "" {
			continue
		}
		if _, ok := seen[short]; ok {
			continue
		}
		seen[short] = struct{}{}
		names = append(names, short)
	}
	return names
}

func (g *gitCLI) CommitStats(ctx context.Context, hash string) (string, error) {
	if err := validateRevision(hash); err != nil {
		return "", err
	}
	out, err := g.runGitCommand(ctx,
		[]string{"show", "--no-color", "--stat", "--format=", "--end-of-options", hash},
		"git show",
	)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

func (g *gitCLI) ChangedFiles(ctx context.Context, hash string) ([]string, error) {
	if err := validateRevision(hash); err != nil {
		return nil, err
	}
	out, err := g.runGitCommand(ctx,
		[]string{"diff-tree", "--no-commit-id", "--name-only", "-r", "--root", "--end-of-options", hash},
		"git diff-tree",
	)
	if err != nil {
		return nil, err
	}
	return parseLines(out), nil
}

func (g *gitCLI) FileContent(ctx context.Context, hash, path string) (string, error) {
	if err := validateRevision(hash); err != nil {
		return "", err
	}
	if err := validatePath(path); err != nil {
		return "", err
	}
	return g.runGitCommand(ctx,
		[]string{"show", "--no-color", "--end-of-options", fmt.Sprintf("%s:%s", hash, path)},
		"git show",
	)
}
