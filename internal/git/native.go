package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

const shortDateLayout = "2006-01-02"

// nativeBackend reads the repository in-process with go-git. It answers the
// same queries as the git CLI backend and needs no git executable.
type nativeBackend struct {
	path string
	repo *gitlib.Repository
}

// OpenNative opens repoPath (or its closest parent repository) with go-git.
// Like OpenCLI it does not fail for a directory outside a repository; every
// query then reports ErrNotRepository.
func OpenNative(repoPath string) (Backend, error) {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	repo, err := gitlib.PlainOpenWithOptions(abs, &gitlib.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		slog.Debug("open repository", slog.String("path", abs), slog.Any("error", err))
		return &nativeBackend{path: abs}, nil
	}
	root := abs
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}
	return newNativeBackend(repo, root), nil
}

func newNativeBackend(repo *gitlib.Repository, path string) *nativeBackend {
	return &nativeBackend{path: path, repo: repo}
}

func (n *nativeBackend) RepoPath() string {
	if n == nil {
		return ""
	}
	return n.path
}

func (n *nativeBackend) ensureRepo(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n == nil || n.repo == nil {
		return ErrNotRepository
	}
	return nil
}

func (n *nativeBackend) CurrentBranch(ctx context.Context) (string, error) {
	if err := n.ensureRepo(ctx); err != nil {
		return "", err
	}
	head, err := n.repo.Head()
	if err == nil {
		if head.Name().IsBranch() {
			return head.Name().Short(), nil
		}
		return "HEAD", nil
	}
	if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	// Unborn branch: HEAD points at a branch with no commits yet.
	sym, err := n.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("read HEAD: %w", err)
	}
	if sym.Type() == plumbing.SymbolicReference && sym.Target().IsBranch() {
		return sym.Target().Short(), nil
	}
	return "HEAD", nil
}

func (n *nativeBackend) Log(ctx context.Context, q LogQuery) ([]Commit, error) {
	if err := n.ensureRepo(ctx); err != nil {
		return nil, err
	}
	from, err := n.resolveStart(q.Ref)
	if err != nil {
		return nil, err
	}
	if from == plumbing.ZeroHash {
		return nil, nil
	}
	opts := &gitlib.LogOptions{From: from, Order: gitlib.LogOrderCommitterTime}
	if q.Path != "" {
		if err := validatePath(q.Path); err != nil {
			return nil, err
		}
		path := q.Path
		opts.FileName = &path
	}
	iter, err := n.repo.Log(opts)
	if err != nil {
		return nil, fmt.Errorf("read commits: %w", err)
	}
	defer iter.Close()

	grep := strings.ToLower(q.Grep)
	author := strings.ToLower(q.Author)
	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if grep != "" && !strings.Contains(strings.ToLower(c.Message), grep) {
			return nil
		}
		if author != "" && !strings.Contains(strings.ToLower(signatureIdent(c.Author)), author) {
			return nil
		}
		commits = append(commits, commitRecord(c))
		if q.Max > 0 && len(commits) >= q.Max {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate commits: %w", err)
	}
	return commits, nil
}

// resolveStart returns the commit a log walk starts from. An unborn HEAD
// yields the zero hash and no error.
func (n *nativeBackend) resolveStart(ref string) (plumbing.Hash, error) {
	if ref == "" {
		head, err := n.repo.Head()
		if err != nil {
			if errors.Is(err, plumbing.ErrReferenceNotFound) {
				return plumbing.ZeroHash, nil
			}
			return plumbing.ZeroHash, fmt.Errorf("resolve HEAD: %w", err)
		}
		return head.Hash(), nil
	}
	if err := validateRevision(ref); err != nil {
		return plumbing.ZeroHash, err
	}
	hash, err := n.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolve %s: %w", ref, err)
	}
	return *hash, nil
}

func signatureIdent(sig object.Signature) string {
	return fmt.Sprintf("%s <%s>", sig.Name, sig.Email)
}

func commitRecord(c *object.Commit) Commit {
	return Commit{
		Hash:    c.Hash.String(),
		Author:  c.Author.Name,
		Date:    c.Author.When.Format(shortDateLayout),
		Message: commitSubject(c.Message),
	}
}

// commitSubject mirrors git's %s: the first paragraph of the message with its
// lines joined by spaces.
func commitSubject(message string) string {
	var parts []string
	for line := range strings.SplitSeq(strings.TrimLeft(message, "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

func (n *nativeBackend) Branches(ctx context.Context) ([]string, error) {
	if err := n.ensureRepo(ctx); err != nil {
		return nil, err
	}
	refs, err := n.repo.References()
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	defer refs.Close()
	var local, remote []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name()
		switch {
		case name.IsBranch():
			local = append(local, name.Short())
		case name.IsRemote():
			short := name.Short()
			if strings.HasSuffix(short, "/HEAD") {
				return nil
			}
			remote = append(remote, short)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate references: %w", err)
	}
	slices.Sort(local)
	slices.Sort(remote)
	return slices.Compact(append(local, remote...)), nil
}

func (n *nativeBackend) commitChanges(ctx context.Context, hash string) (object.Changes, error) {
	if err := n.ensureRepo(ctx); err != nil {
		return nil, err
	}
	if err := validateRevision(hash); err != nil {
		return nil, err
	}
	resolved, err := n.repo.ResolveRevision(plumbing.Revision(hash))
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", hash, err)
	}
	commit, err := n.repo.CommitObject(*resolved)
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", hash, err)
	}
	currentTree, err := commit.Tree()
	if err != nil {
		return nil, err
	}
	var parentTree *object.Tree
	if commit.NumParents() > 0 {
		parent, err := commit.Parent(0)
		if err != nil {
			return nil, err
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, err
		}
	}
	changes, err := object.DiffTreeWithOptions(ctx, parentTree, currentTree, &object.DiffTreeOptions{})
	if err != nil {
		return nil, fmt.Errorf("diff %s: %w", hash, err)
	}
	return changes, nil
}

func (n *nativeBackend) CommitStats(ctx context.Context, hash string) (string, error) {
	changes, err := n.commitChanges(ctx, hash)
	if err != nil {
		return "", err
	}
	if len(changes) == 0 {
		return "", nil
	}
	patch, err := changes.PatchContext(ctx)
	if err != nil {
		return "", fmt.Errorf("patch %s: %w", hash, err)
	}
	return formatFileStats(patch.Stats()), nil
}

// formatFileStats renders per-file stats followed by git's summary line.
func formatFileStats(stats object.FileStats) string {
	var additions, deletions int
	for _, st := range stats {
		additions += st.Addition
		deletions += st.Deletion
	}
	var b strings.Builder
	b.WriteString(strings.TrimRight(stats.String(), "\n"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, " %d %s changed", len(stats), plural(len(stats), "file", "files"))
	if additions > 0 {
		fmt.Fprintf(&b, ", %d %s(+)", additions, plural(additions, "insertion", "insertions"))
	}
	if deletions > 0 {
		fmt.Fprintf(&b, ", %d %s(-)", deletions, plural(deletions, "deletion", "deletions"))
	}
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func (n *nativeBackend) ChangedFiles(ctx context.Context, hash string) ([]string, error) {
	changes, err := n.commitChanges(ctx, hash)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(changes))
	for _, change := range changes {
		name := change.To.Name
		if name == "" {
			name = change.From.Name
		}
		files = append(files, name)
	}
	return files, nil
}

func (n *nativeBackend) FileContent(ctx context.Context, hash, path string) (string, error) {
	if err := n.ensureRepo(ctx); err != nil {
		return "", err
	}
	if err := validateRevision(hash); err != nil {
		return "", err
	}
	if err := validatePath(path); err != nil {
		return "", err
	}
	resolved, err := n.repo.ResolveRevision(plumbing.Revision(hash))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", hash, err)
	}
	commit, err := n.repo.CommitObject(*resolved)
	if err != nil {
		return "", fmt.Errorf("read commit %s: %w", hash, err)
	}
	file, err := commit.File(path)
	if err != nil {
		return "", fmt.Errorf("read %s:%s: %w", hash, path, err)
	}
	content, err := file.Contents()
	if err != nil {
		return "", fmt.Errorf("read %s:%s: %w", hash, path, err)
	}
	return strings.ToValidUTF8(content, "\uFFFD"), nil
}
