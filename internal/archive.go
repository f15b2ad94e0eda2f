package internal

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	DefaultBranch = "main"
	DefaultAuthor = "halo"
	DefaultEmail  = "halo@local"

	// SnapshotFilename is the single tracked file: the latest export document.
	SnapshotFilename = "export.json"
)

// Commit is one archived snapshot.
type Commit struct {
	Hash      string
	Message   string
	Timestamp time.Time
}

// SnapshotArchive keeps a git history of export documents under the scope
// directory, so past session states stay reviewable after retention has
// pruned the live collections.
type SnapshotArchive struct {
	repo     *git.Repository
	worktree *git.Worktree
	rootPath string
}

func NewSnapshotArchive(scope Scope) (*SnapshotArchive, error) {
	rootPath := scope.ArchivePath()
	gitPath := filepath.Join(rootPath, ".git")

	if _, err := os.Stat(gitPath); os.IsNotExist(err) {
		return nil, ErrNotInitialized
	}

	fs := osfs.New(gitPath)
	storage := filesystem.NewStorage(fs, cache.NewObjectLRUDefault())
	wt := osfs.New(rootPath)

	repo, err := git.Open(storage, wt)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}

	return &SnapshotArchive{
		repo:     repo,
		worktree: worktree,
		rootPath: rootPath,
	}, nil
}

func InitArchive(scope Scope) error {
	rootPath := scope.ArchivePath()
	gitPath := filepath.Join(rootPath, ".git")

	if err := os.MkdirAll(gitPath, 0755); err != nil {
		return fmt.Errorf("create archive directory: %w", err)
	}

	fs := osfs.New(gitPath)
	storage := filesystem.NewStorage(fs, cache.NewObjectLRUDefault())
	wt := osfs.New(rootPath)

	repo, err := git.Init(storage, wt)
	if err != nil {
		return fmt.Errorf("init archive: %w", err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return fmt.Errorf("get config: %w", err)
	}
	cfg.Init.DefaultBranch = DefaultBranch
	if err := repo.SetConfig(cfg); err != nil {
		return fmt.Errorf("set config: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("get worktree: %w", err)
	}

	markerPath := filepath.Join(rootPath, ".halo-archive")
	if err := os.WriteFile(markerPath, []byte("halo snapshot archive\n"), 0644); err != nil {
		return fmt.Errorf("write marker file: %w", err)
	}

	if _, err := worktree.Add(".halo-archive"); err != nil {
		return fmt.Errorf("stage marker file: %w", err)
	}

	_, err = worktree.Commit("init: initialize snapshot archive", &git.CommitOptions{
		Author: &object.Signature{
			Name:  DefaultAuthor,
			Email: DefaultEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	return nil
}

// CommitSnapshot writes the serialized export document and commits it.
func (a *SnapshotArchive) CommitSnapshot(ctx context.Context, doc []byte, ts string) (*Commit, error) {
	path := filepath.Join(a.rootPath, SnapshotFilename)
	if err := os.WriteFile(path, doc, 0644); err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}

	if _, err := a.worktree.Add(SnapshotFilename); err != nil {
		return nil, fmt.Errorf("stage snapshot: %w", err)
	}

	hash, err := a.worktree.Commit(fmt.Sprintf("snapshot: %s", ts), &git.CommitOptions{
		Author: &object.Signature{
			Name:  DefaultAuthor,
			Email: DefaultEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}

	commit, err := a.repo.CommitObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get commit: %w", err)
	}

	return toCommit(commit), nil
}

// Log lists archived snapshots, newest first.
func (a *SnapshotArchive) Log(ctx context.Context, limit int) ([]*Commit, error) {
	iter, err := a.repo.Log(&git.LogOptions{})
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}
	defer iter.Close()

	var commits []*Commit
	count := 0

	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && count >= limit {
			return io.EOF
		}
		commits = append(commits, toCommit(c))
		count++
		return nil
	})
	if err != nil && err != io.EOF {
		return nil, err
	}

	return commits, nil
}

// LastSnapshot returns the export document at HEAD, or "" when no snapshot
// has been committed yet.
func (a *SnapshotArchive) LastSnapshot(ctx context.Context) (string, error) {
	head, err := a.repo.Head()
	if err != nil {
		return "", fmt.Errorf("get HEAD: %w", err)
	}

	commit, err := a.repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("get HEAD commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return "", fmt.Errorf("get HEAD tree: %w", err)
	}

	f, err := tree.File(SnapshotFilename)
	if err != nil {
		return "", nil
	}
	return f.Contents()
}

// DiffSnapshot diffs the last committed snapshot against the given current
// export document and returns a unified-style text diff.
func (a *SnapshotArchive) DiffSnapshot(ctx context.Context, current string) (string, error) {
	last, err := a.LastSnapshot(ctx)
	if err != nil {
		return "", err
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(last, current, false)
	dmp.DiffCleanupSemantic(diffs)

	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		return "", nil
	}
	return dmp.DiffPrettyText(diffs), nil
}

func toCommit(c *object.Commit) *Commit {
	return &Commit{
		Hash:      c.Hash.String(),
		Message:   c.Message,
		Timestamp: c.Author.When,
	}
}
