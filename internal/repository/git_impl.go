package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/spf13/afero"
)

// gitRepository is the implementation of the GitRepository interface.

type gitRepository struct {
	repo *git.Repository
	fs   FileSystemRepository
	// token authenticates pushes to http(s) remotes; empty for ssh remotes
	token string
}

// NewGitRepository opens the repository in the current working directory.
func NewGitRepository(fs FileSystemRepository, token string) (GitRepository, error) {
	repo, err := git.PlainOpen(".")
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return &gitRepository{repo: repo, fs: fs, token: token}, nil
}

// CurrentBranch returns the short name of the checked-out branch.
func (r *gitRepository) CurrentBranch(_ context.Context) (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", ErrDetachedHead
	}
	return head.Name().Short(), nil
}

// WorktreeStatus summarizes uncommitted changes to tracked files.
func (r *gitRepository) WorktreeStatus(_ context.Context) (string, error) {
	w, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	status, err := w.Status()
	if err != nil {
		return "", fmt.Errorf("failed to get status: %w", err)
	}
	paths := make([]string, 0, len(status))
	for path, fileStatus := range status {
		// Untracked files do not block a release.
		if fileStatus.Staging == git.Untracked && fileStatus.Worktree == git.Untracked {
			continue
		}
		if fileStatus.Staging == git.Unmodified && fileStatus.Worktree == git.Unmodified {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	var b strings.Builder
	for _, path := range paths {
		fileStatus := status.File(path)
		fmt.Fprintf(&b, "%c%c %s\n", statusByte(fileStatus.Staging), statusByte(fileStatus.Worktree), path)
	}
	return b.String(), nil
}

func statusByte(code git.StatusCode) byte {
	if code == git.Unmodified {
		return ' '
	}
	return byte(code)
}

// TagExists checks if a tag exists.
func (r *gitRepository) TagExists(_ context.Context, tag string) (bool, error) {
	_, err := r.repo.Tag(tag)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, git.ErrTagNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("failed to check tag %s: %w", tag, err)
	}
}

// CreateBranch creates a branch at HEAD and switches to it.
func (r *gitRepository) CreateBranch(_ context.Context, name string) error {
	branchRef := plumbing.NewBranchReferenceName(name)
	if _, err := r.repo.Reference(branchRef, false); err == nil {
		return fmt.Errorf("branch %s already exists", name)
	}
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := w.Checkout(&git.CheckoutOptions{Branch: branchRef, Create: true}); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// CreateBranchAt creates a branch at the tag's commit and switches to it.
func (r *gitRepository) CreateBranchAt(_ context.Context, name, tag string) error {
	branchRef := plumbing.NewBranchReferenceName(name)
	if _, err := r.repo.Reference(branchRef, false); err == nil {
		return fmt.Errorf("branch %s already exists", name)
	}
	hash, err := r.tagCommit(tag)
	if err != nil {
		return err
	}
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := w.Checkout(&git.CheckoutOptions{Branch: branchRef, Create: true, Hash: hash}); err != nil {
		return fmt.Errorf("failed to create branch %s at %s: %w", name, tag, err)
	}
	return nil
}

// CheckoutBranch switches to the specified branch.
func (r *gitRepository) CheckoutBranch(_ context.Context, name string) error {
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := w.Checkout(&git.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(name)}); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", name, err)
	}
	return nil
}

// CheckoutTag detaches HEAD at the commit the tag points to.
func (r *gitRepository) CheckoutTag(_ context.Context, tag string) error {
	hash, err := r.tagCommit(tag)
	if err != nil {
		return err
	}
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := w.Checkout(&git.CheckoutOptions{Hash: hash}); err != nil {
		return fmt.Errorf("failed to checkout tag %s: %w", tag, err)
	}
	return nil
}

// tagCommit resolves a tag name to its commit hash, handling both
// lightweight and annotated tags.
func (r *gitRepository) tagCommit(tag string) (plumbing.Hash, error) {
	tagRef, err := r.repo.Tag(tag)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to get tag %s: %w", tag, err)
	}
	// Try as lightweight tag first
	if commit, err := r.repo.CommitObject(tagRef.Hash()); err == nil {
		return commit.Hash, nil
	}
	// Try as annotated tag
	if tagObj, err := r.repo.TagObject(tagRef.Hash()); err == nil {
		if commit, err := r.repo.CommitObject(tagObj.Target); err == nil {
			return commit.Hash, nil
		}
	}
	return plumbing.ZeroHash, fmt.Errorf("failed to resolve commit for tag %s", tag)
}

// FastForwardMerge moves the current branch forward to the named branch.
func (r *gitRepository) FastForwardMerge(_ context.Context, branch string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return ErrDetachedHead
	}
	branchRef, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return fmt.Errorf("failed to resolve branch %s: %w", branch, err)
	}
	if head.Hash() == branchRef.Hash() {
		return nil
	}
	headCommit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		return fmt.Errorf("failed to get HEAD commit: %w", err)
	}
	targetCommit, err := r.repo.CommitObject(branchRef.Hash())
	if err != nil {
		return fmt.Errorf("failed to get commit for branch %s: %w", branch, err)
	}
	// Nothing to do when the branch is already contained in HEAD.
	if contained, err := targetCommit.IsAncestor(headCommit); err != nil {
		return fmt.Errorf("failed to compare histories: %w", err)
	} else if contained {
		return nil
	}
	ahead, err := headCommit.IsAncestor(targetCommit)
	if err != nil {
		return fmt.Errorf("failed to compare histories: %w", err)
	}
	if !ahead {
		return fmt.Errorf("cannot merge %s into %s: %w", branch, head.Name().Short(), ErrNotFastForward)
	}
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	// A hard reset to the target commit moves the branch ref and brings the
	// worktree along, which is exactly a fast-forward on a clean tree.
	if err := w.Reset(&git.ResetOptions{Commit: branchRef.Hash(), Mode: git.HardReset}); err != nil {
		return fmt.Errorf("failed to fast-forward to %s: %w", branch, err)
	}
	return nil
}

// DeleteBranch deletes a local branch.
func (r *gitRepository) DeleteBranch(_ context.Context, name string) error {
	err := r.repo.Storer.RemoveReference(plumbing.NewBranchReferenceName(name))
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}

// ForceAddDir stages every file under dir, bypassing ignore rules the same
// way `git add -f` does.
func (r *gitRepository) ForceAddDir(_ context.Context, dir string) error {
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	root := w.Filesystem.Root()
	walkErr := afero.Walk(r.fs, filepath.Join(root, dir), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if err := w.AddWithOptions(&git.AddOptions{Path: rel, SkipStatus: true}); err != nil {
			return fmt.Errorf("failed to stage %s: %w", rel, err)
		}
		return nil
	})
	if walkErr != nil {
		return fmt.Errorf("failed to stage directory %s: %w", dir, walkErr)
	}
	return nil
}

// Commit creates a commit from the index with the given message. Author and
// committer come from the repository's git configuration.
func (r *gitRepository) Commit(_ context.Context, message string) error {
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if _, err := w.Commit(message, &git.CommitOptions{}); err != nil {
		return fmt.Errorf("failed to create commit: %w", err)
	}
	return nil
}

// PushBranch pushes a branch to the remote.
func (r *gitRepository) PushBranch(ctx context.Context, remote, branch string) error {
	spec := config.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
	if err := r.push(ctx, remote, spec); err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branch, err)
	}
	return nil
}

// PushTag pushes a tag to the remote.
func (r *gitRepository) PushTag(ctx context.Context, remote, tag string) error {
	spec := config.RefSpec(fmt.Sprintf("refs/tags/%s:refs/tags/%s", tag, tag))
	if err := r.push(ctx, remote, spec); err != nil {
		return fmt.Errorf("failed to push tag %s: %w", tag, err)
	}
	return nil
}

// ForcePushBranch force-updates the remote dst branch to the local src
// branch.
func (r *gitRepository) ForcePushBranch(ctx context.Context, remote, src, dst string) error {
	spec := config.RefSpec(fmt.Sprintf("+refs/heads/%s:refs/heads/%s", src, dst))
	if err := r.push(ctx, remote, spec); err != nil {
		return fmt.Errorf("failed to force-push %s to %s: %w", src, dst, err)
	}
	return nil
}

// push sends refspecs to a remote addressed by URL rather than by name, the
// equivalent of `git push <url> <refspec>`.
func (r *gitRepository) push(ctx context.Context, remoteURL string, specs ...config.RefSpec) error {
	remote := git.NewRemote(r.repo.Storer, &config.RemoteConfig{
		Name: "anonymous",
		URLs: []string{remoteURL},
	})
	err := remote.PushContext(ctx, &git.PushOptions{
		RemoteName: "anonymous",
		RefSpecs:   specs,
		Auth:       r.getAuth(remoteURL),
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return err
	}
	return nil
}

// getAuth returns token authentication for https remotes. For ssh remotes
// go-git falls back to the ssh agent when no auth is set.
func (r *gitRepository) getAuth(remote string) transport.AuthMethod {
	if !strings.HasPrefix(remote, "http://") && !strings.HasPrefix(remote, "https://") {
		return nil
	}
	if r.token == "" {
		return nil
	}
	// Use x-access-token as username for GitHub token authentication
	return &http.BasicAuth{
		Username: "x-access-token",
		Password: r.token,
	}
}
