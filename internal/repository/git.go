package repository

import (
	"context"
	"errors"
)

// ErrDetachedHead is returned when HEAD does not point at a named branch.
var ErrDetachedHead = errors.New("repository is in detached HEAD state")

// ErrNotFastForward is returned when a merge cannot be completed by moving
// the current branch forward.
var ErrNotFastForward = errors.New("merge would not be a fast-forward")

// GitRepository defines the interface for Git operations.
type GitRepository interface {
	// CurrentBranch returns the short name of the checked-out branch, or
	// ErrDetachedHead when HEAD is unnamed.
	CurrentBranch(ctx context.Context) (string, error)
	// WorktreeStatus summarizes uncommitted changes to tracked files. An
	// empty string means the tree is clean. Untracked files are not
	// reported.
	WorktreeStatus(ctx context.Context) (string, error)
	TagExists(ctx context.Context, tag string) (bool, error)
	// CreateBranch creates a branch at HEAD and switches to it.
	CreateBranch(ctx context.Context, name string) error
	// CreateBranchAt creates a branch at the commit the tag points to and
	// switches to it.
	CreateBranchAt(ctx context.Context, name, tag string) error
	CheckoutBranch(ctx context.Context, name string) error
	// CheckoutTag detaches HEAD at the commit the tag points to.
	CheckoutTag(ctx context.Context, tag string) error
	// FastForwardMerge moves the current branch (and worktree) forward to
	// the named branch. Returns ErrNotFastForward when histories diverged.
	FastForwardMerge(ctx context.Context, branch string) error
	DeleteBranch(ctx context.Context, name string) error
	// ForceAddDir stages every file under dir, bypassing ignore rules.
	ForceAddDir(ctx context.Context, dir string) error
	Commit(ctx context.Context, message string) error
	PushBranch(ctx context.Context, remote, branch string) error
	PushTag(ctx context.Context, remote, tag string) error
	// ForcePushBranch force-updates the remote dst branch to the local src
	// branch.
	ForcePushBranch(ctx context.Context, remote, src, dst string) error
}
