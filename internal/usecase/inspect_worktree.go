package usecase

import (
	"context"
	"fmt"

	"github.com/graphframes/releasekit/internal/repository"
)

// InspectWorktreeUseCase reports the state of the checkout a release would
// start from.

type InspectWorktreeUseCase struct {
	GitRepo repository.GitRepository
}

// Execute returns the checked-out branch and a summary of uncommitted
// changes to tracked files. An empty summary means the tree is clean. The
// returned error preserves repository.ErrDetachedHead for callers that need
// to distinguish it.
func (uc *InspectWorktreeUseCase) Execute(ctx context.Context) (string, string, error) {
	branch, err := uc.GitRepo.CurrentBranch(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve current branch: %w", err)
	}
	changes, err := uc.GitRepo.WorktreeStatus(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to inspect working tree: %w", err)
	}
	return branch, changes, nil
}
