package usecase

import (
	"context"
	"fmt"

	"github.com/graphframes/releasekit/internal/repository"
)

// FinalizeBranchUseCase folds the working branch back into the branch the
// release started from.

type FinalizeBranchUseCase struct {
	GitRepo repository.GitRepository
}

// Execute checks out the original branch, fast-forwards it to the working
// branch, and deletes the working branch.
func (uc *FinalizeBranchUseCase) Execute(ctx context.Context, originalBranch, workingBranch string) error {
	if err := uc.GitRepo.CheckoutBranch(ctx, originalBranch); err != nil {
		return fmt.Errorf("failed to check out %s: %w", originalBranch, err)
	}
	if err := uc.GitRepo.FastForwardMerge(ctx, workingBranch); err != nil {
		return fmt.Errorf("failed to fast-forward %s to %s: %w", originalBranch, workingBranch, err)
	}
	if err := uc.GitRepo.DeleteBranch(ctx, workingBranch); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", workingBranch, err)
	}
	return nil
}
