package usecase

import (
	"context"
	"fmt"

	"github.com/graphframes/releasekit/internal/repository"
)

// PushReleaseUseCase publishes the finished branch and the release tag to a
// remote.

type PushReleaseUseCase struct {
	GitRepo repository.GitRepository
}

// Execute runs the use case.
func (uc *PushReleaseUseCase) Execute(ctx context.Context, remote, branch, tag string) error {
	if err := uc.GitRepo.PushBranch(ctx, remote, branch); err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branch, err)
	}
	if err := uc.GitRepo.PushTag(ctx, remote, tag); err != nil {
		return fmt.Errorf("failed to push tag %s: %w", tag, err)
	}
	return nil
}
