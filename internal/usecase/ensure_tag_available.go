package usecase

import (
	"context"
	"fmt"

	"github.com/graphframes/releasekit/internal/repository"
)

// EnsureTagAvailableUseCase guards against re-releasing a version whose tag
// already exists.

type EnsureTagAvailableUseCase struct {
	GitRepo repository.GitRepository
}

// Execute runs the use case.
func (uc *EnsureTagAvailableUseCase) Execute(ctx context.Context, tag string) error {
	exists, err := uc.GitRepo.TagExists(ctx, tag)
	if err != nil {
		return fmt.Errorf("failed to look up tag %s: %w", tag, err)
	}
	if exists {
		return fmt.Errorf("tag %s already exists, delete it or pick another release version", tag)
	}
	return nil
}
