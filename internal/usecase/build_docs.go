package usecase

import (
	"context"
	"fmt"

	"github.com/graphframes/releasekit/internal/domain"
	"github.com/graphframes/releasekit/internal/repository"
	"github.com/graphframes/releasekit/internal/service"
)

// BuildDocsUseCase builds the documentation site for a tagged release and
// commits it onto a dedicated branch.

type BuildDocsUseCase struct {
	GitRepo repository.GitRepository
	DocsSvc service.DocsService
}

// Execute creates the docs branch at the release tag, runs the site build,
// and commits the generated files. The site directory is normally ignored,
// so staging bypasses ignore rules.
func (uc *BuildDocsUseCase) Execute(ctx context.Context, plan *domain.Plan, siteDir string) error {
	if err := uc.GitRepo.CreateBranchAt(ctx, plan.DocsBranch, plan.Tag); err != nil {
		return fmt.Errorf("failed to create docs branch %s: %w", plan.DocsBranch, err)
	}
	if err := uc.DocsSvc.Build(ctx); err != nil {
		return fmt.Errorf("failed to build docs: %w", err)
	}
	if err := uc.GitRepo.ForceAddDir(ctx, siteDir); err != nil {
		return fmt.Errorf("failed to stage %s: %w", siteDir, err)
	}
	message := fmt.Sprintf("Build docs for release %s.", plan.Release)
	if err := uc.GitRepo.Commit(ctx, message); err != nil {
		return fmt.Errorf("failed to commit docs: %w", err)
	}
	return nil
}
