package usecase

import (
	"context"
	"fmt"

	"github.com/graphframes/releasekit/internal/domain"
	"github.com/graphframes/releasekit/internal/service"
)

// PublishArtifactsUseCase publishes the release artifacts once per Spark
// version.

type PublishArtifactsUseCase struct {
	SbtSvc service.SbtService
}

// Execute runs the publish task against every Spark version in the plan,
// stopping at the first failure.
func (uc *PublishArtifactsUseCase) Execute(ctx context.Context, plan *domain.Plan) error {
	task := plan.Target.SbtTask()
	for _, sparkVersion := range plan.SparkVersions {
		if err := uc.SbtSvc.Publish(ctx, sparkVersion, task); err != nil {
			return fmt.Errorf("failed to publish for Spark %s: %w", sparkVersion, err)
		}
	}
	return nil
}
