package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/graphframes/releasekit/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectWorktreeUseCase_Execute(t *testing.T) {
	t.Run("Should report the branch and a clean tree", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		uc := &InspectWorktreeUseCase{GitRepo: gitRepo}
		ctx := context.Background()
		gitRepo.On("CurrentBranch", ctx).Return("master", nil)
		gitRepo.On("WorktreeStatus", ctx).Return("", nil)
		branch, changes, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "master", branch)
		assert.Empty(t, changes)
		gitRepo.AssertExpectations(t)
	})
	t.Run("Should report uncommitted changes", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		uc := &InspectWorktreeUseCase{GitRepo: gitRepo}
		ctx := context.Background()
		gitRepo.On("CurrentBranch", ctx).Return("feature", nil)
		gitRepo.On("WorktreeStatus", ctx).Return("M  build.sbt\n", nil)
		branch, changes, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "feature", branch)
		assert.Equal(t, "M  build.sbt\n", changes)
		gitRepo.AssertExpectations(t)
	})
	t.Run("Should preserve the detached HEAD sentinel", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		uc := &InspectWorktreeUseCase{GitRepo: gitRepo}
		ctx := context.Background()
		gitRepo.On("CurrentBranch", ctx).Return("", repository.ErrDetachedHead)
		_, _, err := uc.Execute(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrDetachedHead)
		gitRepo.AssertNotCalled(t, "WorktreeStatus", ctx)
	})
	t.Run("Should fail when the status cannot be read", func(t *testing.T) {
		gitRepo := new(mockGitRepository)
		uc := &InspectWorktreeUseCase{GitRepo: gitRepo}
		ctx := context.Background()
		gitRepo.On("CurrentBranch", ctx).Return("master", nil)
		gitRepo.On("WorktreeStatus", ctx).Return("", errors.New("index locked"))
		_, _, err := uc.Execute(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to inspect working tree")
	})
}
