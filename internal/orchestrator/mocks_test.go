package orchestrator

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock for GitRepository - implements ALL methods from the interface
type mockGitRepository struct{ mock.Mock }

func (m *mockGitRepository) CurrentBranch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *mockGitRepository) WorktreeStatus(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *mockGitRepository) TagExists(ctx context.Context, tag string) (bool, error) {
	args := m.Called(ctx, tag)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitRepository) CreateBranch(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
func (m *mockGitRepository) CreateBranchAt(ctx context.Context, name, tag string) error {
	args := m.Called(ctx, name, tag)
	return args.Error(0)
}
func (m *mockGitRepository) CheckoutBranch(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
func (m *mockGitRepository) CheckoutTag(ctx context.Context, tag string) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}
func (m *mockGitRepository) FastForwardMerge(ctx context.Context, branch string) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}
func (m *mockGitRepository) DeleteBranch(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
func (m *mockGitRepository) ForceAddDir(ctx context.Context, dir string) error {
	args := m.Called(ctx, dir)
	return args.Error(0)
}
func (m *mockGitRepository) Commit(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
func (m *mockGitRepository) PushBranch(ctx context.Context, remote, branch string) error {
	args := m.Called(ctx, remote, branch)
	return args.Error(0)
}
func (m *mockGitRepository) PushTag(ctx context.Context, remote, tag string) error {
	args := m.Called(ctx, remote, tag)
	return args.Error(0)
}
func (m *mockGitRepository) ForcePushBranch(ctx context.Context, remote, src, dst string) error {
	args := m.Called(ctx, remote, src, dst)
	return args.Error(0)
}

// Mock for SbtService
type mockSbtService struct{ mock.Mock }

func (m *mockSbtService) Release(ctx context.Context, releaseVersion, nextVersion string) error {
	args := m.Called(ctx, releaseVersion, nextVersion)
	return args.Error(0)
}
func (m *mockSbtService) Publish(ctx context.Context, sparkVersion, task string) error {
	args := m.Called(ctx, sparkVersion, task)
	return args.Error(0)
}

// Mock for DocsService
type mockDocsService struct{ mock.Mock }

func (m *mockDocsService) Build(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Mock for Prompter
type mockPrompter struct{ mock.Mock }

func (m *mockPrompter) Confirm(prompt string) (bool, error) {
	args := m.Called(prompt)
	return args.Bool(0), args.Error(1)
}
