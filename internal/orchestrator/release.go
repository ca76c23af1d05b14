package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/graphframes/releasekit/internal/console"
	"github.com/graphframes/releasekit/internal/domain"
	"github.com/graphframes/releasekit/internal/repository"
	"github.com/graphframes/releasekit/internal/service"
	"github.com/graphframes/releasekit/internal/usecase"
	"go.uber.org/zap"
)

// ErrAborted is returned when the operator declines a confirmation the
// workflow cannot proceed without.
var ErrAborted = errors.New("release aborted")

// ReleaseConfig carries the flag and configuration values for one release run.
type ReleaseConfig struct {
	ReleaseVersion string
	NextVersion    string
	PublishTo      string
	NoPrompt       bool
	GitRemote      string
	PublishDocs    bool
	SparkVersions  []string
	PrimaryBranch  string
	DocsSiteDir    string
	PagesBranch    string
	GithubToken    string
}

// ReleaseOrchestrator drives the release workflow end to end: version bump,
// tag, per-Spark-version publishing, branch bookkeeping, and docs.
type ReleaseOrchestrator struct {
	gitRepo  repository.GitRepository
	sbtSvc   service.SbtService
	docsSvc  service.DocsService
	printer  *console.Printer
	prompter console.Prompter
	logger   *zap.Logger
}

// NewReleaseOrchestrator creates a new release orchestrator.
func NewReleaseOrchestrator(
	gitRepo repository.GitRepository,
	sbtSvc service.SbtService,
	docsSvc service.DocsService,
	printer *console.Printer,
	prompter console.Prompter,
	logger *zap.Logger,
) *ReleaseOrchestrator {
	return &ReleaseOrchestrator{
		gitRepo:  gitRepo,
		sbtSvc:   sbtSvc,
		docsSvc:  docsSvc,
		printer:  printer,
		prompter: prompter,
		logger:   logger,
	}
}

// Execute runs the complete release workflow.
func (o *ReleaseOrchestrator) Execute(ctx context.Context, cfg ReleaseConfig) error {
	ctx, cancel := context.WithTimeout(ctx, ReleaseWorkflowTimeout)
	defer cancel()
	// Step 1: derive every name for the run before touching anything
	plan, err := o.buildPlan(cfg)
	if err != nil {
		return err
	}
	// Step 2: confirm the version pair
	ok, err := o.confirm(cfg.NoPrompt, fmt.Sprintf(
		"Publishing version: %s\nNext version will be: %s\nContinue?", plan.Release, plan.Next))
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	// Steps 3-4: inspect the checkout the release starts from
	originalBranch, err := o.inspectWorktree(ctx, cfg)
	if err != nil {
		return err
	}
	// Step 5: refuse to overwrite an existing release
	if err := o.ensureTagAvailable(ctx, plan.Tag); err != nil {
		return err
	}
	// Step 6: working branch
	o.printer.Prominent("Creating working branch for this release.")
	if err := o.gitRepo.CreateBranch(ctx, plan.WorkingBranch); err != nil {
		return fmt.Errorf("failed to create working branch %s: %w", plan.WorkingBranch, err)
	}
	o.logger.Debug("working branch created", zap.String("branch", plan.WorkingBranch))
	// Step 7: sbt writes the release version, tags it, and bumps to the next
	// development version
	o.printer.Prominent("Creating release tag and updating snapshot version.")
	if err := o.sbtSvc.Release(ctx, plan.Release.String(), plan.Next.String()); err != nil {
		return fmt.Errorf("failed to run sbt release: %w", err)
	}
	// Steps 8-9: build and publish from the tagged commit
	o.printer.Prominent("Building and testing with sbt.")
	if err := o.gitRepo.CheckoutTag(ctx, plan.Tag); err != nil {
		return fmt.Errorf("failed to check out tag %s: %w", plan.Tag, err)
	}
	if err := o.publishArtifacts(ctx, plan); err != nil {
		return err
	}
	// Step 10: fold the working branch back into the original branch
	o.printer.Prominent("Updating local branch: %s", originalBranch)
	if err := o.finalizeBranch(ctx, originalBranch, plan.WorkingBranch); err != nil {
		return err
	}
	o.printer.Prominent("Local branch updated")
	// Step 11: push branch and tag, only with explicit approval
	ok, err = o.confirmRemote(cfg.NoPrompt, fmt.Sprintf(
		"Would you like to push local branch & version tag to remote: %s?", cfg.GitRemote))
	if err != nil {
		return err
	}
	if ok {
		if err := o.pushRelease(ctx, cfg, originalBranch, plan.Tag); err != nil {
			return err
		}
	}
	// Steps 12-13: docs
	o.printer.Prominent("Building release docs")
	ok, err = o.confirmDocs(cfg)
	if err != nil {
		return err
	}
	if !ok {
		// All done, exit happy
		o.printer.Success("Release %s complete", plan.Release)
		return nil
	}
	if err := o.buildDocs(ctx, plan, cfg.DocsSiteDir); err != nil {
		return err
	}
	ok, err = o.confirmRemote(cfg.NoPrompt, fmt.Sprintf(
		"Would you like to push docs branch to %s and update %s branch?", cfg.GitRemote, cfg.PagesBranch))
	if err != nil {
		return err
	}
	if ok {
		if err := o.pushDocs(ctx, cfg, plan); err != nil {
			return err
		}
	}
	// The docs branch is transient whether or not it was pushed.
	if err := o.gitRepo.CheckoutBranch(ctx, originalBranch); err != nil {
		return fmt.Errorf("failed to check out %s: %w", originalBranch, err)
	}
	if err := o.gitRepo.DeleteBranch(ctx, plan.DocsBranch); err != nil {
		return fmt.Errorf("failed to delete docs branch %s: %w", plan.DocsBranch, err)
	}
	o.printer.Success("Release %s complete", plan.Release)
	return nil
}

// buildPlan validates the run inputs and derives the tag and branch names.
func (o *ReleaseOrchestrator) buildPlan(cfg ReleaseConfig) (*domain.Plan, error) {
	target, err := domain.ParsePublishTarget(cfg.PublishTo)
	if err != nil {
		return nil, err
	}
	release, err := domain.NewVersion(cfg.ReleaseVersion)
	if err != nil {
		return nil, err
	}
	next, err := domain.NewNextVersion(cfg.NextVersion)
	if err != nil {
		return nil, err
	}
	if len(cfg.SparkVersions) == 0 {
		return nil, errors.New("at least one Spark version is required")
	}
	plan := domain.NewPlan(release, next, target, cfg.SparkVersions, time.Now())
	for _, branch := range []string{plan.WorkingBranch, plan.DocsBranch} {
		if err := ValidateBranchName(branch); err != nil {
			return nil, fmt.Errorf("derived branch name is not usable: %w", err)
		}
	}
	o.logger.Debug("release planned",
		zap.String("tag", plan.Tag),
		zap.String("working_branch", plan.WorkingBranch),
		zap.String("docs_branch", plan.DocsBranch),
		zap.Strings("spark_versions", plan.SparkVersions),
	)
	return plan, nil
}

// inspectWorktree resolves the branch the release starts from and rejects
// checkouts a release cannot start from.
func (o *ReleaseOrchestrator) inspectWorktree(ctx context.Context, cfg ReleaseConfig) (string, error) {
	uc := &usecase.InspectWorktreeUseCase{GitRepo: o.gitRepo}
	branch, changes, err := uc.Execute(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrDetachedHead) {
			return "", errors.New("cannot build from detached HEAD state, create a branch first")
		}
		return "", err
	}
	if branch != cfg.PrimaryBranch {
		ok, err := o.confirm(cfg.NoPrompt, fmt.Sprintf(
			"You're not on the %s branch, do you want to continue?", cfg.PrimaryBranch))
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrAborted
		}
	}
	if changes != "" {
		o.printer.Prominent("There seem to be uncommitted changes on your current branch. Please commit or stash them and try again.")
		return "", fmt.Errorf("working tree has uncommitted changes:\n%s", changes)
	}
	return branch, nil
}

func (o *ReleaseOrchestrator) ensureTagAvailable(ctx context.Context, tag string) error {
	uc := &usecase.EnsureTagAvailableUseCase{GitRepo: o.gitRepo}
	return uc.Execute(ctx, tag)
}

func (o *ReleaseOrchestrator) publishArtifacts(ctx context.Context, plan *domain.Plan) error {
	uc := &usecase.PublishArtifactsUseCase{SbtSvc: o.sbtSvc}
	if err := uc.Execute(ctx, plan); err != nil {
		return err
	}
	o.logger.Debug("artifacts published",
		zap.String("task", plan.Target.SbtTask()),
		zap.Int("spark_versions", len(plan.SparkVersions)),
	)
	return nil
}

func (o *ReleaseOrchestrator) finalizeBranch(ctx context.Context, originalBranch, workingBranch string) error {
	uc := &usecase.FinalizeBranchUseCase{GitRepo: o.gitRepo}
	return uc.Execute(ctx, originalBranch, workingBranch)
}

func (o *ReleaseOrchestrator) pushRelease(ctx context.Context, cfg ReleaseConfig, branch, tag string) error {
	if err := ValidatePushCredentials(cfg.GitRemote, cfg.GithubToken); err != nil {
		return err
	}
	uc := &usecase.PushReleaseUseCase{GitRepo: o.gitRepo}
	if err := uc.Execute(ctx, cfg.GitRemote, branch, tag); err != nil {
		return err
	}
	o.logger.Debug("release pushed", zap.String("remote", cfg.GitRemote), zap.String("tag", tag))
	return nil
}

func (o *ReleaseOrchestrator) buildDocs(ctx context.Context, plan *domain.Plan, siteDir string) error {
	uc := &usecase.BuildDocsUseCase{GitRepo: o.gitRepo, DocsSvc: o.docsSvc}
	return uc.Execute(ctx, plan, siteDir)
}

// pushDocs publishes the docs branch and force-updates the pages branch that
// serves the site.
func (o *ReleaseOrchestrator) pushDocs(ctx context.Context, cfg ReleaseConfig, plan *domain.Plan) error {
	if err := ValidatePushCredentials(cfg.GitRemote, cfg.GithubToken); err != nil {
		return err
	}
	if err := o.gitRepo.PushBranch(ctx, cfg.GitRemote, plan.DocsBranch); err != nil {
		return fmt.Errorf("failed to push docs branch %s: %w", plan.DocsBranch, err)
	}
	if err := o.gitRepo.ForcePushBranch(ctx, cfg.GitRemote, plan.DocsBranch, cfg.PagesBranch); err != nil {
		return fmt.Errorf("failed to update %s: %w", cfg.PagesBranch, err)
	}
	o.logger.Debug("docs pushed", zap.String("remote", cfg.GitRemote), zap.String("pages_branch", cfg.PagesBranch))
	return nil
}

// confirm asks a yes/no question, auto-accepting when prompts are disabled.
func (o *ReleaseOrchestrator) confirm(noPrompt bool, prompt string) (bool, error) {
	if noPrompt {
		return true, nil
	}
	return o.prompter.Confirm(prompt)
}

// confirmRemote asks before touching a remote. With prompts disabled the
// action is skipped rather than approved: an unattended run must never push
// anywhere.
func (o *ReleaseOrchestrator) confirmRemote(noPrompt bool, prompt string) (bool, error) {
	if noPrompt {
		o.printer.Warn("Prompts are disabled, skipping remote action: %s", prompt)
		return false, nil
	}
	return o.prompter.Confirm(prompt)
}

// confirmDocs gates the docs build on the flag and, interactively, on the
// operator.
func (o *ReleaseOrchestrator) confirmDocs(cfg ReleaseConfig) (bool, error) {
	if !cfg.PublishDocs {
		return false, nil
	}
	return o.confirm(cfg.NoPrompt, "Would you like to build release docs?")
}
