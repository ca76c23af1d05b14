package cmd

import (
	"strings"

	"github.com/graphframes/releasekit/internal/config"
	"github.com/graphframes/releasekit/internal/domain"
	"github.com/graphframes/releasekit/internal/orchestrator"
	"github.com/spf13/cobra"
)

// NewReleaseCmd creates the release command
func NewReleaseCmd() *cobra.Command {
	var (
		releasePublishTo     string
		releaseNoPrompt      bool
		releaseGitRemote     string
		releasePublishDocs   bool
		releaseSparkVersions []string
	)
	defaults := config.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "release <release-version> <next-version>",
		Short: "Cut a GraphFrames release",
		Long: `Cut a release end to end.

This command orchestrates the entire release workflow:
- Checks the working tree is clean and the release tag is free
- Runs the sbt release flow on a dedicated working branch
- Publishes artifacts once per Spark version
- Fast-forwards the original branch and deletes the working branch
- Optionally pushes the branch and tag, builds the docs site, and
  updates the GitHub Pages branch

Remote pushes always require an interactive confirmation: with
--no-prompt they are skipped, never assumed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newContainer(debugMode)
			if err != nil {
				return err
			}
			// Flags win over the configuration file for values both carry.
			remote := c.cfg.GitRemote
			if cmd.Flags().Changed("git-remote") {
				remote = releaseGitRemote
			}
			sparkVersions := c.cfg.SparkVersions
			if cmd.Flags().Changed("spark-version") {
				sparkVersions = releaseSparkVersions
			}
			if err := config.ValidateRemoteURL(remote); err != nil {
				return err
			}
			for _, v := range sparkVersions {
				if err := config.ValidateSparkVersion(v); err != nil {
					return err
				}
			}
			orch := orchestrator.NewReleaseOrchestrator(
				c.gitRepo, c.sbtSvc, c.docsSvc, c.printer, c.prompter, c.logger,
			)
			cfg := orchestrator.ReleaseConfig{
				ReleaseVersion: args[0],
				NextVersion:    args[1],
				PublishTo:      releasePublishTo,
				NoPrompt:       releaseNoPrompt,
				GitRemote:      remote,
				PublishDocs:    releasePublishDocs,
				SparkVersions:  sparkVersions,
				PrimaryBranch:  c.cfg.PrimaryBranch,
				DocsSiteDir:    c.cfg.DocsSiteDir,
				PagesBranch:    c.cfg.PagesBranch,
				GithubToken:    c.cfg.GithubToken,
			}
			return orch.Execute(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&releasePublishTo, "publish-to", "local",
		"Where to publish artifacts, one of: "+strings.Join(domain.PublishTargetNames(), ", "))
	cmd.Flags().BoolVar(&releaseNoPrompt, "no-prompt", false,
		"Automated mode with no user prompts (remote pushes are skipped)")
	cmd.Flags().StringVar(&releaseGitRemote, "git-remote", defaults.GitRemote,
		"Push the current branch and docs to this git remote")
	cmd.Flags().BoolVar(&releasePublishDocs, "publish-docs", true,
		"Build and publish docs to GitHub Pages")
	cmd.Flags().StringArrayVar(&releaseSparkVersions, "spark-version", defaults.SparkVersions,
		"Spark version to publish for (repeatable)")
	return cmd
}
