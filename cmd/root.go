package cmd

import (
	"github.com/graphframes/releasekit/pkg/version"
	"github.com/spf13/cobra"
)

var debugMode bool

var rootCmd = &cobra.Command{
	Use:     "releasekit",
	Short:   "A CLI tool for releasing GraphFrames",
	Long:    `releasekit drives the GraphFrames release process, from the sbt version bump to publishing artifacts and documentation.`,
	Version: version.Summary(),
	// Runtime failures are reported once, by main.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}
