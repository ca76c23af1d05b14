package service

import "context"

// SbtService defines the interface for driving the sbt build.

type SbtService interface {
	// Release runs the sbt release flow, which writes the release version,
	// tags it, and sets the next development version.
	Release(ctx context.Context, releaseVersion, nextVersion string) error
	// Publish runs a clean build and the given publish task against one
	// Spark version.
	Publish(ctx context.Context, sparkVersion, task string) error
}
