package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"time"

	"github.com/spf13/afero"
)

// sbtService is the implementation of the SbtService interface.
type sbtService struct {
	fs       afero.Fs
	launcher string
	// timeout for a single sbt invocation
	timeout time.Duration
}

// NewSbtService creates a new SbtService around the project's sbt launcher
// script.
func NewSbtService(fs afero.Fs, launcher string) SbtService {
	return &sbtService{
		fs:       fs,
		launcher: launcher,
		timeout:  DefaultSbtTimeout,
	}
}

// sanitizeVersion validates a version string before it is interpolated into
// an sbt invocation.
func (s *sbtService) sanitizeVersion(version string) error {
	if version == "" {
		return fmt.Errorf("version cannot be empty")
	}
	validVersion := regexp.MustCompile(`^v?\d+\.\d+\.\d+(-[a-zA-Z0-9.-]+)?(\+[a-zA-Z0-9.-]+)?$`)
	if !validVersion.MatchString(version) {
		return fmt.Errorf("invalid version format: %s", version)
	}
	if len(version) > 100 {
		return fmt.Errorf("version too long: maximum 100 characters")
	}
	return nil
}

// sanitizeSparkVersion validates a Spark version before it becomes a -D
// property value.
func (s *sbtService) sanitizeSparkVersion(version string) error {
	if version == "" {
		return fmt.Errorf("spark version cannot be empty")
	}
	validVersion := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)
	if !validVersion.MatchString(version) {
		return fmt.Errorf("invalid spark version format: %s", version)
	}
	if len(version) > 100 {
		return fmt.Errorf("spark version too long: maximum 100 characters")
	}
	return nil
}

// sanitizeTask validates an sbt task name.
func (s *sbtService) sanitizeTask(task string) error {
	validTask := regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)
	if !validTask.MatchString(task) {
		return fmt.Errorf("invalid sbt task: %s", task)
	}
	return nil
}

// Release runs the sbt release flow for the given version pair.
func (s *sbtService) Release(ctx context.Context, releaseVersion, nextVersion string) error {
	if err := s.sanitizeVersion(releaseVersion); err != nil {
		return fmt.Errorf("invalid release version: %w", err)
	}
	if err := s.sanitizeVersion(nextVersion); err != nil {
		return fmt.Errorf("invalid next version: %w", err)
	}
	// The whole release directive is a single sbt command, so it must be
	// passed as one argument.
	directive := fmt.Sprintf("release release-version %s next-version %s", releaseVersion, nextVersion)
	return s.run(ctx, directive)
}

// Publish runs a clean build plus the publish task with the Spark version
// pinned.
func (s *sbtService) Publish(ctx context.Context, sparkVersion, task string) error {
	if err := s.sanitizeSparkVersion(sparkVersion); err != nil {
		return err
	}
	if err := s.sanitizeTask(task); err != nil {
		return err
	}
	return s.run(ctx, "-Dspark.version="+sparkVersion, "clean", task)
}

// run executes the sbt launcher, streaming build output to the console while
// teeing stderr into a capture buffer for structured errors.
func (s *sbtService) run(ctx context.Context, args ...string) error {
	if _, err := s.fs.Stat(s.launcher); err != nil {
		return fmt.Errorf("sbt launcher %s not found (run from the repository root): %w", s.launcher, err)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, s.launcher, args...)
	var stderr bytes.Buffer
	cmd.Stdout = os.Stdout
	cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)
	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("sbt timed out after %v", s.timeout)
		}
		return commandFailed(s.launcher, args, err, stderr.String())
	}
	return nil
}
