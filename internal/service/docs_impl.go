package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/spf13/afero"
)

// docsService is the implementation of the DocsService interface.
type docsService struct {
	fs     afero.Fs
	script string
	// timeout for the documentation build
	timeout time.Duration
}

// NewDocsService creates a new DocsService around the project's doc-build
// script.
func NewDocsService(fs afero.Fs, script string) DocsService {
	return &docsService{
		fs:      fs,
		script:  script,
		timeout: DefaultDocsTimeout,
	}
}

// Build runs the documentation build script in the current directory.
func (s *docsService) Build(ctx context.Context) error {
	if _, err := s.fs.Stat(s.script); err != nil {
		return fmt.Errorf("docs build script %s not found (run from the repository root): %w", s.script, err)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, s.script)
	var stderr bytes.Buffer
	cmd.Stdout = os.Stdout
	cmd.Stderr = io.MultiWriter(os.Stderr, &stderr)
	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("docs build timed out after %v", s.timeout)
		}
		return commandFailed(s.script, nil, err, stderr.String())
	}
	return nil
}
