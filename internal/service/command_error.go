package service

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandError reports a failed external command together with its exit
// status and captured stderr, so callers can surface the diagnostic without
// re-running anything.
type CommandError struct {
	Name     string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	cmdline := strings.TrimSpace(e.Name + " " + strings.Join(e.Args, " "))
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("command %q exited with status %d", cmdline, e.ExitCode)
	}
	return fmt.Sprintf("command %q exited with status %d: %s", cmdline, e.ExitCode, stderr)
}

// commandFailed converts an exec error into a CommandError when the command
// ran and exited non-zero. Failures to start (missing binary, bad
// permissions) have no exit status and are wrapped as-is.
func commandFailed(name string, args []string, err error, stderr string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{
			Name:     name,
			Args:     args,
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr,
		}
	}
	return fmt.Errorf("command %s failed: %w", name, err)
}
