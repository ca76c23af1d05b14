package orchestrator

import (
	"fmt"
	"regexp"
	"strings"
)

// branchNameRegex matches the characters allowed in the refs this tool
// derives. "@" appears in generated working branch names.
var branchNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._/@-]+$`)

// ValidateBranchName validates a git branch name.
func ValidateBranchName(branch string) error {
	if branch == "" {
		return fmt.Errorf("branch name cannot be empty")
	}
	if len(branch) > 255 {
		return fmt.Errorf("branch name too long: %d characters (max: 255)", len(branch))
	}
	if strings.HasPrefix(branch, "/") || strings.HasSuffix(branch, "/") {
		return fmt.Errorf("branch name cannot start or end with slash: %s", branch)
	}
	if strings.Contains(branch, "..") {
		return fmt.Errorf("branch name cannot contain consecutive dots: %s", branch)
	}
	if strings.Contains(branch, "@{") {
		return fmt.Errorf("branch name cannot contain @{: %s", branch)
	}
	if strings.HasSuffix(branch, ".lock") {
		return fmt.Errorf("branch name cannot end with .lock: %s", branch)
	}
	if !branchNameRegex.MatchString(branch) {
		return fmt.Errorf("invalid branch name format: %s", branch)
	}
	return nil
}

// ValidatePushCredentials checks that token auth is available when the remote
// needs it. SSH remotes authenticate through the ssh agent, so only http(s)
// remotes are checked.
func ValidatePushCredentials(remote, token string) error {
	if !strings.HasPrefix(remote, "http://") && !strings.HasPrefix(remote, "https://") {
		return nil
	}
	if token != "" {
		return nil
	}
	return fmt.Errorf("pushing to an http(s) remote requires a GitHub token (set GITHUB_TOKEN or RELEASEKIT_GITHUB_TOKEN)")
}
