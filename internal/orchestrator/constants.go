package orchestrator

import (
	"os"
	"strings"
	"time"
)

// ReleaseWorkflowTimeout bounds a whole release run. The default is generous
// because it covers one sbt release build plus one publish per Spark version.
var ReleaseWorkflowTimeout = getTimeoutOrDefault("RELEASEKIT_WORKFLOW_TIMEOUT", 6*time.Hour, 10*time.Second)

// isTestEnvironment detects if we're running in a test environment
func isTestEnvironment() bool {
	// Check for testing flags
	for _, arg := range os.Args {
		if strings.Contains(arg, ".test") || strings.Contains(arg, "go test") {
			return true
		}
	}
	// Check for test environment variables
	return os.Getenv("GO_TEST") == "true" || os.Getenv("TEST_MODE") == "true"
}

// getTimeoutOrDefault returns production timeout or test timeout based on environment
func getTimeoutOrDefault(envVar string, prodDefault, testDefault time.Duration) time.Duration {
	if env := os.Getenv(envVar); env != "" {
		if duration, err := time.ParseDuration(env); err == nil {
			return duration
		}
	}
	if isTestEnvironment() {
		return testDefault
	}
	return prodDefault
}
