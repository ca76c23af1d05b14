package service

import (
	"os"
	"strings"
	"time"
)

// Timeout constants for service operations. sbt resolves and compiles a full
// build per invocation and the docs script renders the whole site, so both
// defaults are generous.
var (
	// DefaultSbtTimeout bounds a single sbt invocation
	DefaultSbtTimeout = getTimeoutOrDefault("RELEASEKIT_SBT_TIMEOUT", 60*time.Minute, 5*time.Second)
	// DefaultDocsTimeout bounds the documentation build script
	DefaultDocsTimeout = getTimeoutOrDefault("RELEASEKIT_DOCS_TIMEOUT", 30*time.Minute, 5*time.Second)
)

// isTestEnvironment detects if we're running in a test environment
func isTestEnvironment() bool {
	for _, arg := range os.Args {
		if strings.Contains(arg, ".test") || strings.Contains(arg, "go test") {
			return true
		}
	}
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
