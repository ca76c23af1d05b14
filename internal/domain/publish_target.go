package domain

import (
	"fmt"
	"sort"
	"strings"
)

// PublishTarget selects where release artifacts are published.
type PublishTarget string

const (
	// PublishLocal publishes to the local ivy repository.
	PublishLocal PublishTarget = "local"
	// PublishM2 publishes to the local maven repository.
	PublishM2 PublishTarget = "m2"
	// PublishSparkPackage builds the spark-packages distribution.
	PublishSparkPackage PublishTarget = "spark-package-publish"
)

// publishTasks maps each target to the sbt task that performs it.
var publishTasks = map[PublishTarget]string{
	PublishLocal:        "publishLocal",
	PublishM2:           "publishM2",
	PublishSparkPackage: "spDist",
}

// ParsePublishTarget validates a raw publish-to value.
func ParsePublishTarget(s string) (PublishTarget, error) {
	target := PublishTarget(s)
	if _, ok := publishTasks[target]; !ok {
		return "", fmt.Errorf("unknown publish target %q (expected one of: %s)", s, strings.Join(PublishTargetNames(), ", "))
	}
	return target, nil
}

// PublishTargetNames lists the accepted publish-to values in stable order.
func PublishTargetNames() []string {
	names := make([]string, 0, len(publishTasks))
	for target := range publishTasks {
		names = append(names, string(target))
	}
	sort.Strings(names)
	return names
}

// SbtTask returns the sbt task for the target.
func (t PublishTarget) SbtTask() string {
	return publishTasks[t]
}

func (t PublishTarget) String() string {
	return string(t)
}
