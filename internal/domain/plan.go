package domain

import (
	"fmt"
	"time"
)

// branchTimestampLayout keeps branch names filesystem- and refname-safe.
const branchTimestampLayout = "2006-01-02T15-04-05"

// Plan holds every name derived for a single release run. All fields are
// computed once up front and stay immutable for the run's duration.
type Plan struct {
	Release       *Version
	Next          *Version
	Target        PublishTarget
	Tag           string
	WorkingBranch string
	DocsBranch    string
	SparkVersions []string
}

// NewPlan derives the tag and branch names for a release started at the given
// time. Including the timestamp makes branch names unique per invocation.
func NewPlan(release, next *Version, target PublishTarget, sparkVersions []string, at time.Time) *Plan {
	stamp := at.Format(branchTimestampLayout)
	return &Plan{
		Release:       release,
		Next:          next,
		Target:        target,
		Tag:           release.TagName(),
		WorkingBranch: fmt.Sprintf("WORKING_BRANCH_RELEASE_%s_@%s", release, stamp),
		// Branches named with a leading "z" sort last in branch listings,
		// keeping transient docs branches out of the way.
		DocsBranch:    fmt.Sprintf("zWORKING_BRANCH_DOCS_%s_@%s", release, stamp),
		SparkVersions: sparkVersions,
	}
}
