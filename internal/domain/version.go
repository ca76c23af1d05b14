package domain

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SnapshotSuffix marks a version as a development snapshot rather than a
// release artifact.
const SnapshotSuffix = "-SNAPSHOT"

// Version is a validated semantic version used for release naming.
type Version struct {
	*semver.Version
}

// NewVersion parses s into a Version, tolerating an optional leading "v".
func NewVersion(s string) (*Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return &Version{v}, nil
}

// NewNextVersion normalizes s to carry the development-snapshot suffix and
// parses the result. Inputs already ending in "SNAPSHOT" are not suffixed
// again.
func NewNextVersion(s string) (*Version, error) {
	v, err := NewVersion(NormalizeNextVersion(s))
	if err != nil {
		return nil, fmt.Errorf("invalid next version: %w", err)
	}
	return v, nil
}

// NormalizeNextVersion appends SnapshotSuffix when s does not already end in
// the snapshot marker. The suffix is appended at most once.
func NormalizeNextVersion(s string) string {
	if strings.HasSuffix(s, "SNAPSHOT") {
		return s
	}
	return s + SnapshotSuffix
}

// IsSnapshot reports whether the version carries the snapshot marker.
func (v *Version) IsSnapshot() bool {
	return strings.HasSuffix(v.Version.String(), "SNAPSHOT")
}

// TagName returns the release tag name for the version.
func (v *Version) TagName() string {
	return "v" + v.Version.String()
}

// String returns the canonical version string without a "v" prefix, the form
// handed to the build tool.
func (v *Version) String() string {
	return v.Version.String()
}
