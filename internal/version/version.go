// Package version wraps semantic version parsing and bump arithmetic.
package version

import (
	"fmt"

	"github.com/wahlandcase/attuned.release/internal/models"

	"github.com/Masterminds/semver/v3"
)

// Parse parses a stored version string strictly (no "v" prefix, no partial
// versions). Anything that isn't X.Y.Z with optional prerelease/build fails.
func Parse(s string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version %q: %w", s, err)
	}
	return v, nil
}

// Bump computes the next version for a bump kind. Reset rules follow semver:
// a major bump zeroes minor and patch, a minor bump zeroes patch.
func Bump(v *semver.Version, kind models.BumpKind) *semver.Version {
	var next semver.Version
	switch kind {
	case models.BumpMajor:
		next = v.IncMajor()
	case models.BumpMinor:
		next = v.IncMinor()
	default:
		next = v.IncPatch()
	}
	return &next
}
