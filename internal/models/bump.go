package models

import "fmt"

// BumpKind represents which part of the semantic version to increment
type BumpKind int

const (
	// BumpPatch increments the patch component (1.2.3 -> 1.2.4)
	BumpPatch BumpKind = iota
	// BumpMinor increments the minor component and resets patch (1.2.3 -> 1.3.0)
	BumpMinor
	// BumpMajor increments the major component and resets minor and patch (1.2.3 -> 2.0.0)
	BumpMajor
)

// ParseBumpKind parses a CLI argument into a BumpKind
func ParseBumpKind(s string) (BumpKind, error) {
	switch s {
	case "patch":
		return BumpPatch, nil
	case "minor":
		return BumpMinor, nil
	case "major":
		return BumpMajor, nil
	default:
		return BumpPatch, fmt.Errorf("unknown bump kind %q (expected patch, minor or major)", s)
	}
}

func (k BumpKind) String() string {
	switch k {
	case BumpPatch:
		return "patch"
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	default:
		return "unknown"
	}
}
