package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrentVersion is the schema version compiled into this build. It tracks
// the canonical field namespace, mapping rules, selection strategies, and
// result structure, following semantic versioning:
//   - MAJOR: breaking changes (fields removed, result structure changed)
//   - MINOR: new fields, new strategies, mapping rule changes
//   - PATCH: bug fixes and weight adjustments
const CurrentVersion = "1.0.0"

// Version is a MAJOR.MINOR.PATCH triple attached to the Registry at load
// time and stamped on every mapping result.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a MAJOR.MINOR.PATCH string.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String renders the version as MAJOR.MINOR.PATCH.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// CompatibleWith reports whether two versions share a MAJOR component. This
// is a contract for callers; the engine itself never branches on it.
func (v Version) CompatibleWith(other Version) bool {
	return v.Major == other.Major
}
