// Package selection resolves which entry of a repeated resume section a
// canonical field should read when no explicit index is given.
package selection

import "fmt"

// Strategy names a policy for choosing one entry among several.
type Strategy string

const (
	// MostRecent picks the entry with the latest end date; open-ended
	// entries sort before all dated ones.
	MostRecent Strategy = "most_recent"
	// Longest picks the entry with the longest duration; for projects it
	// picks the longest description.
	Longest Strategy = "longest"
	// HighestDegree picks the education entry with the highest degree level.
	HighestDegree Strategy = "highest_degree"
)

// Parse validates a strategy name.
func Parse(s string) (Strategy, error) {
	switch Strategy(s) {
	case MostRecent, Longest, HighestDegree:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	_, err := Parse(string(s))
	return err == nil
}
