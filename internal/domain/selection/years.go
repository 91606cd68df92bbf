package selection

import (
	"strconv"
	"strings"
)

// Year bounds considered plausible for resume dates.
const (
	minYear = 1900
	maxYear = 2100
)

// ParseYear parses a year string, rejecting values outside [1900, 2100].
// Anything unparseable is treated as absent.
func ParseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < minYear || year > maxYear {
		return 0, false
	}
	return year, true
}
