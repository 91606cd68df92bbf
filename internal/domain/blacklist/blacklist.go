// Package blacklist screens normalized field labels that must never be
// mapped: internal bookkeeping fields, hidden inputs, and free-form
// comment boxes that would otherwise fuzzy-match a real field.
package blacklist

import "regexp"

// patterns are matched against normalized labels. The first match wins
// and its source expression is reported for explainability.
var patterns = []*regexp.Regexp{
	// internal and reserved fields
	regexp.MustCompile(`\binternal\s+use\b`),
	regexp.MustCompile(`\breserved\b`),
	regexp.MustCompile(`\bdo\s+not\s+fill\b`),
	regexp.MustCompile(`\bdo\s+not\s+complete\b`),
	regexp.MustCompile(`\bnot\s+for\s+applicant\b`),
	regexp.MustCompile(`\bfor\s+internal\s+use\s+only\b`),
	regexp.MustCompile(`\bhr\s+use\s+only\b`),
	regexp.MustCompile(`\brecruiter\s+use\s+only\b`),
	regexp.MustCompile(`\badmin\s+use\s+only\b`),
	regexp.MustCompile(`\badministrative\s+use\s+only\b`),

	// hidden and system fields
	regexp.MustCompile(`\bhidden\b`),
	regexp.MustCompile(`\bsystem\s+field\b`),
	regexp.MustCompile(`\bauto\s+generated\b`),
	regexp.MustCompile(`\bgenerated\s+by\s+system\b`),

	// placeholder and example fields
	regexp.MustCompile(`\bplaceholder\b`),
	regexp.MustCompile(`\bexample\b`),
	regexp.MustCompile(`\bsample\b`),
	regexp.MustCompile(`\btest\s+field\b`),
	regexp.MustCompile(`\bdemo\b`),

	// disabled and inactive fields
	regexp.MustCompile(`\bdisabled\b`),
	regexp.MustCompile(`\binactive\b`),
	regexp.MustCompile(`\bnot\s+in\s+use\b`),
	regexp.MustCompile(`\bdeprecated\b`),

	// comment boxes that carry no resume data
	regexp.MustCompile(`^\s*comment\s*$`),
	regexp.MustCompile(`^\s*note\s*$`),
	regexp.MustCompile(`^\s*notes\s*$`),
	regexp.MustCompile(`^\s*remarks\s*$`),
}

// Check reports whether a normalized label is blacklisted, and if so
// which pattern claimed it.
func Check(normalized string) (bool, string) {
	for _, p := range patterns {
		if p.MatchString(normalized) {
			return true, p.String()
		}
	}
	return false, ""
}

// Patterns returns the source expressions of every screening pattern.
func Patterns() []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = p.String()
	}
	return out
}
