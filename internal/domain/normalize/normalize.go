// Package normalize provides the deterministic field-name normalizer. The
// transform is total and idempotent: it never fails, and applying it twice
// yields the same string as applying it once.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	rePrefix     = regexp.MustCompile(`^(required|optional|please enter|enter)\s*:?\s*`)
	reSuffix     = regexp.MustCompile(`\s*:?\s*(required|optional|\(required\)|\(optional\)|\*+)$`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Step names for normalization tracking.
const (
	StepLowercase  = "lowercase"
	StepStripAffix = "strip_affixes"
	StepStripChars = "strip_special_chars"
	StepCollapse   = "collapse_whitespace"
)

// Step records one applied normalization step for explainability.
type Step struct {
	Name   string `json:"step"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// Normalize lowercases the name, strips boilerplate prefixes/suffixes,
// removes characters outside letters/digits/space (apostrophes inside words
// are preserved), and collapses whitespace.
func Normalize(raw string) string {
	out, _ := run(raw, false)
	return out
}

// Steps normalizes like Normalize and additionally reports each step that
// changed the string, for the explanation trace.
func Steps(raw string) (string, []Step) {
	return run(raw, true)
}

// run repeats the pipeline until the string is stable. A single pass is not
// a fixpoint: stripping punctuation can expose a fresh boilerplate prefix
// ("required- email" -> "required email" -> "email").
func run(raw string, track bool) (string, []Step) {
	var steps []Step
	s := raw
	for {
		next, passSteps := pass(s, track)
		steps = append(steps, passSteps...)
		if next == s {
			return s, steps
		}
		s = next
	}
}

// pass applies the four normalization steps once, in order.
func pass(raw string, track bool) (string, []Step) {
	var steps []Step
	record := func(name, before, after string) {
		if track && before != after {
			steps = append(steps, Step{Name: name, Before: before, After: after})
		}
	}

	s := strings.ToLower(strings.TrimSpace(raw))
	record(StepLowercase, raw, s)

	before := s
	s = rePrefix.ReplaceAllString(s, "")
	s = reSuffix.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	record(StepStripAffix, before, s)

	before = s
	s = stripSpecial(s)
	record(StepStripChars, before, s)

	before = s
	s = strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
	record(StepCollapse, before, s)

	return s, steps
}

// stripSpecial replaces characters outside letters/digits/whitespace with a
// space, keeping apostrophes that sit between letters ("o'brien").
func stripSpecial(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		switch {
		case isWordRune(r) || r == ' ' || r == '\t' || r == '\n':
			b.WriteRune(r)
		case r == '\'' && i > 0 && i < len(runes)-1 && isLetter(runes[i-1]) && isLetter(runes[i+1]):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return isLetter(r) || unicode.IsDigit(r)
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}
