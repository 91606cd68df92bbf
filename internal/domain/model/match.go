package model

// MatchKind classifies how a field name was resolved to a canonical field.
type MatchKind string

const (
	// MatchExact means the normalized name hit the variant table verbatim.
	MatchExact MatchKind = "exact"
	// MatchFuzzy means the name was resolved by similarity scoring.
	MatchFuzzy MatchKind = "fuzzy"
	// MatchIgnored means the name hit a blacklist pattern and was excluded.
	MatchIgnored MatchKind = "ignored"
	// MatchNone means no canonical field cleared the match threshold.
	MatchNone MatchKind = "none"
)
