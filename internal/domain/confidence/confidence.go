// Package confidence turns raw match similarity into a weighted
// confidence score. Exact matches score a flat 1.0; fuzzy matches are
// dampened by the field's sensitivity weight so that false positives on
// loosely-worded fields cost less.
package confidence

import "github.com/okian/fieldmap/internal/domain/model"

// fuzzyCeiling keeps weighted fuzzy scores strictly below an exact
// match, so callers can always rank exact over fuzzy. It only applies
// when the weighted product would otherwise reach 1.0.
const fuzzyCeiling = 0.9999

// Scorer computes weighted confidence for accepted matches.
type Scorer struct {
	threshold float64
}

// NewScorer builds a scorer anchored at the acceptance threshold. Fuzzy
// scores never land below the threshold that admitted them.
func NewScorer(threshold float64) *Scorer {
	return &Scorer{threshold: threshold}
}

// Score computes the confidence for a match of the given kind. similarity
// is the raw unweighted score; weight is the field's sensitivity weight.
func (s *Scorer) Score(kind model.MatchKind, similarity, weight float64) float64 {
	switch kind {
	case model.MatchExact:
		return 1.0
	case model.MatchFuzzy:
		c := similarity * weight
		if c < s.threshold {
			c = s.threshold
		}
		if c >= 1.0 {
			c = fuzzyCeiling
		}
		return c
	default:
		return 0
	}
}
