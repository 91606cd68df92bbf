// Package match resolves normalized field labels against the canonical
// field catalog, first by exact variant lookup and then by bounded fuzzy
// comparison over every known variant.
package match

import (
	"strings"

	"github.com/okian/fieldmap/internal/domain/model"
	"github.com/okian/fieldmap/internal/domain/schema"
)

// containmentScore is the floor applied when one label fully contains the
// other. Substring relationships are strong evidence even when raw edit
// similarity is low.
const containmentScore = 0.85

// Candidate is one variant comparison from a fuzzy scan, kept for
// explainability output.
type Candidate struct {
	Variant     string
	Field       schema.Field
	Similarity  float64
	Containment bool
}

// Result is the outcome of matching one normalized label.
type Result struct {
	Field      schema.Field
	Kind       model.MatchKind
	Variant    string
	Similarity float64
	Candidates []Candidate
}

// Matcher matches normalized labels against one registry. It holds no
// mutable state and is safe for concurrent use.
type Matcher struct {
	registry *schema.Registry
}

// NewMatcher builds a matcher over the given registry.
func NewMatcher(registry *schema.Registry) *Matcher {
	return &Matcher{registry: registry}
}

// Match resolves a normalized label. Exact variant hits short-circuit with
// similarity 1.0; otherwise every variant is scanned and the best candidate
// at or above threshold wins. Ties on similarity resolve to the variant
// that sorts first by (field, variant), which the registry's binding order
// guarantees. Labels with no candidate at threshold return a Result with
// kind none.
func (m *Matcher) Match(normalized string, threshold float64) Result {
	if field, ok := m.registry.Lookup(normalized); ok {
		return Result{
			Field:      field,
			Kind:       model.MatchExact,
			Variant:    normalized,
			Similarity: 1.0,
		}
	}
	return m.scan(normalized, threshold, false)
}

// Scan performs a full fuzzy comparison and retains every candidate, for
// explain output. Exact hits are folded into the scan so the candidate
// list is complete.
func (m *Matcher) Scan(normalized string, threshold float64) Result {
	if field, ok := m.registry.Lookup(normalized); ok {
		res := m.scan(normalized, threshold, true)
		res.Field = field
		res.Kind = model.MatchExact
		res.Variant = normalized
		res.Similarity = 1.0
		return res
	}
	return m.scan(normalized, threshold, true)
}

func (m *Matcher) scan(normalized string, threshold float64, keep bool) Result {
	var (
		best       Candidate
		found      bool
		candidates []Candidate
	)
	for _, binding := range m.registry.VariantBindings() {
		score := Similarity(normalized, binding.Variant)
		contained := strings.Contains(binding.Variant, normalized) ||
			strings.Contains(normalized, binding.Variant)
		if contained && score < containmentScore {
			score = containmentScore
		}
		cand := Candidate{
			Variant:     binding.Variant,
			Field:       binding.Field,
			Similarity:  score,
			Containment: contained,
		}
		if keep {
			candidates = append(candidates, cand)
		}
		// Strictly greater keeps the earliest binding on ties, which
		// makes repeated runs land on the same winner.
		if !found || score > best.Similarity {
			best = cand
			found = true
		}
	}

	res := Result{Candidates: candidates}
	if found && best.Similarity >= threshold {
		res.Field = best.Field
		res.Kind = model.MatchFuzzy
		res.Variant = best.Variant
		res.Similarity = best.Similarity
		return res
	}
	res.Kind = model.MatchNone
	if found {
		res.Similarity = best.Similarity
		res.Variant = best.Variant
	}
	return res
}
