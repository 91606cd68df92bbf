package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/fieldmap/internal/domain/blacklist"
	"github.com/okian/fieldmap/internal/domain/match"
	"github.com/okian/fieldmap/internal/domain/model"
	"github.com/okian/fieldmap/internal/domain/normalize"
	"github.com/okian/fieldmap/internal/domain/schema"
	"github.com/okian/fieldmap/internal/domain/selection"
)

// maxAlternatives bounds how many losing candidates an explanation keeps.
const maxAlternatives = 5

// Explain runs the full mapping pipeline for one field name and reports
// every decision along the way. source may be nil, in which case the
// selection stage is omitted. Explain is diagnostic: it never influences
// MapField and selection failures are reported inside the trace rather
// than as errors.
func (e *Engine) Explain(ctx context.Context, name string, source *model.Resume, index *int) (*model.Trace, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized, steps := normalize.Steps(name)
	trace := &model.Trace{
		Normalization: model.TraceNormalization{
			Original:   name,
			Normalized: normalized,
			Steps:      traceSteps(steps),
		},
	}

	if blocked, pattern := blacklist.Check(normalized); blocked {
		trace.Matching = model.TraceMatching{
			Method:    string(model.MatchIgnored),
			Threshold: e.threshold,
			Reasoning: fmt.Sprintf("field matches blacklist pattern %q and is never mapped", pattern),
		}
		trace.Summary = fmt.Sprintf("Field %q is blacklisted (pattern %q) and was ignored.", name, pattern)
		return trace, nil
	}
	if normalized == "" {
		trace.Matching = model.TraceMatching{
			Method:    string(model.MatchNone),
			Threshold: e.threshold,
			Reasoning: "name is empty after normalization",
		}
		trace.Summary = fmt.Sprintf("Field %q normalized to an empty string and cannot be matched.", name)
		return trace, nil
	}

	m := e.matcher.Scan(normalized, e.threshold)
	trace.Matching = matchingTrace(normalized, m, e.threshold)

	if m.Kind == model.MatchNone {
		trace.Summary = fmt.Sprintf("Field %q did not match any canonical field: best similarity %.3f below threshold %.2f.",
			name, m.Similarity, e.threshold)
		return trace, nil
	}

	weight := e.registry.Weight(m.Field)
	conf := e.scorer.Score(m.Kind, m.Similarity, weight)
	trace.Confidence = &model.TraceConfidence{
		RawScore:   m.Similarity,
		Weight:     weight,
		Confidence: conf,
		Threshold:  e.threshold,
		Passed:     true,
		Reasoning: fmt.Sprintf("confidence %.3f = raw score %.3f × sensitivity weight %.2f",
			conf, m.Similarity, weight),
	}

	spec, _ := e.registry.Spec(m.Field)
	if source != nil && spec.Section != schema.SectionNone {
		trace.Selection = e.selectionTrace(spec, source, index)
	}

	trace.Summary = summary(name, m, conf, trace.Selection)
	return trace, nil
}

func traceSteps(steps []normalize.Step) []model.TraceStep {
	out := make([]model.TraceStep, len(steps))
	for i, s := range steps {
		out[i] = model.TraceStep{Step: s.Name, Before: s.Before, After: s.After}
	}
	return out
}

func matchingTrace(normalized string, m match.Result, threshold float64) model.TraceMatching {
	alts := make([]model.TraceCandidate, 0, len(m.Candidates))
	for _, c := range m.Candidates {
		alts = append(alts, model.TraceCandidate{
			Variant:        c.Variant,
			CanonicalField: c.Field.String(),
			Similarity:     c.Similarity,
			Containment:    c.Containment,
		})
	}
	sort.SliceStable(alts, func(i, j int) bool { return alts[i].Similarity > alts[j].Similarity })
	if len(alts) > maxAlternatives {
		alts = alts[:maxAlternatives]
	}

	t := model.TraceMatching{
		Method:         string(m.Kind),
		MatchedVariant: m.Variant,
		Similarity:     m.Similarity,
		Threshold:      threshold,
		Alternatives:   alts,
	}
	switch m.Kind {
	case model.MatchExact:
		t.Reasoning = fmt.Sprintf("exact match: %q is a known variant", normalized)
	case model.MatchFuzzy:
		t.Reasoning = fmt.Sprintf("fuzzy match: %q matched variant %q with similarity %.3f", normalized, m.Variant, m.Similarity)
	default:
		t.Reasoning = fmt.Sprintf("no match: best similarity %.3f below threshold %.2f", m.Similarity, threshold)
	}
	return t
}

func (e *Engine) selectionTrace(spec schema.Spec, source *model.Resume, index *int) *model.TraceSelection {
	strategy := e.strategy
	if spec.DefaultStrategy != "" {
		strategy = spec.DefaultStrategy
	}

	var (
		idx     int
		total   int
		err     error
		section string
	)
	switch spec.Section {
	case schema.SectionEducation:
		section = "education"
		total = len(source.Education)
		idx, _, err = e.resolver.Education(source.Education, strategy, index)
	case schema.SectionExperience:
		section = "experience"
		total = len(source.Experience)
		idx, _, err = e.resolver.Experience(source.Experience, strategy, index)
	case schema.SectionProject:
		section = "projects"
		total = len(source.Projects)
		idx, _, err = e.resolver.Projects(source.Projects, strategy, index)
	}

	t := &model.TraceSelection{
		Section:      section,
		Strategy:     string(strategy),
		TotalEntries: total,
	}
	switch {
	case err != nil:
		t.Reasoning = err.Error()
	case idx < 0:
		t.Reasoning = fmt.Sprintf("no entries available in %s list", section)
	case index != nil:
		t.SelectedIndex = &idx
		t.Reasoning = fmt.Sprintf("explicit index %d supplied by caller, overrides strategy", idx)
	case total == 1:
		t.SelectedIndex = &idx
		t.Reasoning = "only one entry available, selected automatically"
	default:
		t.SelectedIndex = &idx
		t.Reasoning = strategyReasoning(section, strategy, idx)
	}
	return t
}

func strategyReasoning(section string, strategy selection.Strategy, idx int) string {
	switch strategy {
	case selection.MostRecent:
		return fmt.Sprintf("selected entry %d with the most recent or ongoing span", idx)
	case selection.Longest:
		if section == "projects" {
			return fmt.Sprintf("selected entry %d with the longest description", idx)
		}
		return fmt.Sprintf("selected entry %d with the longest duration", idx)
	case selection.HighestDegree:
		return fmt.Sprintf("selected entry %d with the highest degree level", idx)
	default:
		return fmt.Sprintf("selected entry %d using %s strategy", idx, strategy)
	}
}

func summary(name string, m match.Result, conf float64, sel *model.TraceSelection) string {
	var s string
	if m.Kind == model.MatchExact {
		s = fmt.Sprintf("Field %q exactly matched canonical field %q.", name, m.Field.String())
	} else {
		s = fmt.Sprintf("Field %q fuzzy matched to canonical field %q with confidence %.1f%%.", name, m.Field.String(), conf*100)
	}
	if sel != nil && sel.SelectedIndex != nil {
		s += fmt.Sprintf(" Selected entry %d from the %s list using %s strategy.", *sel.SelectedIndex, sel.Section, sel.Strategy)
	}
	return s
}
