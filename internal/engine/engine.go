// Package engine maps free-form form field names to canonical resume
// fields. A mapping call normalizes the name, screens it against the
// blacklist, matches it to a canonical field, resolves the value from the
// resume source, and stamps the result with the schema version. The
// engine holds only immutable state and is safe for unsynchronized
// concurrent use.
package engine

import (
	"context"
	"fmt"

	"github.com/okian/fieldmap/internal/domain/blacklist"
	"github.com/okian/fieldmap/internal/domain/confidence"
	"github.com/okian/fieldmap/internal/domain/match"
	"github.com/okian/fieldmap/internal/domain/model"
	"github.com/okian/fieldmap/internal/domain/normalize"
	"github.com/okian/fieldmap/internal/domain/schema"
	"github.com/okian/fieldmap/internal/domain/selection"
)

// DefaultThreshold is the similarity floor below which fuzzy candidates
// are rejected.
const DefaultThreshold = 0.7

// Engine is the canonical field mapper.
type Engine struct {
	registry  *schema.Registry
	matcher   *match.Matcher
	scorer    *confidence.Scorer
	resolver  *selection.Resolver
	threshold float64
	strategy  selection.Strategy
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithThreshold sets the fuzzy acceptance threshold. Values outside
// (0, 1] keep the default.
func WithThreshold(threshold float64) Option {
	return func(e *Engine) {
		if threshold > 0 && threshold <= 1 {
			e.threshold = threshold
		}
	}
}

// WithStrategy sets the default selection strategy for repeated sections.
func WithStrategy(strategy selection.Strategy) Option {
	return func(e *Engine) {
		if strategy.Valid() {
			e.strategy = strategy
		}
	}
}

// WithResolver replaces the selection resolver, used by tests to pin the
// clock.
func WithResolver(resolver *selection.Resolver) Option {
	return func(e *Engine) {
		if resolver != nil {
			e.resolver = resolver
		}
	}
}

// New creates an engine over an immutable registry.
func New(registry *schema.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry:  registry,
		threshold: DefaultThreshold,
		strategy:  selection.MostRecent,
	}

	// Apply all options
	for _, opt := range opts {
		opt(e)
	}

	e.matcher = match.NewMatcher(registry)
	e.scorer = confidence.NewScorer(e.threshold)
	if e.resolver == nil {
		e.resolver = selection.NewResolver(registry)
	}
	return e
}

// Threshold reports the configured fuzzy acceptance threshold.
func (e *Engine) Threshold() float64 { return e.threshold }

// Version reports the schema version stamped onto every result.
func (e *Engine) Version() schema.Version { return e.registry.Version() }

// MapField maps one field name against the resume source. A nil result
// with a nil error means no canonical field cleared the threshold, or the
// matched field resolved to an empty repeated section; absence of data is
// not an error. Blacklisted names return a result with match kind
// ignored. index, when non-nil, overrides entry selection for repeated
// sections and must be in range.
func (e *Engine) MapField(ctx context.Context, name string, source *model.Resume, index *int) (*model.MappingResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if source == nil {
		return nil, fmt.Errorf("%w: nil resume source", model.ErrMalformedSource)
	}

	normalized := normalize.Normalize(name)
	if blocked, pattern := blacklist.Check(normalized); blocked {
		return e.ignoredResult(name, normalized, pattern), nil
	}
	if normalized == "" {
		return nil, nil
	}

	m := e.matcher.Match(normalized, e.threshold)
	if m.Kind == model.MatchNone {
		return nil, nil
	}

	spec, ok := e.registry.Spec(m.Field)
	if !ok {
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownField, m.Field)
	}
	weight := spec.Weight
	conf := e.scorer.Score(m.Kind, m.Similarity, weight)

	res := &model.MappingResult{
		CanonicalField:    m.Field.String(),
		MatchKind:         m.Kind,
		Confidence:        conf,
		RawScore:          m.Similarity,
		SensitivityWeight: weight,
		FieldName:         name,
		NormalizedName:    normalized,
		SchemaVersion:     e.registry.Version().String(),
	}

	resolved, err := e.resolve(m.Field, spec, source, index)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		// Matched a repeated-section field but no suitable entry exists.
		return nil, nil
	}
	res.SchemaPath = resolved.path
	res.Value = resolved.value
	res.SelectedIndex = resolved.index
	res.SelectionStrategy = resolved.strategy
	return res, nil
}

// MapFields maps a batch of field names sequentially. The returned map
// holds an entry per input name that produced a result; unmatched names
// are absent. Duplicate names compute once per occurrence but produce
// identical results by determinism.
func (e *Engine) MapFields(ctx context.Context, names []string, source *model.Resume) (map[string]*model.MappingResult, error) {
	results := make(map[string]*model.MappingResult, len(names))
	for _, name := range names {
		res, err := e.MapField(ctx, name, source, nil)
		if err != nil {
			return nil, fmt.Errorf("mapping %q: %w", name, err)
		}
		if res != nil {
			results[name] = res
		}
	}
	return results, nil
}

// FuzzyMatchField resolves a name to a canonical field identifier without
// value resolution. Returns the field, the raw similarity, and whether a
// candidate cleared the threshold.
func (e *Engine) FuzzyMatchField(name string, threshold float64) (schema.Field, float64, bool) {
	normalized := normalize.Normalize(name)
	if normalized == "" {
		return "", 0, false
	}
	if blocked, _ := blacklist.Check(normalized); blocked {
		return "", 0, false
	}
	m := e.matcher.Match(normalized, threshold)
	if m.Kind == model.MatchNone {
		return "", 0, false
	}
	return m.Field, m.Similarity, true
}

func (e *Engine) ignoredResult(name, normalized, pattern string) *model.MappingResult {
	return &model.MappingResult{
		MatchKind:       model.MatchIgnored,
		FieldName:       name,
		NormalizedName:  normalized,
		SchemaVersion:   e.registry.Version().String(),
		BlacklistReason: fmt.Sprintf("field matches blacklist pattern: %s", pattern),
	}
}
