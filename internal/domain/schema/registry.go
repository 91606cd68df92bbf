package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/okian/fieldmap/internal/domain/normalize"
)

// VariantBinding associates one normalized variant string with the field
// that owns it. Bindings are ordered so that scanning them is deterministic.
type VariantBinding struct {
	Variant string
	Field   Field
}

// Registry is the immutable catalog of canonical fields, their known
// variants, and their sensitivity weights. Build one with NewRegistry and
// share it freely; it is safe for concurrent use.
type Registry struct {
	version  Version
	specs    map[Field]Spec
	variants map[Field][]string
	lookup   map[string]Field
	bindings []VariantBinding
	fields   []Field
}

// NewRegistry builds a registry from the built-in field catalog, applying
// any options, and validates the whole table before returning it.
func NewRegistry(opts ...Option) (*Registry, error) {
	version, err := ParseVersion(CurrentVersion)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in version: %w", err)
	}

	cfg := &registryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	specs := make(map[Field]Spec, len(fieldSpecs))
	for field, spec := range fieldSpecs {
		if w, ok := cfg.weightOverrides[string(field)]; ok {
			spec.Weight = w
		}
		specs[field] = spec
	}

	variants := make(map[Field][]string, len(fieldVariants))
	for field, list := range fieldVariants {
		variants[field] = append([]string(nil), list...)
	}
	for name, extra := range cfg.extraVariants {
		field := Field(name)
		if _, ok := specs[field]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		variants[field] = append(variants[field], extra...)
	}

	r := &Registry{
		version:  version,
		specs:    specs,
		variants: variants,
		lookup:   make(map[string]Field),
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	r.index()
	return r, nil
}

func (r *Registry) validate() error {
	seen := make(map[string]Field)
	for field, spec := range r.specs {
		if spec.Weight <= 0 || spec.Weight > 1 {
			return fmt.Errorf("%w: %s has weight %v", ErrInvalidWeight, field, spec.Weight)
		}
		if strings.TrimSpace(spec.Path) == "" {
			return fmt.Errorf("%w: %s has no path", ErrUnknownField, field)
		}
	}
	for field, list := range r.variants {
		if _, ok := r.specs[field]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		for _, v := range list {
			if normalize.Normalize(v) != v {
				return fmt.Errorf("%w: %q is not in normalized form", ErrInvalidVariant, v)
			}
			if owner, dup := seen[v]; dup {
				return fmt.Errorf("%w: %q claimed by both %s and %s", ErrDuplicateVariant, v, owner, field)
			}
			seen[v] = field
		}
	}
	return nil
}

func (r *Registry) index() {
	for field, list := range r.variants {
		for _, v := range list {
			r.lookup[v] = field
			r.bindings = append(r.bindings, VariantBinding{Variant: v, Field: field})
		}
	}
	// Sort by field then variant so fuzzy scans break ties the same way
	// on every run.
	sort.Slice(r.bindings, func(i, j int) bool {
		if r.bindings[i].Field != r.bindings[j].Field {
			return r.bindings[i].Field < r.bindings[j].Field
		}
		return r.bindings[i].Variant < r.bindings[j].Variant
	})

	for field := range r.specs {
		r.fields = append(r.fields, field)
	}
	sort.Slice(r.fields, func(i, j int) bool { return r.fields[i] < r.fields[j] })
}

// Version reports the schema version the registry was built for.
func (r *Registry) Version() Version { return r.version }

// Fields returns all canonical fields in lexicographic order.
func (r *Registry) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// NumFields reports the size of the canonical field catalog.
func (r *Registry) NumFields() int { return len(r.fields) }

// Spec returns the attribute record for a canonical field.
func (r *Registry) Spec(f Field) (Spec, bool) {
	s, ok := r.specs[f]
	return s, ok
}

// Weight returns the sensitivity weight for a canonical field, or 0 if
// the field is unknown.
func (r *Registry) Weight(f Field) float64 {
	return r.specs[f].Weight
}

// Variants returns the known variant strings for a field.
func (r *Registry) Variants(f Field) []string {
	return append([]string(nil), r.variants[f]...)
}

// Lookup resolves a normalized label to its owning field, if any variant
// matches it exactly.
func (r *Registry) Lookup(normalized string) (Field, bool) {
	f, ok := r.lookup[normalized]
	return f, ok
}

// VariantBindings returns every (variant, field) pair in deterministic
// order for fuzzy scanning.
func (r *Registry) VariantBindings() []VariantBinding {
	return r.bindings
}

// DegreeLevel ranks a degree string on the fixed scale used by the
// highest-degree selection strategy. Unrecognized degrees rank 0.
func (r *Registry) DegreeLevel(degree string) int {
	d := strings.ToLower(degree)
	for _, m := range degreeMarkers {
		if strings.Contains(d, m.marker) {
			return m.level
		}
	}
	return 0
}
