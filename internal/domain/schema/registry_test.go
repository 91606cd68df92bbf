package schema_test

import (
	"testing"

	"github.com/okian/fieldmap/internal/domain/normalize"
	schema "github.com/okian/fieldmap/internal/domain/schema"
	"github.com/okian/fieldmap/internal/domain/selection"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewRegistry(t *testing.T) {
	Convey("Given the built-in field catalog", t, func() {
		registry, err := schema.NewRegistry()
		So(err, ShouldBeNil)

		Convey("Then it exposes exactly 35 canonical fields", func() {
			So(registry.NumFields(), ShouldEqual, 35)
			So(len(registry.Fields()), ShouldEqual, 35)
		})

		Convey("Then the schema version parses and is 1.0.0", func() {
			So(registry.Version().String(), ShouldEqual, "1.0.0")
			So(registry.Version().Major, ShouldEqual, 1)
		})

		Convey("Then every variant is a normalizer fixpoint", func() {
			for _, f := range registry.Fields() {
				for _, v := range registry.Variants(f) {
					So(normalize.Normalize(v), ShouldEqual, v)
				}
			}
		})

		Convey("Then every variant belongs to exactly one field", func() {
			seen := map[string]schema.Field{}
			for _, f := range registry.Fields() {
				for _, v := range registry.Variants(f) {
					owner, dup := seen[v]
					So(dup, ShouldBeFalse)
					So(owner, ShouldNotEqual, f) // zero value on miss
					seen[v] = f
				}
			}
			So(len(seen), ShouldBeGreaterThan, 100)
		})

		Convey("Then bindings are sorted by field then variant", func() {
			bindings := registry.VariantBindings()
			for i := 1; i < len(bindings); i++ {
				prev, curr := bindings[i-1], bindings[i]
				if prev.Field == curr.Field {
					So(prev.Variant, ShouldBeLessThan, curr.Variant)
				} else {
					So(string(prev.Field), ShouldBeLessThan, string(curr.Field))
				}
			}
		})

		Convey("Then exact lookup resolves known variants", func() {
			f, ok := registry.Lookup("email address")
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, schema.FieldEmail)

			_, ok = registry.Lookup("no such variant")
			So(ok, ShouldBeFalse)
		})

		Convey("Then every field has a spec with a valid weight and path", func() {
			for _, f := range registry.Fields() {
				spec, ok := registry.Spec(f)
				So(ok, ShouldBeTrue)
				So(spec.Weight, ShouldBeGreaterThan, 0)
				So(spec.Weight, ShouldBeLessThanOrEqualTo, 1)
				So(spec.Path, ShouldNotBeEmpty)
			}
		})

		Convey("Then education degree defaults to highest_degree selection", func() {
			spec, _ := registry.Spec(schema.FieldEducationDegree)
			So(spec.DefaultStrategy, ShouldEqual, selection.HighestDegree)
			So(spec.Section, ShouldEqual, schema.SectionEducation)
		})

		Convey("Then the degree ranking follows the fixed table", func() {
			So(registry.DegreeLevel("PhD in Physics"), ShouldEqual, 4)
			So(registry.DegreeLevel("Master of Science"), ShouldEqual, 3)
			So(registry.DegreeLevel("MBA"), ShouldEqual, 3)
			So(registry.DegreeLevel("Bachelor of Arts"), ShouldEqual, 2)
			So(registry.DegreeLevel("Associate Degree"), ShouldEqual, 1)
			So(registry.DegreeLevel("Certificate"), ShouldEqual, 0)
		})
	})

	Convey("Given sensitivity overrides", t, func() {
		Convey("When the override is in range it replaces the weight", func() {
			registry, err := schema.NewRegistry(schema.WithSensitivityOverrides(map[string]float64{
				"email": 0.8,
			}))
			So(err, ShouldBeNil)
			So(registry.Weight(schema.FieldEmail), ShouldEqual, 0.8)
		})

		Convey("When the override is out of range construction fails", func() {
			_, err := schema.NewRegistry(schema.WithSensitivityOverrides(map[string]float64{
				"email": 1.5,
			}))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "weight")
		})
	})

	Convey("Given extra variants", t, func() {
		Convey("When they are well formed they are registered", func() {
			registry, err := schema.NewRegistry(schema.WithExtraVariants(map[string][]string{
				"email": {"electronic mail"},
			}))
			So(err, ShouldBeNil)
			f, ok := registry.Lookup("electronic mail")
			So(ok, ShouldBeTrue)
			So(f, ShouldEqual, schema.FieldEmail)
		})

		Convey("When they collide with an existing variant construction fails", func() {
			_, err := schema.NewRegistry(schema.WithExtraVariants(map[string][]string{
				"phone": {"email address"},
			}))
			So(err, ShouldNotBeNil)
		})

		Convey("When they are not normalized construction fails", func() {
			_, err := schema.NewRegistry(schema.WithExtraVariants(map[string][]string{
				"email": {"Electronic Mail"},
			}))
			So(err, ShouldNotBeNil)
		})

		Convey("When they target an unknown field construction fails", func() {
			_, err := schema.NewRegistry(schema.WithExtraVariants(map[string][]string{
				"no_such_field": {"whatever"},
			}))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseVersion(t *testing.T) {
	Convey("Given version strings", t, func() {
		Convey("Well-formed triples parse", func() {
			v, err := schema.ParseVersion("2.14.3")
			So(err, ShouldBeNil)
			So(v.Major, ShouldEqual, 2)
			So(v.Minor, ShouldEqual, 14)
			So(v.Patch, ShouldEqual, 3)
			So(v.String(), ShouldEqual, "2.14.3")
		})

		Convey("Malformed strings fail", func() {
			for _, s := range []string{"", "1.0", "1.0.0.0", "a.b.c", "1.-1.0"} {
				_, err := schema.ParseVersion(s)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("Compatibility is same-MAJOR", func() {
			a, _ := schema.ParseVersion("1.0.0")
			b, _ := schema.ParseVersion("1.9.9")
			c, _ := schema.ParseVersion("2.0.0")
			So(a.CompatibleWith(b), ShouldBeTrue)
			So(a.CompatibleWith(c), ShouldBeFalse)
		})
	})
}
