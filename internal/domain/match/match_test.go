package match_test

import (
	"testing"

	"github.com/okian/fieldmap/internal/domain/match"
	"github.com/okian/fieldmap/internal/domain/model"
	"github.com/okian/fieldmap/internal/domain/schema"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLevenshtein(t *testing.T) {
	Convey("Given pairs of strings", t, func() {
		Convey("Then edit distance is computed correctly", func() {
			So(match.Levenshtein("", ""), ShouldEqual, 0)
			So(match.Levenshtein("abc", ""), ShouldEqual, 3)
			So(match.Levenshtein("", "abc"), ShouldEqual, 3)
			So(match.Levenshtein("kitten", "sitting"), ShouldEqual, 3)
			So(match.Levenshtein("email", "email"), ShouldEqual, 0)
			So(match.Levenshtein("e mail addres", "e mail address"), ShouldEqual, 1)
		})

		Convey("Then distance is symmetric", func() {
			So(match.Levenshtein("phone number", "phone"), ShouldEqual, match.Levenshtein("phone", "phone number"))
		})
	})
}

func TestSimilarity(t *testing.T) {
	Convey("Given pairs of strings", t, func() {
		Convey("Identical strings score 1", func() {
			So(match.Similarity("email", "email"), ShouldEqual, 1.0)
			So(match.Similarity("", ""), ShouldEqual, 1.0)
		})

		Convey("Disjoint strings score near 0", func() {
			So(match.Similarity("abc", "xyz"), ShouldEqual, 0.0)
		})

		Convey("One edit in fourteen runes scores 13/14", func() {
			So(match.Similarity("e mail addres", "e mail address"), ShouldAlmostEqual, 13.0/14.0, 1e-9)
		})
	})
}

func TestMatcher(t *testing.T) {
	Convey("Given a matcher over the built-in registry", t, func() {
		registry, err := schema.NewRegistry()
		So(err, ShouldBeNil)
		m := match.NewMatcher(registry)

		Convey("When the normalized name is a known variant", func() {
			res := m.Match("email address", 0.7)

			Convey("Then the match is exact with similarity 1.0", func() {
				So(res.Kind, ShouldEqual, model.MatchExact)
				So(res.Field, ShouldEqual, schema.FieldEmail)
				So(res.Similarity, ShouldEqual, 1.0)
			})
		})

		Convey("When the name is one edit away from a variant", func() {
			res := m.Match("e mail addres", 0.7)

			Convey("Then the match is fuzzy against the closest variant", func() {
				So(res.Kind, ShouldEqual, model.MatchFuzzy)
				So(res.Field, ShouldEqual, schema.FieldEmail)
				So(res.Variant, ShouldEqual, "e mail address")
				So(res.Similarity, ShouldAlmostEqual, 13.0/14.0, 1e-9)
			})
		})

		Convey("When the name contains a variant verbatim", func() {
			res := m.Match("candidate linkedin profile link", 0.7)

			Convey("Then containment boosts the similarity to at least 0.85", func() {
				So(res.Kind, ShouldEqual, model.MatchFuzzy)
				So(res.Field, ShouldEqual, schema.FieldLinkedInURL)
				So(res.Similarity, ShouldBeGreaterThanOrEqualTo, 0.85)
			})
		})

		Convey("When nothing is close enough", func() {
			res := m.Match("flux capacitor calibration", 0.7)

			Convey("Then the result kind is none", func() {
				So(res.Kind, ShouldEqual, model.MatchNone)
			})
		})

		Convey("When similarity lands exactly on the threshold it is accepted", func() {
			// "citx" vs variant "city": distance 1 over 4 runes = 0.75.
			res := m.Match("citx", 0.75)
			So(res.Kind, ShouldEqual, model.MatchFuzzy)
			So(res.Field, ShouldEqual, schema.FieldCity)

			Convey("And strictly below the threshold it is rejected", func() {
				res := m.Match("citx", 0.7500001)
				So(res.Kind, ShouldEqual, model.MatchNone)
			})
		})

		Convey("When scanning for explanation output", func() {
			res := m.Scan("e mail addres", 0.7)

			Convey("Then every variant appears as a candidate", func() {
				So(len(res.Candidates), ShouldEqual, len(registry.VariantBindings()))
				So(res.Kind, ShouldEqual, model.MatchFuzzy)
			})
		})

		Convey("Then matching is deterministic", func() {
			first := m.Match("e mail addres", 0.7)
			for i := 0; i < 5; i++ {
				again := m.Match("e mail addres", 0.7)
				So(again, ShouldResemble, first)
			}
		})
	})
}

func TestMatcherTieBreak(t *testing.T) {
	Convey("Given variants on two fields equidistant from a query", t, func() {
		// "locality x" is one edit from both extras, so each scores
		// exactly 9/10 and nothing built in comes close.
		registry, err := schema.NewRegistry(schema.WithExtraVariants(map[string][]string{
			string(schema.FieldState): {"locality b"},
			string(schema.FieldCity):  {"locality a"},
		}))
		So(err, ShouldBeNil)
		m := match.NewMatcher(registry)

		Convey("Then the first field in binding order wins", func() {
			res := m.Match("locality x", 0.7)
			So(res.Kind, ShouldEqual, model.MatchFuzzy)
			So(res.Field, ShouldEqual, schema.FieldCity)
			So(res.Variant, ShouldEqual, "locality a")
			So(res.Similarity, ShouldAlmostEqual, 9.0/10.0, 1e-9)
		})

		Convey("Then the winner is stable across runs", func() {
			first := m.Match("locality x", 0.7)
			for i := 0; i < 5; i++ {
				So(m.Match("locality x", 0.7), ShouldResemble, first)
			}
		})
	})

	Convey("Given two tied variants on the same field", t, func() {
		registry, err := schema.NewRegistry(schema.WithExtraVariants(map[string][]string{
			string(schema.FieldState): {"region y", "region x"},
		}))
		So(err, ShouldBeNil)
		m := match.NewMatcher(registry)

		Convey("Then the lexicographically first variant is reported", func() {
			res := m.Match("region z", 0.7)
			So(res.Kind, ShouldEqual, model.MatchFuzzy)
			So(res.Field, ShouldEqual, schema.FieldState)
			So(res.Variant, ShouldEqual, "region x")
			So(res.Similarity, ShouldAlmostEqual, 7.0/8.0, 1e-9)
		})
	})
}
