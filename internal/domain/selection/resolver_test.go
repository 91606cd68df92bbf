package selection_test

import (
	"testing"

	"github.com/okian/fieldmap/internal/domain/model"
	"github.com/okian/fieldmap/internal/domain/schema"
	"github.com/okian/fieldmap/internal/domain/selection"
	. "github.com/smartystreets/goconvey/convey"
)

func intPtr(i int) *int { return &i }

func TestStrategy(t *testing.T) {
	Convey("Given the strategy identifiers", t, func() {
		Convey("Then the known strategies validate", func() {
			So(selection.MostRecent.Valid(), ShouldBeTrue)
			So(selection.Longest.Valid(), ShouldBeTrue)
			So(selection.HighestDegree.Valid(), ShouldBeTrue)
		})

		Convey("Then unknown strategies do not", func() {
			So(selection.Strategy("newest").Valid(), ShouldBeFalse)
			So(selection.Strategy("").Valid(), ShouldBeFalse)
		})
	})
}

func TestParseYear(t *testing.T) {
	Convey("Given raw year strings", t, func() {
		Convey("Plain years within range parse", func() {
			y, ok := selection.ParseYear("2020")
			So(ok, ShouldBeTrue)
			So(y, ShouldEqual, 2020)
		})

		Convey("Surrounding whitespace is tolerated", func() {
			y, ok := selection.ParseYear(" 1999 ")
			So(ok, ShouldBeTrue)
			So(y, ShouldEqual, 1999)
		})

		Convey("Anything but a plain in-range integer does not parse", func() {
			_, ok := selection.ParseYear("June 2018")
			So(ok, ShouldBeFalse)
			_, ok = selection.ParseYear("1833")
			So(ok, ShouldBeFalse)
			_, ok = selection.ParseYear("")
			So(ok, ShouldBeFalse)
			_, ok = selection.ParseYear("present")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestEducationSelection(t *testing.T) {
	Convey("Given a resolver with a pinned clock and three education entries", t, func() {
		registry, err := schema.NewRegistry()
		So(err, ShouldBeNil)
		resolver := selection.NewResolver(registry, selection.WithClock(func() int { return 2024 }))

		entries := []model.EducationEntry{
			{Degree: "B.S. Computer Science", StartYear: "2012", EndYear: "2020"},
			{Degree: "Ph.D. Physics", StartYear: "2017", EndYear: "2022"},
			{Degree: "M.S. Mathematics", StartYear: "2022", Current: true},
		}

		Convey("When selecting by most_recent", func() {
			idx, entry, err := resolver.Education(entries, selection.MostRecent, nil)

			Convey("Then the ongoing entry wins", func() {
				So(err, ShouldBeNil)
				So(idx, ShouldEqual, 2)
				So(entry.Degree, ShouldEqual, "M.S. Mathematics")
			})
		})

		Convey("When selecting by highest_degree", func() {
			idx, entry, err := resolver.Education(entries, selection.HighestDegree, nil)

			Convey("Then the doctorate wins over the ongoing masters", func() {
				So(err, ShouldBeNil)
				So(idx, ShouldEqual, 1)
				So(entry.Degree, ShouldEqual, "Ph.D. Physics")
			})
		})

		Convey("When selecting by longest", func() {
			idx, _, err := resolver.Education(entries, selection.Longest, nil)

			Convey("Then the eight-year bachelors wins", func() {
				So(err, ShouldBeNil)
				So(idx, ShouldEqual, 0)
			})
		})

		Convey("When an explicit index is given it overrides the strategy", func() {
			idx, entry, err := resolver.Education(entries, selection.HighestDegree, intPtr(0))
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, 0)
			So(entry.Degree, ShouldEqual, "B.S. Computer Science")
		})

		Convey("When the explicit index is out of range", func() {
			_, _, err := resolver.Education(entries, selection.MostRecent, intPtr(3))
			So(err, ShouldWrap, selection.ErrIndexOutOfRange)

			_, _, err = resolver.Education(entries, selection.MostRecent, intPtr(-1))
			So(err, ShouldWrap, selection.ErrIndexOutOfRange)
		})

		Convey("When the section is empty", func() {
			idx, entry, err := resolver.Education(nil, selection.MostRecent, nil)
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, -1)
			So(entry, ShouldBeNil)

			Convey("But an explicit index still errors", func() {
				_, _, err := resolver.Education(nil, selection.MostRecent, intPtr(0))
				So(err, ShouldWrap, selection.ErrIndexOutOfRange)
			})
		})

		Convey("When entries tie, the earlier one wins", func() {
			tied := []model.EducationEntry{
				{Degree: "B.A. History", EndYear: "2020"},
				{Degree: "B.S. Biology", EndYear: "2020"},
			}
			idx, _, err := resolver.Education(tied, selection.MostRecent, nil)
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, 0)
		})
	})
}

func TestExperienceSelection(t *testing.T) {
	Convey("Given a resolver and dated experience entries", t, func() {
		resolver := selection.NewResolver(nil, selection.WithClock(func() int { return 2024 }))

		entries := []model.ExperienceEntry{
			{Title: "Engineer", StartYear: "2015", EndYear: "2019"},
			{Title: "Senior Engineer", StartYear: "2019", Current: true},
			{Title: "Intern", StartYear: "2014", EndYear: "2015"},
		}

		Convey("most_recent prefers the current position", func() {
			idx, entry, err := resolver.Experience(entries, selection.MostRecent, nil)
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, 1)
			So(entry.Title, ShouldEqual, "Senior Engineer")
		})

		Convey("longest measures open entries up to the pinned year", func() {
			// Entry 1 spans 2019..2024, beating the four-year entry 0.
			idx, _, err := resolver.Experience(entries, selection.Longest, nil)
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, 1)
		})

		Convey("highest_degree falls back to most_recent", func() {
			idx, _, err := resolver.Experience(entries, selection.HighestDegree, nil)
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, 1)
		})

		Convey("an entry without a parseable start loses longest", func() {
			undated := []model.ExperienceEntry{
				{Title: "Consultant"},
				{Title: "Engineer", StartYear: "2020", EndYear: "2021"},
			}
			idx, _, err := resolver.Experience(undated, selection.Longest, nil)
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, 1)
		})
	})
}

func TestProjectSelection(t *testing.T) {
	Convey("Given project entries without dates", t, func() {
		resolver := selection.NewResolver(nil)

		entries := []model.ProjectEntry{
			{Name: "one", Description: "short"},
			{Name: "two", Description: "a much longer description of the work"},
		}

		Convey("longest picks the longest description", func() {
			idx, entry, err := resolver.Projects(entries, selection.Longest, nil)
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, 1)
			So(entry.Name, ShouldEqual, "two")
		})

		Convey("other strategies pick the first entry", func() {
			idx, _, err := resolver.Projects(entries, selection.MostRecent, nil)
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, 0)

			idx, _, err = resolver.Projects(entries, selection.HighestDegree, nil)
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, 0)
		})

		Convey("explicit index is honored and bounds-checked", func() {
			idx, _, err := resolver.Projects(entries, selection.MostRecent, intPtr(1))
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, 1)

			_, _, err = resolver.Projects(entries, selection.MostRecent, intPtr(2))
			So(err, ShouldWrap, selection.ErrIndexOutOfRange)
		})

		Convey("an empty section yields no selection", func() {
			idx, entry, err := resolver.Projects(nil, selection.Longest, nil)
			So(err, ShouldBeNil)
			So(idx, ShouldEqual, -1)
			So(entry, ShouldBeNil)
		})
	})
}
