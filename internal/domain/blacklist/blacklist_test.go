package blacklist_test

import (
	"testing"

	"github.com/okian/fieldmap/internal/domain/blacklist"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCheck(t *testing.T) {
	Convey("Given normalized field labels", t, func() {
		Convey("Internal bookkeeping labels are screened", func() {
			for _, label := range []string{
				"internal use only",
				"for internal use only",
				"reserved field",
				"do not fill",
				"hr use only",
				"recruiter use only",
			} {
				ok, reason := blacklist.Check(label)
				So(ok, ShouldBeTrue)
				So(reason, ShouldNotBeEmpty)
			}
		})

		Convey("Hidden, placeholder, and disabled labels are screened", func() {
			for _, label := range []string{
				"hidden field",
				"system field",
				"auto generated id",
				"placeholder",
				"example field",
				"disabled input",
				"deprecated address",
			} {
				ok, _ := blacklist.Check(label)
				So(ok, ShouldBeTrue)
			}
		})

		Convey("Bare comment boxes are screened but composites are not", func() {
			ok, _ := blacklist.Check("comment")
			So(ok, ShouldBeTrue)
			ok, _ = blacklist.Check("notes")
			So(ok, ShouldBeTrue)

			// "additional notes" is not a bare comment box.
			ok, _ = blacklist.Check("additional notes")
			So(ok, ShouldBeFalse)
		})

		Convey("Word boundaries keep ordinary labels through", func() {
			for _, label := range []string{
				"email address",
				"current employer",
				"demonstrated skills",
				"state",
			} {
				ok, reason := blacklist.Check(label)
				So(ok, ShouldBeFalse)
				So(reason, ShouldBeEmpty)
			}
		})

		Convey("The reported reason is the matching expression", func() {
			ok, reason := blacklist.Check("hidden field")
			So(ok, ShouldBeTrue)
			So(reason, ShouldEqual, `\bhidden\b`)
		})
	})
}

func TestPatterns(t *testing.T) {
	Convey("Given the screening pattern list", t, func() {
		Convey("Then it is non-empty and stable across calls", func() {
			first := blacklist.Patterns()
			So(len(first), ShouldBeGreaterThan, 20)
			So(blacklist.Patterns(), ShouldResemble, first)
		})
	})
}
