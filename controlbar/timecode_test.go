package controlbar

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatSeconds(t *testing.T) {
	Convey("FormatSeconds", t, func() {
		Convey("Durations of an hour or more include the hour field", func() {
			So(FormatSeconds(3725, 3725), ShouldEqual, "1:02:05")
			So(FormatSeconds(0, 3725), ShouldEqual, "0:00:00")
			So(FormatSeconds(3600, 7200), ShouldEqual, "1:00:00")
		})

		Convey("Durations under an hour omit the hour field", func() {
			So(FormatSeconds(45, 45), ShouldEqual, "0:45")
			So(FormatSeconds(65, 300), ShouldEqual, "1:05")
			So(FormatSeconds(599, 599), ShouldEqual, "9:59")
		})

		Convey("Fractional seconds render as whole seconds", func() {
			So(FormatSeconds(12.7, 60), ShouldEqual, "0:12")
		})

		Convey("Non-finite input renders the fixed placeholder", func() {
			So(FormatSeconds(math.NaN(), math.NaN()), ShouldEqual, "0:00")
			So(FormatSeconds(math.Inf(1), math.Inf(1)), ShouldEqual, "0:00")
		})

		Convey("Negative input renders the fixed placeholder", func() {
			So(FormatSeconds(-3, 60), ShouldEqual, "0:00")
		})
	})
}
