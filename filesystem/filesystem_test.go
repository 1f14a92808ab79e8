package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackendSelection(t *testing.T) {
	Convey("The filesystem backend", t, func() {
		Convey("Serves the operating system filesystem by default", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Can be traded for the in-memory backend", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")

			Convey("And writes land only in memory", func() {
				So(API().WriteFile("/scratch.txt", []byte("x"), 0o644), ShouldBeNil)

				SetOsFs()
				exists, _ := API().Exists("/scratch.txt")
				So(exists, ShouldBeFalse)
			})
		})
	})
}
