package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(5, 0, 10), ShouldEqual, 5)
		So(Clamp(-3, 0, 10), ShouldEqual, 0)
		So(Clamp(42, 0, 10), ShouldEqual, 10)
		So(Clamp(3.5, 0.0, 2.0), ShouldEqual, 2.0)
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max[int](), ShouldEqual, 0)
	})
}
