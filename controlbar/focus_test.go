package controlbar

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRovingFocus(t *testing.T) {
	Convey("Given a group of three controls", t, func() {
		h := newHarness(ControlPlayPause, ControlScrubber, ControlSettings)

		Convey("Focus starts on the first control", func() {
			So(h.bar.Focused(), ShouldEqual, ControlPlayPause)
		})

		Convey("Next moves focus forward without wrapping", func() {
			So(h.bar.HandleNavigation(NavNext), ShouldBeTrue)
			So(h.bar.Focused(), ShouldEqual, ControlScrubber)

			So(h.bar.HandleNavigation(NavNext), ShouldBeTrue)
			So(h.bar.Focused(), ShouldEqual, ControlSettings)

			Convey("Next at the last control is a no-op, not a wraparound", func() {
				So(h.bar.HandleNavigation(NavNext), ShouldBeTrue)
				So(h.bar.Focused(), ShouldEqual, ControlSettings)
			})

			Convey("Previous from the last control moves back", func() {
				So(h.bar.HandleNavigation(NavPrev), ShouldBeTrue)
				So(h.bar.Focused(), ShouldEqual, ControlScrubber)
			})

			Convey("First jumps to the first control", func() {
				So(h.bar.HandleNavigation(NavFirst), ShouldBeTrue)
				So(h.bar.Focused(), ShouldEqual, ControlPlayPause)
			})
		})

		Convey("Previous at the first control is a no-op", func() {
			So(h.bar.HandleNavigation(NavPrev), ShouldBeTrue)
			So(h.bar.Focused(), ShouldEqual, ControlPlayPause)
		})

		Convey("Last jumps to the last control", func() {
			So(h.bar.HandleNavigation(NavLast), ShouldBeTrue)
			So(h.bar.Focused(), ShouldEqual, ControlSettings)
		})

		Convey("A no-op traversal does not emit a focus call", func() {
			h.bar.HandleNavigation(NavPrev)
			So(h.presenter.FocusCalls, ShouldBeEmpty)
		})

		Convey("Keys are not consumed while focus is outside the group", func() {
			h.bar.focused = ControlNone

			So(h.bar.HandleNavigation(NavNext), ShouldBeFalse)
			So(h.presenter.FocusCalls, ShouldBeEmpty)
		})

		Convey("NotifyFocus moves the roving cursor for in-group controls only", func() {
			h.bar.NotifyFocus(ControlSettings)
			So(h.bar.Focused(), ShouldEqual, ControlSettings)

			h.bar.NotifyFocus(ControlMute) // absent from this group
			So(h.bar.Focused(), ShouldEqual, ControlSettings)
		})
	})

	Convey("Given controls absent from the hosting surface", t, func() {
		h := newHarness(ControlPlayPause, ControlSettings)

		Convey("The sequence simply excludes them", func() {
			So(h.bar.Controls(), ShouldResemble, []Control{ControlPlayPause, ControlSettings})

			So(h.bar.HandleNavigation(NavNext), ShouldBeTrue)
			So(h.bar.Focused(), ShouldEqual, ControlSettings)
		})
	})

	Convey("Given right-to-left directionality", t, func() {
		presenter := &FakePresenter{}
		bar, err := New(&Options{
			Media:     &FakeMedia{},
			Presenter: presenter,
			Controls:  []Control{ControlPlayPause, ControlScrubber, ControlSettings},
			Direction: DirectionRTL,
		})
		So(err, ShouldBeNil)

		Convey("The next/previous arrow semantics are swapped", func() {
			// Focus starts at the first control; in RTL the "next" arrow
			// walks toward the start, so it is a boundary no-op here.
			So(bar.HandleNavigation(NavNext), ShouldBeTrue)
			So(bar.Focused(), ShouldEqual, ControlPlayPause)

			So(bar.HandleNavigation(NavPrev), ShouldBeTrue)
			So(bar.Focused(), ShouldEqual, ControlScrubber)

			Convey("First and Last are unaffected by direction", func() {
				So(bar.HandleNavigation(NavLast), ShouldBeTrue)
				So(bar.Focused(), ShouldEqual, ControlSettings)

				So(bar.HandleNavigation(NavFirst), ShouldBeTrue)
				So(bar.Focused(), ShouldEqual, ControlPlayPause)
			})
		})
	})
}
