package controlbar

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDisclosurePanel(t *testing.T) {
	Convey("Given a closed settings panel", t, func() {
		h := newHarness()

		Convey("Toggling opens it with the expanded attribute in sync", func() {
			h.bar.TogglePanel()

			So(h.bar.PanelOpen(), ShouldBeTrue)
			So(h.presenter.ExpandedVisual, ShouldBeTrue)
			So(h.presenter.PanelVisible, ShouldBeTrue)
			So(h.presenter.PanelAnimated, ShouldBeTrue)
		})

		Convey("Toggling twice returns it to the initial closed visual state", func() {
			h.bar.TogglePanel()
			h.bar.TogglePanel()
			h.scheduler.Fire()

			So(h.bar.PanelOpen(), ShouldBeFalse)
			So(h.presenter.ExpandedVisual, ShouldBeFalse)
			So(h.presenter.PanelVisible, ShouldBeFalse)
		})

		Convey("Escape while closed is a complete no-op", func() {
			consumed := h.bar.HandleEscape()

			So(consumed, ShouldBeFalse)
			So(h.announcer.Messages, ShouldBeEmpty)
			So(h.presenter.FocusCalls, ShouldBeEmpty)
		})

		Convey("An outside pointer while closed is a no-op", func() {
			h.bar.HandleOutsidePointer(false, false)

			So(h.presenter.FocusCalls, ShouldBeEmpty)
			So(h.presenter.VisibilityCalls, ShouldEqual, 0)
		})
	})

	Convey("Given an open settings panel", t, func() {
		h := newHarness()
		h.bar.TogglePanel()

		Convey("Closing defers the hide until the transition elapses", func() {
			h.bar.TogglePanel()

			// Expanded attribute already collapsed, content still revealed:
			// the one permitted transient inconsistency window.
			So(h.presenter.ExpandedVisual, ShouldBeFalse)
			So(h.presenter.PanelVisible, ShouldBeTrue)

			h.scheduler.Fire()
			So(h.presenter.PanelVisible, ShouldBeFalse)
		})

		Convey("Closing always returns focus to the trigger", func() {
			Convey("via Escape", func() {
				So(h.bar.HandleEscape(), ShouldBeTrue)
				So(h.presenter.FocusCalls, ShouldResemble, []Control{ControlSettings})
			})

			Convey("via an outside pointer", func() {
				h.bar.HandleOutsidePointer(false, false)
				So(h.presenter.FocusCalls, ShouldResemble, []Control{ControlSettings})
			})

			Convey("via the trigger itself", func() {
				h.bar.TogglePanel()
				So(h.presenter.FocusCalls, ShouldResemble, []Control{ControlSettings})
			})
		})

		Convey("Closing realigns the roving cursor with the trigger", func() {
			// Rove away from the trigger while the panel stays open, then
			// dismiss: the cursor must land back on the trigger, not report
			// wherever the roving left off.
			h.bar.NotifyFocus(ControlSettings)
			h.bar.HandleNavigation(NavPrev)
			So(h.bar.Focused(), ShouldNotEqual, ControlSettings)

			Convey("via Escape", func() {
				h.bar.HandleEscape()
				So(h.bar.Focused(), ShouldEqual, ControlSettings)
			})

			Convey("via an outside pointer", func() {
				h.bar.HandleOutsidePointer(false, false)
				So(h.bar.Focused(), ShouldEqual, ControlSettings)
			})

			Convey("via the trigger itself", func() {
				h.bar.TogglePanel()
				So(h.bar.Focused(), ShouldEqual, ControlSettings)
			})
		})

		Convey("Duplicate close triggers yield exactly one focus-return side effect", func() {
			h.bar.HandleOutsidePointer(false, false)
			h.bar.HandleEscape()
			h.bar.TogglePanel() // reopens; not a close

			So(h.presenter.FocusCalls, ShouldHaveLength, 1)
		})

		Convey("A pointer inside the panel does not dismiss it", func() {
			h.bar.HandleOutsidePointer(true, false)
			So(h.bar.PanelOpen(), ShouldBeTrue)
		})

		Convey("The trigger's own activation does not reach the outside-pointer path", func() {
			h.bar.HandleOutsidePointer(false, true)
			So(h.bar.PanelOpen(), ShouldBeTrue)
		})

		Convey("Reopening before the deferred hide fires cancels the stale hide", func() {
			h.bar.TogglePanel()
			So(h.scheduler.Pending(), ShouldEqual, 1)

			h.bar.TogglePanel()
			So(h.scheduler.Pending(), ShouldEqual, 0)

			h.scheduler.Fire()
			So(h.presenter.PanelVisible, ShouldBeTrue)
			So(h.bar.PanelOpen(), ShouldBeTrue)
		})
	})

	Convey("Given the environment prefers reduced motion", t, func() {
		h := &harness{
			presenter: &FakePresenter{},
			media:     &FakeMedia{},
			scheduler: &FakeScheduler{},
		}
		bar, err := New(&Options{
			Media:         h.media,
			Presenter:     h.presenter,
			Scheduler:     h.scheduler,
			Controls:      []Control{ControlPlayPause, ControlSettings},
			ReducedMotion: true,
		})
		So(err, ShouldBeNil)

		Convey("Opening skips the entrance transition", func() {
			bar.TogglePanel()

			So(h.presenter.PanelVisible, ShouldBeTrue)
			So(h.presenter.PanelAnimated, ShouldBeFalse)
		})

		Convey("Closing hides immediately with nothing scheduled", func() {
			bar.TogglePanel()
			bar.TogglePanel()

			So(h.presenter.PanelVisible, ShouldBeFalse)
			So(h.scheduler.Pending(), ShouldEqual, 0)
		})
	})
}
