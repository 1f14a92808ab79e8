package controlbar

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Controller construction", t, func() {
		presenter := &FakePresenter{}
		media := &FakeMedia{}
		controls := []Control{ControlPlayPause}

		Convey("Succeeds with the required collaborators", func() {
			bar, err := New(&Options{Media: media, Presenter: presenter, Controls: controls})

			So(err, ShouldBeNil)
			So(bar, ShouldNotBeNil)
		})

		Convey("A missing media engine is fatal to initialization", func() {
			bar, err := New(&Options{Presenter: presenter, Controls: controls})

			So(err, ShouldEqual, ErrMissingEngine)
			So(bar, ShouldBeNil)
		})

		Convey("A missing presenter is fatal to initialization", func() {
			bar, err := New(&Options{Media: media, Controls: controls})

			So(err, ShouldEqual, ErrMissingPresenter)
			So(bar, ShouldBeNil)
		})

		Convey("An empty control set is fatal to initialization", func() {
			bar, err := New(&Options{Media: media, Presenter: presenter})

			So(err, ShouldEqual, ErrNoControls)
			So(bar, ShouldBeNil)
		})

		Convey("Placeholder entries are filtered from the focus group", func() {
			bar, err := New(&Options{
				Media:     media,
				Presenter: presenter,
				Controls:  []Control{ControlNone, ControlPlayPause, ControlNone},
			})

			So(err, ShouldBeNil)
			So(bar.Controls(), ShouldResemble, []Control{ControlPlayPause})
		})
	})
}

func TestMuteAndFullscreen(t *testing.T) {
	Convey("Given a control bar", t, func() {
		h := newHarness()

		Convey("ToggleMute requests the opposite state from the engine", func() {
			h.bar.ToggleMute()
			So(h.media.MutedSet, ShouldResemble, []bool{true})

			Convey("The visual waits for the native property event", func() {
				So(h.bar.Muted(), ShouldBeFalse)
				So(h.presenter.MutedVisual, ShouldBeFalse)

				h.bar.OnNativeMute(true)
				So(h.bar.Muted(), ShouldBeTrue)
				So(h.presenter.MutedVisual, ShouldBeTrue)

				Convey("And a second toggle requests unmute", func() {
					h.bar.ToggleMute()
					So(h.media.MutedSet, ShouldResemble, []bool{true, false})
				})
			})
		})

		Convey("ToggleFullscreen requests entry, then exit once confirmed", func() {
			h.bar.ToggleFullscreen()
			So(h.media.FullscreenRequests, ShouldEqual, 1)
			So(h.bar.Fullscreen(), ShouldBeFalse)

			h.bar.OnNativeFullscreen(true)
			So(h.bar.Fullscreen(), ShouldBeTrue)
			So(h.presenter.FullscreenVisual, ShouldBeTrue)

			h.bar.ToggleFullscreen()
			So(h.media.FullscreenExits, ShouldEqual, 1)
		})
	})
}

func TestTeardown(t *testing.T) {
	Convey("Given a control bar with a deferred hide in flight", t, func() {
		h := newHarness()
		h.bar.TogglePanel()
		h.bar.TogglePanel()
		So(h.scheduler.Pending(), ShouldEqual, 1)

		Convey("Teardown cancels pending timers", func() {
			h.bar.Teardown()
			So(h.scheduler.Pending(), ShouldEqual, 0)
		})

		Convey("Event delivery after teardown is a no-op", func() {
			h.bar.Teardown()

			h.bar.OnNativePlay()
			h.bar.OnNativeTimeUpdate(10)
			h.bar.RequestToggle()
			h.bar.TogglePanel()

			So(h.bar.Playing(), ShouldBeFalse)
			So(h.media.PlayCalls, ShouldEqual, 0)
			So(h.bar.PanelOpen(), ShouldBeFalse)
			So(h.bar.HandleNavigation(NavNext), ShouldBeFalse)
		})

		Convey("Teardown itself is idempotent", func() {
			h.bar.Teardown()
			h.bar.Teardown()
			So(h.scheduler.Pending(), ShouldEqual, 0)
		})
	})
}
