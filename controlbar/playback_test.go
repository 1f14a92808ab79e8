package controlbar

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPlaybackSync(t *testing.T) {
	Convey("Given a paused control bar", t, func() {
		h := newHarness()

		Convey("A toggle issues a play request without flipping state eagerly", func() {
			h.bar.RequestToggle()

			So(h.media.PlayCalls, ShouldEqual, 1)
			So(h.bar.Playing(), ShouldBeFalse)
			So(h.presenter.PlayingVisual, ShouldBeFalse)

			Convey("The native play event confirms the state", func() {
				h.bar.OnNativePlay()

				So(h.bar.Playing(), ShouldBeTrue)
				So(h.presenter.PlayingVisual, ShouldBeTrue)
			})
		})

		Convey("A rejected play request never changes displayed state to playing", func() {
			h.media.RejectPlay = true
			err := h.bar.RequestToggle()

			So(errors.Is(err, ErrPlaybackRejected), ShouldBeTrue)
			So(h.bar.Playing(), ShouldBeFalse)
			So(h.presenter.PlayingVisual, ShouldBeFalse)

			Convey("And a user-facing failure notification is emitted", func() {
				So(h.announcer.Messages, ShouldHaveLength, 1)
				So(h.announcer.Messages[0], ShouldContainSubstring, "blocked")
			})
		})

		Convey("An accepted play request reports no error", func() {
			So(h.bar.RequestToggle(), ShouldBeNil)
		})

		Convey("Native events are the sole authority regardless of prior clicks", func() {
			h.bar.RequestToggle()
			h.bar.OnNativePlay()
			h.bar.OnNativePause()
			h.bar.OnNativePlay()
			h.bar.OnNativeEnded()

			So(h.bar.Playing(), ShouldBeFalse)
			So(h.presenter.PlayingVisual, ShouldBeFalse)
		})

		Convey("Playback triggered outside the bar's own control is still reflected", func() {
			// e.g. native OS media keys: no RequestToggle preceded this.
			h.bar.OnNativePlay()

			So(h.bar.Playing(), ShouldBeTrue)
		})
	})

	Convey("Given a playing control bar", t, func() {
		h := newHarness()
		h.bar.OnNativePlay()

		Convey("A toggle issues a synchronous pause", func() {
			h.bar.RequestToggle()

			So(h.media.PauseCalls, ShouldEqual, 1)
			So(h.media.PlayCalls, ShouldEqual, 0)

			Convey("State still waits for the native pause event", func() {
				So(h.bar.Playing(), ShouldBeTrue)

				h.bar.OnNativePause()
				So(h.bar.Playing(), ShouldBeFalse)
			})
		})

		Convey("A late-settling play request cannot revert a subsequent pause", func() {
			// Pause wins: the native pause arrived after the play request,
			// so whatever the play promise does later must not matter.
			h.bar.OnNativePause()
			So(h.bar.Playing(), ShouldBeFalse)

			h.bar.RequestToggle()
			// The request was issued but no native play event ever confirms it.
			So(h.bar.Playing(), ShouldBeFalse)
		})

		Convey("The ended event is treated as a pause", func() {
			h.bar.OnNativeEnded()

			So(h.bar.Playing(), ShouldBeFalse)
			So(h.presenter.PlayingVisual, ShouldBeFalse)
		})
	})
}
