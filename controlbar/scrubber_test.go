package controlbar

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestScrubber(t *testing.T) {
	Convey("Given loaded metadata with a 100s duration", t, func() {
		h := newHarness()
		h.bar.OnMetadataLoaded(100)

		Convey("Native time updates move the slider and time display", func() {
			h.bar.OnNativeTimeUpdate(42)

			So(h.presenter.SliderValue, ShouldEqual, 42)
			So(h.presenter.SliderMax, ShouldEqual, 100)
			So(h.presenter.CurrentText, ShouldEqual, "0:42")
			So(h.presenter.TotalText, ShouldEqual, "1:40")
		})

		Convey("While dragging, native time updates do not move the slider", func() {
			h.bar.OnDragInput(30)

			for _, tick := range []float64{31, 32, 33, 34, 35} {
				h.bar.OnNativeTimeUpdate(tick)
			}

			So(h.presenter.SliderValue, ShouldEqual, 30)
			So(h.bar.Seeking(), ShouldBeTrue)

			Convey("Position updates resume after the commit", func() {
				h.bar.OnDragCommit()
				h.bar.OnNativeTimeUpdate(36)

				So(h.bar.Seeking(), ShouldBeFalse)
				So(h.presenter.SliderValue, ShouldEqual, 36)
			})
		})

		Convey("A drag sequence issues exactly one seek to the final dragged value", func() {
			h.bar.OnDragInput(10)
			h.bar.OnDragInput(20)
			h.bar.OnDragInput(30)
			h.bar.OnDragCommit()

			So(h.media.Seeks, ShouldResemble, []float64{10, 20, 30})

			var toFinal int
			for _, s := range h.media.Seeks {
				if s == 30 {
					toFinal++
				}
			}
			So(toFinal, ShouldEqual, 1)

			Convey("And the committed time is announced", func() {
				So(h.announcer.Messages, ShouldHaveLength, 1)
				So(h.announcer.Messages[0], ShouldContainSubstring, "0:30")
			})
		})

		Convey("Drag input is clamped to the valid seek range", func() {
			h.bar.OnDragInput(250)
			So(h.media.Seeks, ShouldResemble, []float64{100})

			h.bar.OnDragInput(-5)
			So(h.media.Seeks, ShouldResemble, []float64{100, 0})
		})

		Convey("Committing with no drag in progress is a no-op", func() {
			h.bar.OnDragCommit()

			So(h.announcer.Messages, ShouldBeEmpty)
			So(h.media.Seeks, ShouldBeEmpty)
		})

		Convey("Metadata reloads are applied idempotently", func() {
			h.bar.OnMetadataLoaded(100)
			h.bar.OnMetadataLoaded(100)

			So(h.presenter.SliderMax, ShouldEqual, 100)

			Convey("A source change updates the seek range", func() {
				h.bar.OnMetadataLoaded(200)
				So(h.presenter.SliderMax, ShouldEqual, 200)
			})
		})
	})

	Convey("Given metadata has not loaded yet", t, func() {
		h := newHarness()

		Convey("A non-finite duration renders the zero placeholder", func() {
			h.bar.OnMetadataLoaded(math.NaN())

			So(h.presenter.TotalText, ShouldEqual, "0:00")
			So(h.presenter.CurrentText, ShouldEqual, "0:00")
		})

		Convey("Drag input over an empty seek range is ignored", func() {
			h.bar.OnDragInput(10)

			So(h.media.Seeks, ShouldBeEmpty)
			So(h.bar.Seeking(), ShouldBeFalse)
		})
	})
}
