package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		Convey("Accepts http and https URLs", func() {
			for _, link := range []string{
				"http://example.com/video.mp4",
				"https://example.com/stream.m3u8",
			} {
				got, err := sanitizeMediaTarget(link)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, link)
			}
		})

		Convey("Accepts local file paths and cleans them", func() {
			got, err := sanitizeMediaTarget("./media/../media/clip.mkv")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "media/clip.mkv")
		})

		Convey("Rejects empty targets", func() {
			_, err := sanitizeMediaTarget("   ")
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects targets that look like flags", func() {
			_, err := sanitizeMediaTarget("--vo=null")
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects control characters", func() {
			_, err := sanitizeMediaTarget("clip\n.mkv")
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects unsupported URL schemes", func() {
			_, err := sanitizeMediaTarget("ftp://example.com/clip.mkv")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSanitizeTitle(t *testing.T) {
	Convey("sanitizeTitle", t, func() {
		Convey("Collapses newlines and tabs into spaces", func() {
			So(sanitizeTitle("a\nb\tc"), ShouldEqual, "a b c")
		})

		Convey("Strips null bytes and surrounding whitespace", func() {
			So(sanitizeTitle("  movie\x00 night  "), ShouldEqual, "movie night")
		})
	})
}
