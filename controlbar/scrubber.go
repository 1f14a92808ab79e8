package controlbar

import (
	"fmt"

	"github.com/mediabar-cli/mediabar/util"
	"github.com/samber/mo"
)

// scrubber decouples "user is dragging the timeline" from "media has a new
// position".
//
// While a drag is in progress the seeking flag suppresses native timeupdate
// ticks so they cannot snap the handle back under the user's cursor. Each
// drag step seeks the engine optimistically for low-latency feedback; the
// commit simply clears the flag and announces the final position, so exactly
// one seek lands on the final dragged value.
type scrubber struct {
	media     Media
	presenter Presenter
	announce  func(message string)

	// duration is absent until metadata with a finite duration loads.
	duration mo.Option[float64]
	position float64
	seeking  bool
	pending  float64
}

func newScrubber(media Media, presenter Presenter, announce func(string)) *scrubber {
	return &scrubber{
		media:     media,
		presenter: presenter,
		announce:  announce,
	}
}

// onMetadataLoaded sets the valid seek range. Reapplied idempotently when the
// source changes or metadata reloads; a non-finite duration clears the range.
func (s *scrubber) onMetadataLoaded(duration float64) {
	if isFinite(duration) && duration >= 0 {
		s.duration = mo.Some(duration)
	} else {
		s.duration = mo.None[float64]()
	}

	s.render(s.position)
}

// onDragInput handles one step of an in-progress drag. The raw value is
// clamped to the valid seek range and the engine is sought immediately.
// Without loaded metadata the seek range is empty and the drag is ignored.
func (s *scrubber) onDragInput(rawValue float64) {
	duration, ok := s.duration.Get()
	if !ok {
		return
	}

	clamped := util.Clamp(rawValue, 0, duration)

	s.seeking = true
	s.pending = clamped
	s.media.Seek(clamped)
	s.render(clamped)
}

// onDragCommit finalizes the drag: native ticks resume and the committed
// position is announced. Committing with no drag in progress is a no-op.
func (s *scrubber) onDragCommit() {
	if !s.seeking {
		return
	}

	s.seeking = false
	s.position = s.pending
	s.announce(fmt.Sprintf("Seeked to %s", FormatSeconds(s.pending, s.duration.OrElse(0))))
}

// onNativeTimeUpdate applies a periodic position tick from the engine.
// Suppressed entirely while a drag is in progress: the drag owns the handle.
func (s *scrubber) onNativeTimeUpdate(currentTime float64) {
	if s.seeking {
		return
	}

	s.position = currentTime
	s.render(currentTime)
}

// render projects position and duration onto the slider and time display.
func (s *scrubber) render(position float64) {
	duration := s.duration.OrElse(0)

	s.presenter.SetSliderPosition(position, duration)
	s.presenter.SetTimeText(
		FormatSeconds(position, duration),
		FormatSeconds(duration, duration),
	)
}
