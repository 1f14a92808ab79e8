package controlbar

// Presenter is the narrow interface through which the control bar mutates its
// visual representation. Implementations are purely presentational; they hold
// no authoritative state of their own.
type Presenter interface {
	// SetPlayPauseVisual swaps the play/pause affordance to reflect playback state.
	SetPlayPauseVisual(playing bool)

	// SetMuteVisual swaps the mute affordance to reflect the audio state.
	SetMuteVisual(muted bool)

	// SetFullscreenVisual swaps the fullscreen affordance.
	SetFullscreenVisual(fullscreen bool)

	// SetExpandedVisual reflects the settings trigger's expanded state attribute.
	SetExpandedVisual(open bool)

	// SetPanelVisibility reveals or hides the settings panel content.
	// When animated is true the presentation applies its transition treatment.
	SetPanelVisibility(visible bool, animated bool)

	// SetSliderPosition moves the scrubber handle. max is the valid seek range.
	SetSliderPosition(value, max float64)

	// SetTimeText updates the current/total time display.
	SetTimeText(current, total string)

	// Focus moves keyboard focus to the given control.
	Focus(c Control)
}

// Announcer is the optional assistive announcement channel (live-region analog).
// An absent announcer is tolerated everywhere as a no-op.
type Announcer interface {
	Announce(message string)
}
