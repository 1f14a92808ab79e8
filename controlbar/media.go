package controlbar

// Media encapsulates the native playback engine consumed by the control bar.
//
// Play is the only operation that may be refused by the environment; every
// other operation is treated as one-shot and infallible from the bar's point
// of view. State changes caused by these calls are reported back through the
// controller's OnNative* event inputs, never assumed eagerly.
type Media interface {
	// Play requests playback. The request may be rejected (e.g. by an
	// autoplay policy); a non-nil error leaves the bar's state untouched.
	Play() error

	// Pause suspends playback synchronously.
	Pause()

	// Seek transitions the playback position to an absolute timestamp in seconds.
	Seek(seconds float64)

	// SetMuted mutes or unmutes audio output.
	SetMuted(muted bool)

	// RequestFullscreen asks the environment to enter fullscreen presentation.
	RequestFullscreen()

	// ExitFullscreen asks the environment to leave fullscreen presentation.
	ExitFullscreen()
}
