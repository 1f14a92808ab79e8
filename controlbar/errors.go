package controlbar

import "errors"

// Construction failures. A missing required collaborator is fatal to
// initialization: New reports it to the caller instead of panicking.
// A missing optional control is not an error at all; it is simply excluded
// from the focus order.
var (
	ErrMissingEngine    = errors.New("controlbar: media engine is required")
	ErrMissingPresenter = errors.New("controlbar: presenter is required")
	ErrNoControls       = errors.New("controlbar: at least one control must be present")
)

// ErrPlaybackRejected wraps a play request denied by the environment.
// It is always recovered locally: state stays Paused and the failure is
// announced to the user.
var ErrPlaybackRejected = errors.New("controlbar: playback request rejected")
