// Package controlbar implements the state machine and event-synchronization logic
// of an accessible media-player control bar.
//
// The package is headless: all rendering goes through the Presenter collaborator
// and all playback through the Media collaborator. Native engine events are the
// single authority for playback and position state; user input is an optimistic
// hint reconciled when the corresponding native event arrives.
package controlbar

// Control identifies a single interactive control of the bar.
type Control int

const (
	ControlNone Control = iota
	ControlPlayPause
	ControlMute
	ControlScrubber
	ControlSettings
	ControlFullscreen
)

// String returns the canonical identifier of the control.
func (c Control) String() string {
	switch c {
	case ControlPlayPause:
		return "play-pause"
	case ControlMute:
		return "mute"
	case ControlScrubber:
		return "scrubber"
	case ControlSettings:
		return "settings"
	case ControlFullscreen:
		return "fullscreen"
	default:
		return "none"
	}
}
