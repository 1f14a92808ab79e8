package controlbar

import (
	"fmt"

	"github.com/mediabar-cli/mediabar/log"
)

// playbackSync reconciles the bar's play/pause state with the engine's actual
// playback state in both directions.
//
// The displayed state never flips eagerly on user input: a pause is issued
// synchronously and a play request asynchronously, but in both cases the bar
// waits for the corresponding native event before updating anything. This
// keeps the UI honest when a play promise is pending, rejected, or superseded
// by an immediate pause.
type playbackSync struct {
	media     Media
	presenter Presenter
	announce  func(message string)

	playing bool
}

func newPlaybackSync(media Media, presenter Presenter, announce func(string)) *playbackSync {
	return &playbackSync{
		media:     media,
		presenter: presenter,
		announce:  announce,
	}
}

// requestToggle handles an activation of the play/pause control.
// On rejection the state is left unchanged, a user-facing failure
// notification is emitted, and the engine error comes back wrapped in
// ErrPlaybackRejected.
func (p *playbackSync) requestToggle() error {
	if p.playing {
		p.media.Pause()
		return nil
	}

	if err := p.media.Play(); err != nil {
		err = fmt.Errorf("%w: %v", ErrPlaybackRejected, err)
		log.Warn(err)
		p.announce("Playback was blocked. Press play to try again.")
		return err
	}

	return nil
}

// onNativePlay unconditionally records the playing state. This path covers
// playback triggered outside the bar's own controls (e.g. OS media keys).
func (p *playbackSync) onNativePlay() {
	p.playing = true
	p.presenter.SetPlayPauseVisual(true)
}

// onNativePause unconditionally records the paused state.
func (p *playbackSync) onNativePause() {
	p.playing = false
	p.presenter.SetPlayPauseVisual(false)
}

// onNativeEnded treats end-of-media as a pause.
func (p *playbackSync) onNativeEnded() {
	p.onNativePause()
}
