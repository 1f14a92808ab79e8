package controlbar

import (
	"time"

	"github.com/mediabar-cli/mediabar/log"
	"github.com/samber/mo"
)

// defaultPanelTransition bounds the exit-transition window when the caller
// does not configure one.
const defaultPanelTransition = 200 * time.Millisecond

// Options encapsulates the collaborators and environment queries consumed by
// the controller. Media, Presenter and at least one control are required;
// everything else degrades gracefully when absent.
type Options struct {
	// Media is the native playback engine. Required.
	Media Media

	// Presenter receives all visual mutations. Required.
	Presenter Presenter

	// Announcer is the assistive announcement channel. Optional; absence is a no-op.
	Announcer mo.Option[Announcer]

	// Scheduler drives deferred transition side effects. Defaults to TimerScheduler.
	Scheduler Scheduler

	// Controls lists the present controls in visual order. Controls absent
	// from the hosting surface are simply not listed; they are excluded from
	// the focus group without error.
	Controls []Control

	// ReducedMotion is the environment's reduced-motion preference, read once at init.
	ReducedMotion bool

	// PanelTransition is the settings panel transition duration.
	PanelTransition time.Duration

	// Direction selects arrow-key traversal order.
	Direction Direction
}

// Controller owns the control bar's state: playback synchronization, scrubber
// drag/commit, the settings disclosure panel, and roving keyboard focus.
//
// All methods are intended for a single event loop; state transitions are
// idempotent against duplicate triggers, so reentrant event delivery cannot
// corrupt state.
type Controller struct {
	media     Media
	presenter Presenter
	announce  func(message string)

	playback  *playbackSync
	scrubber  *scrubber
	panel     *disclosure
	navigator *navigator

	focused    Control
	muted      bool
	fullscreen bool
	detached   bool
}

// New validates the required collaborators and assembles the controller.
// A missing media engine, presenter, or an empty control set is fatal to
// initialization and reported to the caller.
func New(options *Options) (*Controller, error) {
	if options.Media == nil {
		return nil, ErrMissingEngine
	}
	if options.Presenter == nil {
		return nil, ErrMissingPresenter
	}

	nav := newNavigator(options.Controls, options.Direction)
	if len(nav.order) == 0 {
		return nil, ErrNoControls
	}

	scheduler := options.Scheduler
	if scheduler == nil {
		scheduler = TimerScheduler{}
	}

	transition := options.PanelTransition
	if transition <= 0 {
		transition = defaultPanelTransition
	}

	announce := func(message string) {
		if a, ok := options.Announcer.Get(); ok {
			a.Announce(message)
		}
	}

	c := &Controller{
		media:     options.Media,
		presenter: options.Presenter,
		announce:  announce,
		navigator: nav,
		focused:   nav.first(),
	}

	c.playback = newPlaybackSync(options.Media, options.Presenter, announce)
	c.scrubber = newScrubber(options.Media, options.Presenter, announce)
	c.panel = newDisclosure(options.Presenter, scheduler, c.focusTrigger, options.ReducedMotion, transition)

	return c, nil
}

// Teardown detaches the controller deterministically: pending transition
// timers are cancelled and all further event delivery becomes a no-op.
func (c *Controller) Teardown() {
	if c.detached {
		return
	}

	c.detached = true
	c.panel.cancelPendingHide()
	log.Debug("control bar torn down")
}

// focusTrigger moves both the roving cursor and keyboard focus back to the
// settings trigger after the panel closes, keeping Focused and the visual
// focus indicator in agreement.
func (c *Controller) focusTrigger() {
	c.focused = ControlSettings
	c.presenter.Focus(ControlSettings)
}

// Playback Requests and Events - user input is optimistic; native events decide.

// RequestToggle handles an activation of the play/pause control. A refused
// play request is reported as ErrPlaybackRejected; the bar has already
// recovered by then, so callers may safely ignore the return value.
func (c *Controller) RequestToggle() error {
	if c.detached {
		return nil
	}
	return c.playback.requestToggle()
}

// OnNativePlay records that the engine started playing.
func (c *Controller) OnNativePlay() {
	if c.detached {
		return
	}
	c.playback.onNativePlay()
}

// OnNativePause records that the engine paused.
func (c *Controller) OnNativePause() {
	if c.detached {
		return
	}
	c.playback.onNativePause()
}

// OnNativeEnded records that the media ran out.
func (c *Controller) OnNativeEnded() {
	if c.detached {
		return
	}
	c.playback.onNativeEnded()
}

// Playing reports the displayed playback state.
func (c *Controller) Playing() bool {
	return c.playback.playing
}

// Scrubber Input and Position Events

// OnDragInput handles one step of an in-progress scrubber drag.
func (c *Controller) OnDragInput(rawValue float64) {
	if c.detached {
		return
	}
	c.scrubber.onDragInput(rawValue)
}

// OnDragCommit finalizes an in-progress drag.
func (c *Controller) OnDragCommit() {
	if c.detached {
		return
	}
	c.scrubber.onDragCommit()
}

// OnNativeTimeUpdate applies a position tick from the engine.
func (c *Controller) OnNativeTimeUpdate(currentTime float64) {
	if c.detached {
		return
	}
	c.scrubber.onNativeTimeUpdate(currentTime)
}

// OnMetadataLoaded applies the media duration once metadata is available.
func (c *Controller) OnMetadataLoaded(duration float64) {
	if c.detached {
		return
	}
	c.scrubber.onMetadataLoaded(duration)
}

// Seeking reports whether a scrubber drag is in progress.
func (c *Controller) Seeking() bool {
	return c.scrubber.seeking
}

// Position reports the last committed or natively reported position.
func (c *Controller) Position() float64 {
	return c.scrubber.position
}

// Settings Panel

// TogglePanel handles an activation of the settings trigger.
func (c *Controller) TogglePanel() {
	if c.detached {
		return
	}
	c.panel.toggle()
}

// HandleEscape dismisses the panel on a global Escape press and reports
// whether the key was consumed.
func (c *Controller) HandleEscape() bool {
	if c.detached {
		return false
	}
	return c.panel.handleEscape()
}

// HandleOutsidePointer dismisses the panel on a pointer interaction outside
// both the panel and its trigger.
func (c *Controller) HandleOutsidePointer(insidePanel, onTrigger bool) {
	if c.detached {
		return
	}
	c.panel.handleOutsidePointer(insidePanel, onTrigger)
}

// PanelOpen reports the panel's disclosure state.
func (c *Controller) PanelOpen() bool {
	return c.panel.open
}

// Roving Focus

// HandleNavigation resolves a traversal key against the currently focused
// control. A consumed key moves focus through the presenter and returns
// true, telling the caller to suppress the key's default behavior. Keys
// arriving while focus is outside the group are left alone.
func (c *Controller) HandleNavigation(k NavKey) bool {
	if c.detached {
		return false
	}

	target, handled := c.navigator.handleKey(c.focused, k)
	if !handled {
		return false
	}

	if target != c.focused {
		c.focused = target
		c.presenter.Focus(target)
	}
	return true
}

// NotifyFocus records that keyboard focus landed on a control by other means
// (pointer click, programmatic focus).
func (c *Controller) NotifyFocus(target Control) {
	if c.detached {
		return
	}
	if c.navigator.contains(target) {
		c.focused = target
	}
}

// Focused returns the control currently holding the roving focus cursor.
func (c *Controller) Focused() Control {
	return c.focused
}

// Controls returns the focus group in traversal order.
func (c *Controller) Controls() []Control {
	return c.navigator.order
}

// Mute and Fullscreen - same authority rule as playback: the request goes to
// the engine, the visual follows the native property event.

// ToggleMute requests the opposite audio state from the engine.
func (c *Controller) ToggleMute() {
	if c.detached {
		return
	}
	c.media.SetMuted(!c.muted)
}

// OnNativeMute records the engine's reported audio state.
func (c *Controller) OnNativeMute(muted bool) {
	if c.detached {
		return
	}
	c.muted = muted
	c.presenter.SetMuteVisual(muted)
}

// Muted reports the displayed audio state.
func (c *Controller) Muted() bool {
	return c.muted
}

// ToggleFullscreen requests the opposite presentation mode from the environment.
func (c *Controller) ToggleFullscreen() {
	if c.detached {
		return
	}

	if c.fullscreen {
		c.media.ExitFullscreen()
	} else {
		c.media.RequestFullscreen()
	}
}

// OnNativeFullscreen records the environment's reported presentation mode.
func (c *Controller) OnNativeFullscreen(fullscreen bool) {
	if c.detached {
		return
	}
	c.fullscreen = fullscreen
	c.presenter.SetFullscreenVisual(fullscreen)
}

// Fullscreen reports the displayed presentation mode.
func (c *Controller) Fullscreen() bool {
	return c.fullscreen
}
