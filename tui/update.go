// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"time"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mediabar-cli/mediabar/controlbar"
	"github.com/mediabar-cli/mediabar/key"
	"github.com/mediabar-cli/mediabar/log"
	"github.com/mediabar-cli/mediabar/util"
	"github.com/spf13/viper"
)

// dragIdleCommit is how long scrubber input must be idle before the drag is
// treated as released. A terminal has no key-up events, so release is inferred.
const dragIdleCommit = 600 * time.Millisecond

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Process Ephemeral UI Notifications (captures `string` and `ui.ClearNotificationMsg`)
	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = tea.Batch(cmd, uiCmd)
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, cmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case engineReadyMsg:
		if err := b.attachBar(); err != nil {
			b.raiseError(err)
			return b, cmd
		}
		b.loading = false
		b.newState(barState)
		return b, cmd
	case engineExitedMsg:
		b.teardown()
		return b, tea.Quit
	case propertyChangeMsg:
		return b, tea.Batch(cmd, b.dispatchNativeEvent(msg))
	case deferredFireMsg:
		msg.fn()
		return b, tea.Batch(cmd, b.flushAnnouncements())
	case dragCommitMsg:
		if b.bar != nil && msg.seq == b.dragSeq && b.bar.Seeking() {
			b.bar.OnDragCommit()
		}
		return b, tea.Batch(cmd, b.flushAnnouncements())
	case tea.MouseMsg:
		return b, tea.Batch(cmd, b.handlePointer(msg))
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			b.teardown()
			return b, tea.Quit
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg, cmd)
	case barState:
		return b.updateBar(msg, cmd)
	case errorState:
		return b.updateError(msg, cmd)
	}

	return b, cmd
}

// dispatchNativeEvent routes a native engine property event into the control
// bar. The bar treats these as the single source of truth for its visuals.
func (b *statefulBubble) dispatchNativeEvent(msg propertyChangeMsg) tea.Cmd {
	if b.bar == nil {
		return nil
	}

	switch msg.name {
	case "pause":
		if paused, ok := msg.data.(bool); ok {
			if paused {
				b.bar.OnNativePause()
			} else {
				b.bar.OnNativePlay()
			}
		}
	case "time-pos":
		if position, ok := msg.data.(float64); ok {
			b.bar.OnNativeTimeUpdate(position)
		}
	case "duration":
		if duration, ok := msg.data.(float64); ok {
			b.bar.OnMetadataLoaded(duration)
		}
	case "mute":
		if muted, ok := msg.data.(bool); ok {
			b.bar.OnNativeMute(muted)
		}
	case "fullscreen":
		if fullscreen, ok := msg.data.(bool); ok {
			b.bar.OnNativeFullscreen(fullscreen)
		}
	case "eof-reached":
		if ended, ok := msg.data.(bool); ok && ended {
			b.bar.OnNativeEnded()
		}
	default:
		log.Debugf("unhandled engine event %s", msg.name)
	}

	return b.flushAnnouncements()
}

// handlePointer maps terminal mouse input onto the bar's pointer dismissal
// semantics. The terminal offers no per-control hit testing, so a press is
// treated as landing outside both the panel and its trigger.
func (b *statefulBubble) handlePointer(msg tea.MouseMsg) tea.Cmd {
	if b.bar == nil || !viper.GetBool(key.TUIMouse) {
		return nil
	}

	if msg.Action != tea.MouseActionPress {
		return nil
	}

	b.bar.HandleOutsidePointer(false, false)
	return b.flushAnnouncements()
}

func (b *statefulBubble) updateLoading(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	var spinnerCmd tea.Cmd
	b.spinnerC, spinnerCmd = b.spinnerC.Update(msg)
	return b, tea.Batch(cmd, spinnerCmd)
}

func (b *statefulBubble) updateBar(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, cmd
	}

	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.quit):
		b.teardown()
		return b, tea.Quit

	case bubblesKey.Matches(keyMsg, b.keymap.escape):
		// A consumed Escape closed the panel; an unconsumed one is left alone.
		b.bar.HandleEscape()

	case bubblesKey.Matches(keyMsg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll

	// Scrubber drag: while the scrubber holds focus, horizontal arrows adjust
	// the timeline instead of roving.
	case b.bar.Focused() == controlbar.ControlScrubber &&
		bubblesKey.Matches(keyMsg, b.keymap.scrubForward):
		return b, tea.Batch(cmd, b.dragBy(viper.GetFloat64(key.ScrubStep)))
	case b.bar.Focused() == controlbar.ControlScrubber &&
		bubblesKey.Matches(keyMsg, b.keymap.scrubBack):
		return b, tea.Batch(cmd, b.dragBy(-viper.GetFloat64(key.ScrubStep)))

	case bubblesKey.Matches(keyMsg, b.keymap.activate):
		return b, tea.Batch(cmd, b.activateFocused())

	case b.panelVisible && bubblesKey.Matches(keyMsg, b.keymap.speedUp):
		return b, tea.Batch(cmd, b.adjustSpeed(0.25))
	case b.panelVisible && bubblesKey.Matches(keyMsg, b.keymap.speedDown):
		return b, tea.Batch(cmd, b.adjustSpeed(-0.25))
	case b.panelVisible && bubblesKey.Matches(keyMsg, b.keymap.loopToggle):
		return b, tea.Batch(cmd, b.toggleLoop())

	case bubblesKey.Matches(keyMsg, b.keymap.next):
		b.bar.HandleNavigation(controlbar.NavNext)
	case bubblesKey.Matches(keyMsg, b.keymap.prev):
		b.bar.HandleNavigation(controlbar.NavPrev)
	case bubblesKey.Matches(keyMsg, b.keymap.first):
		b.bar.HandleNavigation(controlbar.NavFirst)
	case bubblesKey.Matches(keyMsg, b.keymap.last):
		b.bar.HandleNavigation(controlbar.NavLast)
	}

	return b, tea.Batch(cmd, b.flushAnnouncements())
}

// activateFocused dispatches an activation key to whichever control holds the
// roving focus cursor.
func (b *statefulBubble) activateFocused() tea.Cmd {
	switch b.bar.Focused() {
	case controlbar.ControlPlayPause:
		b.bar.RequestToggle()
	case controlbar.ControlMute:
		b.bar.ToggleMute()
	case controlbar.ControlScrubber:
		if b.bar.Seeking() {
			b.bar.OnDragCommit()
		}
	case controlbar.ControlSettings:
		b.bar.TogglePanel()
	case controlbar.ControlFullscreen:
		b.bar.ToggleFullscreen()
	}

	return b.flushAnnouncements()
}

// dragBy feeds one step of scrubber drag input and arms the idle commit timer.
func (b *statefulBubble) dragBy(step float64) tea.Cmd {
	if !b.bar.Seeking() {
		b.dragValue = b.bar.Position()
	}
	b.dragValue = util.Clamp(b.dragValue+step, 0, b.sliderMax)
	b.bar.OnDragInput(b.dragValue)

	b.dragSeq++
	seq := b.dragSeq

	return tea.Batch(
		b.flushAnnouncements(),
		tea.Tick(dragIdleCommit, func(time.Time) tea.Msg {
			return dragCommitMsg{seq: seq}
		}),
	)
}

// adjustSpeed changes the engine playback rate from the settings panel.
func (b *statefulBubble) adjustSpeed(delta float64) tea.Cmd {
	b.speed = util.Clamp(b.speed+delta, 0.25, 4.0)
	if err := b.player.SetProperty("speed", b.speed); err != nil {
		log.Warnf("set speed: %v", err)
	}
	b.pendingAnnouncements = append(
		b.pendingAnnouncements,
		fmt.Sprintf("Playback speed %.2fx", b.speed),
	)
	return b.flushAnnouncements()
}

// toggleLoop flips the engine's single-file loop mode from the settings panel.
func (b *statefulBubble) toggleLoop() tea.Cmd {
	b.loop = !b.loop

	mode := "no"
	announcement := "Loop off"
	if b.loop {
		mode = "inf"
		announcement = "Loop on"
	}

	if err := b.player.SetProperty("loop-file", mode); err != nil {
		log.Warnf("set loop: %v", err)
	}
	b.pendingAnnouncements = append(b.pendingAnnouncements, announcement)
	return b.flushAnnouncements()
}

func (b *statefulBubble) updateError(msg tea.Msg, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, cmd
	}

	if bubblesKey.Matches(keyMsg, b.keymap.quit) {
		b.teardown()
		return b, tea.Quit
	}

	return b, cmd
}
