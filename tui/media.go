// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mediabar-cli/mediabar/log"
	"github.com/mediabar-cli/mediabar/player"
)

// engineReadyMsg signals that the playback engine spawned and its IPC socket answers.
type engineReadyMsg struct{}

// engineExitedMsg signals that the playback engine process terminated.
type engineExitedMsg struct{}

// propertyChangeMsg carries a native engine property event into the program loop.
type propertyChangeMsg struct {
	name string
	data interface{}
}

// deferredFireMsg carries a scheduled transition side effect into the program loop.
type deferredFireMsg struct {
	fn func()
}

// dragCommitMsg finalizes a scrubber drag after input goes idle.
// The sequence number discards stale commits superseded by further drag input.
type dragCommitMsg struct {
	seq int
}

// engineAdapter projects the playback engine onto the narrow surface the
// control bar consumes. Requests are fire-and-forget; the bar's state follows
// the native property events, not these calls.
type engineAdapter struct {
	p player.Player
}

func (a *engineAdapter) Play() error {
	return a.p.Resume()
}

func (a *engineAdapter) Pause() {
	if err := a.p.Pause(); err != nil {
		log.Warnf("pause request failed: %v", err)
	}
}

func (a *engineAdapter) Seek(seconds float64) {
	if err := a.p.Seek(seconds); err != nil {
		log.Warnf("seek request failed: %v", err)
	}
}

func (a *engineAdapter) SetMuted(muted bool) {
	if err := a.p.SetMuted(muted); err != nil {
		log.Warnf("mute request failed: %v", err)
	}
}

func (a *engineAdapter) RequestFullscreen() {
	if err := a.p.SetFullscreen(true); err != nil {
		log.Warnf("fullscreen request failed: %v", err)
	}
}

func (a *engineAdapter) ExitFullscreen() {
	if err := a.p.SetFullscreen(false); err != nil {
		log.Warnf("fullscreen exit request failed: %v", err)
	}
}

// loopScheduler defers transition side effects through the program loop so
// they mutate the model on the same goroutine as every other message.
type loopScheduler struct {
	b *statefulBubble
}

func (s *loopScheduler) Schedule(d time.Duration, fn func()) func() {
	timer := time.AfterFunc(d, func() {
		if s.b.program != nil {
			s.b.program.Send(deferredFireMsg{fn: fn})
		}
	})
	return func() { timer.Stop() }
}

// bubbleAnnouncer queues assistive announcements raised synchronously by the
// control bar; the update loop flushes them into the ephemeral notifier.
type bubbleAnnouncer struct {
	b *statefulBubble
}

func (a *bubbleAnnouncer) Announce(message string) {
	a.b.pendingAnnouncements = append(a.b.pendingAnnouncements, message)
}

// openEngine spawns the playback engine and wires its event stream into the
// program loop.
func (b *statefulBubble) openEngine() tea.Cmd {
	return func() tea.Msg {
		if err := b.player.Open(b.options.Target, b.options.Title); err != nil {
			return fmt.Errorf("open player: %w", err)
		}

		b.events = player.NewEventListener(b.player.Socket(), func(property string, data interface{}) {
			if b.program != nil {
				b.program.Send(propertyChangeMsg{name: property, data: data})
			}
		})
		if err := b.events.Start(); err != nil {
			return fmt.Errorf("listen for player events: %w", err)
		}

		go func() {
			<-b.player.Wait()
			if b.program != nil {
				b.program.Send(engineExitedMsg{})
			}
		}()

		return engineReadyMsg{}
	}
}
