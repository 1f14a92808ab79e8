// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mediabar-cli/mediabar/controlbar"
	"github.com/mediabar-cli/mediabar/internal/ui"
	"github.com/mediabar-cli/mediabar/key"
	"github.com/mediabar-cli/mediabar/player"
	"github.com/mediabar-cli/mediabar/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble encapsulates the comprehensive application state, including component models and workflow tracking.
//
// It doubles as the control bar's presenter: the visual projection fields
// below are written only through Presenter calls, never directly, so the
// rendered bar always reflects what the controller decided.
type statefulBubble struct {
	state   state
	loading bool

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	progressC progress.Model
	helpC     help.Model

	program *tea.Program
	player  player.Player
	events  *player.EventListener
	bar     *controlbar.Controller

	// visual projection, written through Presenter calls only
	playingVisual    bool
	mutedVisual      bool
	fullscreenVisual bool
	expandedVisual   bool
	panelVisible     bool
	panelAnimated    bool
	sliderValue      float64
	sliderMax        float64
	timeCurrent      string
	timeTotal        string
	focusedVisual    controlbar.Control

	// local interaction state
	pendingAnnouncements []string
	dragSeq              int
	dragValue            float64
	speed                float64
	loop                 bool

	lastError     error
	width, height int

	options  *Options
	notifier *ui.Model
}

// raiseError dispatches a terminal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState facilitates an idempotent transition to a target state.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}
	b.setState(s)
}

// resize propagates terminal dimension changes to child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.progressC.Width = util.Max(b.width-20, 10)
	b.helpC.Width = b.width
}

// Init implements tea.Model.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.openEngine())
}

// Presenter implementation - the control bar mutates the projection here.

func (b *statefulBubble) SetPlayPauseVisual(playing bool) {
	b.playingVisual = playing
}

func (b *statefulBubble) SetMuteVisual(muted bool) {
	b.mutedVisual = muted
}

func (b *statefulBubble) SetFullscreenVisual(fullscreen bool) {
	b.fullscreenVisual = fullscreen
}

func (b *statefulBubble) SetExpandedVisual(open bool) {
	b.expandedVisual = open
}

func (b *statefulBubble) SetPanelVisibility(visible bool, animated bool) {
	b.panelVisible = visible
	b.panelAnimated = animated
}

func (b *statefulBubble) SetSliderPosition(value, max float64) {
	b.sliderValue = value
	b.sliderMax = max
}

func (b *statefulBubble) SetTimeText(current, total string) {
	b.timeCurrent = current
	b.timeTotal = total
}

func (b *statefulBubble) Focus(c controlbar.Control) {
	b.focusedVisual = c
}

// attachBar assembles the control bar controller once the engine answers.
// Environment preferences are read exactly once, here.
func (b *statefulBubble) attachBar() error {
	announcer := mo.None[controlbar.Announcer]()
	if viper.GetBool(key.AnnounceEnable) {
		announcer = mo.Some[controlbar.Announcer](&bubbleAnnouncer{b: b})
	}

	bar, err := controlbar.New(&controlbar.Options{
		Media:         &engineAdapter{p: b.player},
		Presenter:     b,
		Announcer:     announcer,
		Scheduler:     &loopScheduler{b: b},
		Controls:      b.options.Controls,
		ReducedMotion: viper.GetBool(key.MotionReduce),
		PanelTransition: time.Duration(
			viper.GetInt(key.MotionPanelTransitionMs),
		) * time.Millisecond,
		Direction: lo.Ternary(
			viper.GetBool(key.TUIRTLArrows),
			controlbar.DirectionRTL,
			controlbar.DirectionLTR,
		),
	})
	if err != nil {
		return err
	}

	b.bar = bar
	b.focusedVisual = bar.Focused()
	return nil
}

// flushAnnouncements drains announcements queued by the control bar into the
// ephemeral notifier.
func (b *statefulBubble) flushAnnouncements() tea.Cmd {
	if len(b.pendingAnnouncements) == 0 {
		return nil
	}

	cmds := lo.Map(b.pendingAnnouncements, func(message string, _ int) tea.Cmd {
		return ui.Notify(message)
	})
	b.pendingAnnouncements = nil
	return tea.Batch(cmds...)
}

// teardown releases the controller and the playback engine. Safe to call twice.
func (b *statefulBubble) teardown() {
	if b.bar != nil {
		b.bar.Teardown()
	}
	if b.events != nil {
		b.events.Stop()
	}
	if b.player != nil {
		_ = b.player.Close()
	}
}

// newBubble performs a complete initialization of the application's primary UI model.
func newBubble(options *Options) *statefulBubble {
	bubble := statefulBubble{
		keymap:   newStatefulKeymap(),
		options:  options,
		player:   player.NewMPV(),
		notifier: &ui.Model{},
		speed:    1.0,
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.progressC = progress.New(progress.WithDefaultGradient())

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.setState(loadingState)

	return &bubble
}
