package controlbar

import (
	"errors"
	"time"

	"github.com/samber/mo"
)

// Test doubles for the controller's collaborators. Kept in a non-test file so
// downstream frontends can reuse them when wiring their own suites.

// FakePresenter records every visual mutation for inspection.
type FakePresenter struct {
	PlayingVisual    bool
	MutedVisual      bool
	FullscreenVisual bool
	ExpandedVisual   bool

	PanelVisible    bool
	PanelAnimated   bool
	VisibilityCalls int

	SliderValue float64
	SliderMax   float64
	CurrentText string
	TotalText   string

	FocusCalls []Control
}

func (p *FakePresenter) SetPlayPauseVisual(playing bool) { p.PlayingVisual = playing }
func (p *FakePresenter) SetMuteVisual(muted bool)        { p.MutedVisual = muted }
func (p *FakePresenter) SetFullscreenVisual(fs bool)     { p.FullscreenVisual = fs }
func (p *FakePresenter) SetExpandedVisual(open bool)     { p.ExpandedVisual = open }
func (p *FakePresenter) SetTimeText(current, total string) {
	p.CurrentText, p.TotalText = current, total
}
func (p *FakePresenter) SetSliderPosition(value, max float64) {
	p.SliderValue, p.SliderMax = value, max
}
func (p *FakePresenter) SetPanelVisibility(visible, animated bool) {
	p.PanelVisible, p.PanelAnimated = visible, animated
	p.VisibilityCalls++
}
func (p *FakePresenter) Focus(c Control) { p.FocusCalls = append(p.FocusCalls, c) }

// FakeMedia records engine commands and simulates play rejection.
type FakeMedia struct {
	RejectPlay bool

	PlayCalls  int
	PauseCalls int
	Seeks      []float64
	MutedSet   []bool

	FullscreenRequests int
	FullscreenExits    int
}

func (m *FakeMedia) Play() error {
	m.PlayCalls++
	if m.RejectPlay {
		return errors.New("autoplay policy denied the request")
	}
	return nil
}
func (m *FakeMedia) Pause()               { m.PauseCalls++ }
func (m *FakeMedia) Seek(seconds float64) { m.Seeks = append(m.Seeks, seconds) }
func (m *FakeMedia) SetMuted(muted bool)  { m.MutedSet = append(m.MutedSet, muted) }
func (m *FakeMedia) RequestFullscreen()   { m.FullscreenRequests++ }
func (m *FakeMedia) ExitFullscreen()      { m.FullscreenExits++ }

// FakeScheduler is a manually advanced clock for deferred actions.
type FakeScheduler struct {
	tasks []*fakeTask
}

type fakeTask struct {
	fn        func()
	cancelled bool
	fired     bool
}

func (s *FakeScheduler) Schedule(_ time.Duration, fn func()) (cancel func()) {
	task := &fakeTask{fn: fn}
	s.tasks = append(s.tasks, task)
	return func() { task.cancelled = true }
}

// Fire runs every scheduled action that has not been cancelled yet.
func (s *FakeScheduler) Fire() {
	for _, task := range s.tasks {
		if task.cancelled || task.fired {
			continue
		}
		task.fired = true
		task.fn()
	}
}

// Pending counts actions that are still armed.
func (s *FakeScheduler) Pending() int {
	var n int
	for _, task := range s.tasks {
		if !task.cancelled && !task.fired {
			n++
		}
	}
	return n
}

// FakeAnnouncer collects announcements.
type FakeAnnouncer struct {
	Messages []string
}

func (a *FakeAnnouncer) Announce(message string) {
	a.Messages = append(a.Messages, message)
}

// harness bundles a controller with all of its fakes.
type harness struct {
	bar       *Controller
	presenter *FakePresenter
	media     *FakeMedia
	scheduler *FakeScheduler
	announcer *FakeAnnouncer
}

func newHarness(controls ...Control) *harness {
	if len(controls) == 0 {
		controls = []Control{
			ControlPlayPause,
			ControlMute,
			ControlScrubber,
			ControlSettings,
			ControlFullscreen,
		}
	}

	h := &harness{
		presenter: &FakePresenter{},
		media:     &FakeMedia{},
		scheduler: &FakeScheduler{},
		announcer: &FakeAnnouncer{},
	}

	bar, err := New(&Options{
		Media:     h.media,
		Presenter: h.presenter,
		Announcer: mo.Some[Announcer](h.announcer),
		Scheduler: h.scheduler,
		Controls:  controls,
	})
	if err != nil {
		panic(err)
	}

	h.bar = bar
	return h
}
