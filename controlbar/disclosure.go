package controlbar

import "time"

// disclosure is the settings panel open/close state machine.
//
// Visibility and the trigger's expanded attribute stay consistent at the end
// of every transition. The one permitted transient inconsistency is the exit
// window: the expanded attribute is already false while the content stays
// revealed until the transition duration elapses. The window is bounded by
// the transition duration and collapses to zero under reduced motion.
type disclosure struct {
	presenter   Presenter
	scheduler   Scheduler
	returnFocus func()

	reducedMotion bool
	transition    time.Duration

	open       bool
	cancelHide func()
}

func newDisclosure(presenter Presenter, scheduler Scheduler, returnFocus func(), reducedMotion bool, transition time.Duration) *disclosure {
	return &disclosure{
		presenter:     presenter,
		scheduler:     scheduler,
		returnFocus:   returnFocus,
		reducedMotion: reducedMotion,
		transition:    transition,
	}
}

// toggle handles an activation of the settings trigger.
func (d *disclosure) toggle() {
	if d.open {
		d.doClose()
	} else {
		d.doOpen()
	}
}

// doOpen reveals the panel. A pending deferred hide from an earlier close is
// cancelled first so a stale hide cannot fire on the reopened panel.
func (d *disclosure) doOpen() {
	if d.open {
		return
	}

	d.cancelPendingHide()
	d.open = true
	d.presenter.SetExpandedVisual(true)
	d.presenter.SetPanelVisibility(true, !d.reducedMotion)
}

// doClose collapses the panel and always returns keyboard focus to the
// trigger, regardless of what caused the close. With motion allowed the
// actual hide is deferred until the exit transition elapses.
func (d *disclosure) doClose() {
	if !d.open {
		return
	}

	d.open = false
	d.presenter.SetExpandedVisual(false)

	if d.reducedMotion {
		d.presenter.SetPanelVisibility(false, false)
	} else {
		d.cancelHide = d.scheduler.Schedule(d.transition, func() {
			d.cancelHide = nil
			d.presenter.SetPanelVisibility(false, true)
		})
	}

	d.returnFocus()
}

// handleEscape dismisses the panel on a global Escape key press.
// Reports whether the key was consumed; Escape with the panel closed is a
// complete no-op.
func (d *disclosure) handleEscape() bool {
	if !d.open {
		return false
	}

	d.doClose()
	return true
}

// handleOutsidePointer dismisses the panel on a pointer interaction outside
// both the panel and its trigger. Interactions on the trigger are ignored
// here so the trigger's own activation cannot immediately re-close what it
// just opened.
func (d *disclosure) handleOutsidePointer(insidePanel, onTrigger bool) {
	if !d.open || insidePanel || onTrigger {
		return
	}

	d.doClose()
}

func (d *disclosure) cancelPendingHide() {
	if d.cancelHide != nil {
		d.cancelHide()
		d.cancelHide = nil
	}
}
