// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	next, prev,
	first, last,
	activate,
	escape,
	scrubForward, scrubBack,
	speedUp, speedDown, loopToggle,
	showHelp key.Binding
}

// setState updates the active keymap configuration to match the specified application state.
func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		next: key.NewBinding(
			key.WithKeys("right", "tab", "down"),
			key.WithHelp("→", "next control"),
		),
		prev: key.NewBinding(
			key.WithKeys("left", "shift+tab", "up"),
			key.WithHelp("←", "previous control"),
		),
		first: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "first control"),
		),
		last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "last control"),
		),
		activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close panel"),
		),
		scrubForward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "seek forward"),
		),
		scrubBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "seek back"),
		),
		speedUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		speedDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "slower"),
		),
		loopToggle: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle loop"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit))
	case barState:
		return h(k.activate, k.next, k.prev, k.quit), h(
			k.activate,
			k.next, k.prev,
			k.first, k.last,
			k.scrubForward, k.scrubBack,
			k.speedUp, k.speedDown, k.loopToggle,
			k.escape, k.quit,
		)
	case errorState:
		return to2(h(k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
